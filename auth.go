package reservo

import "context"

// User is an authenticated staff or admin account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthService manages a cookie-based session with the reservation API.
type AuthService interface {
	// Login starts a session. Returns EUNAUTHORIZED on bad credentials.
	Login(ctx context.Context, email, password string) (*User, error)

	// Me returns the user of the current session.
	// Returns EUNAUTHORIZED if there is no session.
	Me(ctx context.Context) (*User, error)

	Logout(ctx context.Context) error
}
