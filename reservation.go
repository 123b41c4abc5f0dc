package reservo

import (
	"context"
	"time"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

// Reservation statuses as reported by the reservation API.
const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusSeated    ReservationStatus = "seated"
	StatusCompleted ReservationStatus = "completed"
)

// Valid reports whether s is a known status.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusSeated, StatusCompleted:
		return true
	}
	return false
}

// Reservation represents a table booking at a restaurant.
type Reservation struct {
	ID            string            `json:"id"`
	RestaurantID  string            `json:"restaurantId"`
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerPhone string            `json:"customerPhone"`
	PartySize     int               `json:"partySize"`
	Time          time.Time         `json:"time"`
	Status        ReservationStatus `json:"status"`
	Notes         string            `json:"notes,omitempty"`
}

// Validate returns an error if the reservation contains invalid fields.
func (r *Reservation) Validate() error {
	if r.RestaurantID == "" {
		return Errorf(EINVALID, "reservation restaurant ID required")
	}
	if r.CustomerName == "" {
		return Errorf(EINVALID, "reservation customer name required")
	}
	if r.PartySize <= 0 {
		return Errorf(EINVALID, "reservation party size must be positive")
	}
	if r.Time.IsZero() {
		return Errorf(EINVALID, "reservation time required")
	}
	if r.Status != "" && !r.Status.Valid() {
		return Errorf(EINVALID, "unknown reservation status %q", r.Status)
	}
	return nil
}

// ReservationService represents a service for managing reservations.
// Availability and conflict detection are owned by the implementation.
type ReservationService interface {
	CreateReservation(ctx context.Context, reservation *Reservation) error

	// FindReservationByID retrieves a reservation by ID.
	// Returns ENOTFOUND if reservation does not exist.
	FindReservationByID(ctx context.Context, id string) (*Reservation, error)

	FindReservations(ctx context.Context, filter ReservationFilter) ([]*Reservation, error)

	// UpdateReservation updates an existing reservation.
	// Returns ENOTFOUND if reservation does not exist.
	UpdateReservation(ctx context.Context, id string, upd ReservationUpdate) (*Reservation, error)

	DeleteReservation(ctx context.Context, id string) error
}

// ReservationFilter represents a filter for FindReservations.
type ReservationFilter struct {
	RestaurantID *string            `json:"restaurantId"`
	Status       *ReservationStatus `json:"status"`
}

// ReservationUpdate represents fields that can be updated on a reservation.
type ReservationUpdate struct {
	PartySize *int               `json:"partySize,omitempty"`
	Time      *time.Time         `json:"time,omitempty"`
	Status    *ReservationStatus `json:"status,omitempty"`
	Notes     *string            `json:"notes,omitempty"`
}
