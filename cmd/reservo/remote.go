package main

import (
	"fmt"

	"github.com/fwojciec/reservo"
)

// session signs in to the reservation API, runs fn and signs out again.
// Failures are reported on stderr before being returned.
func (r *Remote) session(deps *Dependencies, fn func(user *reservo.User) error) error {
	user, err := r.Auth.Login(deps.Ctx, r.Email, r.Password)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: login failed: %s\n", reservo.ErrorMessage(err))
		return err
	}
	defer func() {
		if err := r.Auth.Logout(deps.Ctx); err != nil {
			deps.Logger.Warn("logout failed", "err", err)
		}
	}()

	if err := fn(user); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reservo.ErrorMessage(err))
		return err
	}
	return nil
}

func requireRemote(deps *Dependencies) error {
	if deps.Remote == nil {
		return reservo.Errorf(reservo.EINVALID, "reservation API not configured")
	}
	return nil
}
