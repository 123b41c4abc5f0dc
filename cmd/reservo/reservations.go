package main

import (
	"fmt"

	"github.com/fwojciec/reservo"
)

// Run executes the reservations list command.
func (c *ReservationsListCmd) Run(deps *Dependencies) error {
	if err := requireRemote(deps); err != nil {
		return err
	}

	var filter reservo.ReservationFilter
	if c.Restaurant != "" {
		filter.RestaurantID = &c.Restaurant
	}
	if c.Status != "" {
		status := reservo.ReservationStatus(c.Status)
		if !status.Valid() {
			return reservo.Errorf(reservo.EINVALID, "unknown reservation status %q", c.Status)
		}
		filter.Status = &status
	}

	return deps.Remote.session(deps, func(*reservo.User) error {
		reservations, err := deps.Remote.Reservations.FindReservations(deps.Ctx, filter)
		if err != nil {
			return err
		}
		if len(reservations) == 0 {
			fmt.Fprintln(deps.Stdout, "No reservations found.")
			return nil
		}
		fmt.Fprintln(deps.Stdout, reservo.FormatReservations(reservations))
		return nil
	})
}

// Run executes the reservations status command.
func (c *ReservationStatusCmd) Run(deps *Dependencies) error {
	if err := requireRemote(deps); err != nil {
		return err
	}

	status := reservo.ReservationStatus(c.Status)
	if !status.Valid() {
		return reservo.Errorf(reservo.EINVALID, "unknown reservation status %q", c.Status)
	}

	return deps.Remote.session(deps, func(*reservo.User) error {
		r, err := deps.Remote.Reservations.UpdateReservation(deps.Ctx, c.ID, reservo.ReservationUpdate{Status: &status})
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Reservation %s for %s is now %s\n", r.ID, r.CustomerName, r.Status)
		return nil
	})
}
