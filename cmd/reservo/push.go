package main

import (
	"fmt"

	"github.com/fwojciec/reservo"
)

// Run executes the push command.
func (c *PushCmd) Run(deps *Dependencies) error {
	if err := requireRemote(deps); err != nil {
		return err
	}

	local, err := deps.Restaurants.FindRestaurantByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reservo.ErrorMessage(err))
		return err
	}

	return deps.Remote.session(deps, func(user *reservo.User) error {
		remote := *local
		remote.ID = ""
		if err := deps.Remote.Restaurants.CreateRestaurant(deps.Ctx, &remote); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Pushed %q as %s (signed in as %s)\n", local.Name, remote.ID, user.Email)
		return nil
	})
}
