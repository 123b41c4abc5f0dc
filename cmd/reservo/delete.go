package main

import (
	"fmt"

	"github.com/fwojciec/reservo"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return reservo.Errorf(reservo.EINVALID, "use --force to confirm deletion")
	}

	r, err := deps.Restaurants.FindRestaurantByID(deps.Ctx, c.ID)
	if err != nil {
		if reservo.ErrorCode(err) == reservo.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: restaurant %q not found. Use 'reservo list' to see available restaurants.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", reservo.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Restaurants.DeleteRestaurant(deps.Ctx, r.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reservo.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted restaurant %q\n", r.Name)
	return nil
}
