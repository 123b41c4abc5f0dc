package main

import (
	"fmt"

	"github.com/fwojciec/reservo"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := reservo.RestaurantFilter{Limit: c.Limit}
	if c.City != "" {
		filter.City = &c.City
	}
	if c.Cuisine != "" {
		filter.Cuisine = &c.Cuisine
	}

	restaurants, err := deps.Restaurants.FindRestaurants(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reservo.ErrorMessage(err))
		return err
	}

	if len(restaurants) == 0 {
		fmt.Fprintln(deps.Stdout, "No restaurants found. Use 'reservo import --save' to add some.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, reservo.FormatRestaurants(restaurants))
	return nil
}
