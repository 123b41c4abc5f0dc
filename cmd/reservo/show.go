package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/reservo"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	r, err := deps.Restaurants.FindRestaurantByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reservo.ErrorMessage(err))
		return err
	}

	if c.JSON {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(b))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%-12s %s\n", "ID:", r.ID)
	fmt.Fprintf(deps.Stdout, "%-12s %s\n", "Source:", r.SourceURL)
	fmt.Fprintln(deps.Stdout, reservo.FormatExtraction(r.ExtractionResult()))
	return nil
}
