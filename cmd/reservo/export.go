package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/reservo"
	"github.com/fwojciec/reservo/fs"
)

// Run executes the export command. The output directory is replaced only
// after every restaurant has been written.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := reservo.RestaurantFilter{}
	if c.City != "" {
		filter.City = &c.City
	}

	restaurants, err := deps.Restaurants.FindRestaurants(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reservo.ErrorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	store := fs.NewStore(filepath.Dir(dir), filepath.Base(dir))
	for _, r := range restaurants {
		if err := store.Save(r); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: export %s: %s\n", r.ID, reservo.ErrorMessage(err))
			return err
		}
	}
	if len(restaurants) == 0 {
		fmt.Fprintln(deps.Stdout, "No restaurants to export.")
		return nil
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d restaurants to %s\n", len(restaurants), dir)
	return nil
}
