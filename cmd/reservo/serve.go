package main

import (
	"fmt"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	deps.Server.Addr = c.Addr
	if err := deps.Server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	<-deps.Ctx.Done()
	return deps.Server.Close()
}
