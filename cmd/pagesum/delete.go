package main

import (
	"fmt"

	"github.com/pranavarora99/pagesum"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Summaries.DeleteSummary(deps.Ctx, c.ID); err != nil {
		if pagesum.ErrorCode(err) == pagesum.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: summary %q not found. Use 'pagesum list' to see stored summaries.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted summary %s\n", c.ID)
	return nil
}
