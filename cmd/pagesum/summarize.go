package main

import (
	"fmt"
	"os"

	"github.com/pranavarora99/pagesum"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	rec, err := deps.Service.SummarizeURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}
	return writeRecord(deps.Stdout, rec, c.JSON)
}

// Run executes the file command.
func (c *FileCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s: %v\n", c.Path, err)
		return err
	}

	rec, err := deps.Service.SummarizeHTML(deps.Ctx, string(data), c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}
	return writeRecord(deps.Stdout, rec, c.JSON)
}
