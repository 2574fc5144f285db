package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sift"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.SearchWeb(deps.Ctx, strings.Join(c.Query, " "), c.MaxResults)
	return report(deps, out, err)
}

// Run executes the news command.
func (c *NewsCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.SearchNews(deps.Ctx, strings.Join(c.Query, " "), c.MaxResults)
	return report(deps, out, err)
}

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	out, err := deps.Service.FetchContent(deps.Ctx, c.URL, c.MaxLength)
	return report(deps, out, err)
}

func report(deps *Dependencies, out string, err error) error {
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, strings.TrimRight(out, "\n"))
	return nil
}
