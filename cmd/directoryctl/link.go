package main

import (
	"fmt"
	"strings"

	"healthhub-directory/pkg/urlstate"
)

// Run executes the link command. It needs no feed: the link is the filter state.
func (c *LinkCmd) Run(deps *Dependencies) error {
	base := strings.TrimRight(c.Base, "?")
	if query := urlstate.Query(c.State()); query != "" {
		base += "?" + query
	}
	fmt.Fprintln(deps.Stdout, base)
	return nil
}
