package main

import (
	"fmt"
	"text/tabwriter"

	lawdoc "github.com/alnah/go-lawdoc"
)

// runVars prints the variable catalog, grouped by category.
func runVars(args []string, env *Environment) error {
	f, positional, err := parseVarsFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: vars takes no arguments", ErrUsage)
	}

	registry := lawdoc.DefaultRegistry()
	categories := registry.Categories()
	if f.category != "" {
		c := lawdoc.Category(f.category)
		if !c.Valid() {
			return fmt.Errorf("%w: %q", lawdoc.ErrInvalidCategory, f.category)
		}
		categories = []lawdoc.Category{c}
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	for i, c := range categories {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s:\n", c)
		for _, v := range registry.ByCategory(c) {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.Placeholder(), v.Label, v.Description)
		}
	}
	return tw.Flush()
}
