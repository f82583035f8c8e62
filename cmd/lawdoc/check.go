package main

import (
	"errors"
	"fmt"
	"strings"

	lawdoc "github.com/alnah/go-lawdoc"
	"github.com/alnah/go-lawdoc/internal/config"
	"github.com/alnah/go-lawdoc/internal/hints"
)

// ErrUnknownPlaceholders is returned by check --strict.
var ErrUnknownPlaceholders = errors.New("template uses unknown placeholders")

// autoFilledKeys are filled by the generator when a template uses them
// without a value.
var autoFilledKeys = map[string]bool{"current_date": true}

// runCheck lists the placeholders of a template without rendering it.
func runCheck(args []string, env *Environment) error {
	f, positional, err := parseCheckFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: check takes exactly one content file, got %d", ErrUsage, len(positional))
	}

	cfg, err := env.loadConfig(f.common.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	content, err := readContent(positional[0])
	if err != nil {
		return err
	}

	registry := lawdoc.DefaultRegistry()
	found := lawdoc.ExtractPlaceholders(content)
	unknown := registry.UnknownPlaceholders(content)

	if len(found) == 0 {
		fmt.Fprintln(env.Stdout, "No placeholders found")
	}
	for _, key := range found {
		label := "(unknown)"
		if v, ok := registry.Lookup(key); ok {
			label = v.Label
		}
		fmt.Fprintf(env.Stdout, "  %s  %s\n", lawdoc.FormatPlaceholder(key), label)
	}

	for _, path := range f.values {
		values, err := config.LoadValues(path)
		if err != nil {
			return err
		}
		merged := cloneValues(cfg.Defaults.Values)
		if merged == nil {
			merged = make(map[string]string, len(values))
		}
		for k, v := range values {
			merged[k] = v
		}

		missing := withoutAutoFilled(lawdoc.MissingPlaceholders(content, merged))
		if len(missing) == 0 {
			fmt.Fprintf(env.Stdout, "%s: complete\n", path)
		} else {
			fmt.Fprintf(env.Stdout, "%s: no value for %s\n", path, strings.Join(missing, ", "))
		}
	}

	if len(unknown) == 0 {
		return nil
	}
	if f.strict {
		return fmt.Errorf("%w: %s", ErrUnknownPlaceholders, strings.Join(unknown, ", "))
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stderr, "warning: %d unknown placeholder(s)%s\n", len(unknown), hints.ForUnknownPlaceholders(unknown))
	}
	return nil
}

func withoutAutoFilled(keys []string) []string {
	out := keys[:0:0]
	for _, k := range keys {
		if !autoFilledKeys[k] {
			out = append(out, k)
		}
	}
	return out
}
