package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	assetPath string
	quiet     bool
	verbose   bool
}

// documentFlags holds per-document inputs shared by render and check.
type documentFlags struct {
	letterhead string
	values     []string
	format     string
}

// outputFlags holds output mode flags.
type outputFlags struct {
	dir      string
	html     bool // Output HTML alongside PDF
	htmlOnly bool // Output HTML only, skip PDF
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common     commonFlags
	document   documentFlags
	output     outputFlags
	title      string
	lawyerName string
	style      string
	css        string
	timeout    string
	workers    int
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
	values []string
	strict bool
}

// varsFlags holds flags for the vars command.
type varsFlags struct {
	category string
}

// layoutFlags holds flags for the layout command.
type layoutFlags struct {
	common     commonFlags
	letterhead string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addDocumentFlags adds letterhead, values and format flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVarP(&f.letterhead, "letterhead", "l", "", "letterhead preset name or YAML file")
	fs.StringArrayVarP(&f.values, "values", "V", nil, "placeholder values YAML file (repeatable, one document each)")
	fs.StringVarP(&f.format, "format", "f", "", "content format: html, markdown, text (default: from extension)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (default: next to the content file)")
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// newFlagSet returns a FlagSet that reports parse errors as usage errors
// and prints its usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parse runs fs.Parse, wrapping errors other than --help as ErrUsage.
// pflag prints the usage itself on --help.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", w, printRenderUsage)

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addOutputFlags(fs, &f.output)
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.lawyerName, "lawyer-name", "", "lawyer name for watermarks")
	fs.StringVar(&f.style, "style", "", "base stylesheet name or CSS file path")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the stylesheet")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel browsers (0 = auto)")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, w io.Writer) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newFlagSet("check", w, printCheckUsage)

	addCommonFlags(fs, &f.common)
	fs.StringArrayVarP(&f.values, "values", "V", nil, "placeholder values YAML file (repeatable)")
	fs.BoolVar(&f.strict, "strict", false, "fail on unknown placeholders")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseVarsFlags parses vars command flags.
func parseVarsFlags(args []string, w io.Writer) (*varsFlags, []string, error) {
	f := &varsFlags{}
	fs := newFlagSet("vars", w, printVarsUsage)

	fs.StringVar(&f.category, "category", "", "only list one category")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseLayoutFlags parses layout command flags.
func parseLayoutFlags(args []string, w io.Writer) (*layoutFlags, []string, error) {
	f := &layoutFlags{}
	fs := newFlagSet("layout", w, printLayoutUsage)

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.letterhead, "letterhead", "l", "", "letterhead preset name or YAML file")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
