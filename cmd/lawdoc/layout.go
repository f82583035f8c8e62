package main

import (
	"fmt"
	"text/tabwriter"

	lawdoc "github.com/alnah/go-lawdoc"
	"github.com/alnah/go-lawdoc/internal/layout"
)

// runLayout prints the compiled geometry of a letterhead.
func runLayout(args []string, env *Environment) error {
	f, positional, err := parseLayoutFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: layout takes no arguments", ErrUsage)
	}

	cfg, err := env.loadConfig(f.common.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if f.letterhead != "" {
		cfg.Letterhead = f.letterhead
	}
	if f.common.assetPath != "" {
		cfg.Assets.BasePath = f.common.assetPath
	}

	lh, err := loadLetterhead(cfg, env)
	if err != nil {
		return err
	}
	printLayout(env, lawdoc.CompileLayout(lh))
	return nil
}

// printLayout writes geo as aligned "name: value" lines. Box values are
// in CSS order: top right bottom left.
func printLayout(env *Environment, geo lawdoc.Layout) {
	pageNumbers := "off"
	if geo.PageNumberCSS != "" {
		pageNumbers = "on"
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "mode:\t%s\n", geo.Mode)
	fmt.Fprintf(tw, "header band:\t%s\n", layout.MM(geo.HeaderBandHeightMM))
	fmt.Fprintf(tw, "footer band:\t%s\n", layout.MM(geo.FooterBandHeightMM))
	fmt.Fprintf(tw, "content padding:\t%s %s %s %s\n",
		layout.MM(geo.ContentPaddingTopMM), layout.MM(geo.ContentPaddingRightMM),
		layout.MM(geo.ContentPaddingBottomMM), layout.MM(geo.ContentPaddingLeftMM))
	fmt.Fprintf(tw, "page margins:\t%s %s %s %s\n",
		layout.MM(geo.MarginTopMM), layout.MM(geo.MarginRightMM),
		layout.MM(geo.MarginBottomMM), layout.MM(geo.MarginLeftMM))
	fmt.Fprintf(tw, "page numbers:\t%s\n", pageNumbers)
	_ = tw.Flush()
}
