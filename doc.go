// Package lawdoc generates Arabic legal contracts on a firm letterhead.
//
// # Quick Start
//
// Create a generator, render a contract, and close when done:
//
//	gen, err := lawdoc.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	lh := lawdoc.NewDynamicLetterhead("مكتب المحاماة")
//	result, err := gen.Generate(ctx, lawdoc.Input{
//	    Content:    "<p>العميل: {{client_name}}</p>",
//	    Values:     map[string]string{"client_name": "أحمد"},
//	    Letterhead: lh,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("contract.pdf", result.PDF, 0644)
//
// The result contains the PDF bytes, the assembled HTML, the compiled
// layout and the placeholder reports. Use Preview (or Input.HTMLOnly) to
// skip the browser entirely.
//
// # Generation Pipeline
//
//  1. Placeholder substitution ({{key}}), with "auto" date values
//  2. Content conversion (editor HTML, Markdown via goldmark, plain text)
//  3. Layout compilation: band heights, content padding, page numbers
//  4. Header, footer and watermark fragments for the letterhead mode
//  5. Assembly into one A4, right-to-left HTML document with inline CSS
//  6. Image preload gate, then PDF rendering via headless Chrome (go-rod)
//
// Substitution is partial: a placeholder without a value stays in the
// output verbatim and is reported in Result.Missing. Placeholders that the
// registry does not know are reported in Result.Unknown. Neither fails
// the generation.
//
// # Letterheads
//
// A Letterhead is either an *ImageLetterhead, whose header and footer are
// pre-cropped full-width images, or a *DynamicLetterhead built from firm
// data (logo, names, contact fields). Missing or invalid numbers fall back
// to documented defaults, so generated CSS never contains NaN.
//
// # Parallel Processing
//
// For batch output, use GeneratorPool to manage multiple browser instances:
//
//	pool := lawdoc.NewGeneratorPool(4)
//	defer pool.Close()
//
//	gen, err := pool.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(gen)
//	result, err := gen.Generate(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to specify a custom Chrome binary; the sandbox is
// disabled when it is set or when CI=true.
package lawdoc
