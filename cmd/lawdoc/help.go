package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lawdoc <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Generate contract PDFs from a template")
	fmt.Fprintln(w, "  check      List the placeholders a template uses")
	fmt.Fprintln(w, "  vars       List the known contract variables")
	fmt.Fprintln(w, "  layout     Show the print geometry of a letterhead")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'lawdoc help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lawdoc render <content> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a contract template on a letterhead. Each values file produces")
	fmt.Fprintln(w, "one document; several values files are rendered in parallel.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content    Template file (.html, .md or .txt)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -l, --letterhead <s>      Letterhead preset name or YAML file")
	fmt.Fprintln(w, "  -V, --values <path>       Values YAML file (repeatable)")
	fmt.Fprintln(w, "  -f, --format <s>          Content format: html, markdown, text")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --lawyer-name <s>     Lawyer name for watermarks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "                            Values of \"auto\" or \"auto:FORMAT\" become today's date.")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel browsers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html                Write HTML alongside the PDF")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Stylesheet name or CSS file path")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles and letterheads directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lawdoc check <content> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the placeholders in a template. Unknown placeholders are")
	fmt.Fprintln(w, "reported; with --values, placeholders left without a value too.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -V, --values <path>       Values YAML file (repeatable)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --strict              Fail on unknown placeholders")
}

// printVarsUsage prints usage for the vars command.
func printVarsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lawdoc vars [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the contract variables templates may use.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --category <s>        client, case, payment, contract, firm")
}

// printLayoutUsage prints usage for the layout command.
func printLayoutUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lawdoc layout [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the compiled print geometry of a letterhead, in millimeters.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -l, --letterhead <s>      Letterhead preset name or YAML file")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles and letterheads directory")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "vars":
		printVarsUsage(env.Stdout)
	case "layout":
		printLayoutUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: lawdoc version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: lawdoc help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
