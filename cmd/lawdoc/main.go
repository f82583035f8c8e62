package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

func main() {
	env := DefaultEnv()

	logger := newLogger(env.Stderr, hasVerboseFlag(os.Args[1:]))
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Sugar().Infof))
	_ = logger.Sync()

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches the command in args and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "render":
		err = runRender(ctx, rest, env)
	case "check":
		err = runCheck(rest, env)
	case "vars":
		err = runVars(rest, env)
	case "layout":
		err = runLayout(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "lawdoc %s\n", Version)
	case "help", "-h", "--help":
		runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, env))
	return exitCodeFor(err)
}

// hasVerboseFlag scans raw args for -v/--verbose before any command parses them.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" || a == "--verbose=true" {
			return true
		}
	}
	return false
}
