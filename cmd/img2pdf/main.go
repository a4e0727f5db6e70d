package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// run dispatches to the requested subcommand.
func run(args []string, stdout, stderr *os.File) error {
	if len(args) == 0 {
		printUsage(stderr)
		return ErrNoCommand
	}

	switch args[0] {
	case "convert":
		return runConvert(args[1:], stdout, stderr)
	case "merge":
		return runMerge(args[1:], stdout, stderr)
	case "decrypt":
		return runDecrypt(args[1:], stdout, stderr)
	case "version", "--version":
		fmt.Fprintf(stdout, "img2pdf %s\n", Version)
		return nil
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}
