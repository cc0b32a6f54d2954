// Command mdbook-aipr is an mdBook-style preprocessor for the AI Pocket
// Reference book: it expands {{#aipr_header}} macros into chapter headers
// and rewrites external markdown links to open in a new tab.
//
// The host build tool invokes it two ways:
//
//	mdbook-aipr supports <renderer>   # renderer capability check
//	mdbook-aipr [flags]               # [context, book] JSON on stdin,
//	                                  # transformed book JSON on stdout
//
// A third form renders a single chapter for local inspection:
//
//	mdbook-aipr preview chapter.md -o out.html
package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Printf("mdbook-aipr %s\n", Version)
		os.Exit(ExitSuccess)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, fmtArgs ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", fmtArgs...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := run(flags, args, os.Stdin, os.Stdout); err != nil {
		if !flags.quiet {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCodeFor(err))
	}
}
