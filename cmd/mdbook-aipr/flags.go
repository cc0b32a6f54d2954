package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds flags shared across the preprocess and preview modes.
type cliFlags struct {
	config  string
	output  string
	quiet   bool
	verbose bool
	version bool
}

// newFlagSet builds the pflag set bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("mdbook-aipr", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file path (default: aipr.yaml next to the book)")
	fs.StringVarP(&f.output, "output", "o", "", "preview output file (default: stdout)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only report via exit code")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	return fs
}

// parseFlags parses args (including the program name) and returns the flags
// plus remaining positional arguments.
func parseFlags(args []string) (cliFlags, []string, error) {
	var flags cliFlags
	fs := newFlagSet(&flags)
	if err := fs.Parse(args[1:]); err != nil {
		return cliFlags{}, nil, err
	}
	return flags, fs.Args(), nil
}
