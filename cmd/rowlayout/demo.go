package main

import (
	"io"

	"github.com/grindlemire/rowlayout/internal/specfile"
)

// runDemo implements the demo subcommand.
// It lays out the built-in demo rows with the same flags as layout.
func runDemo(args []string, stdout io.Writer) error {
	var flags layoutFlags
	fs := newFlagSet("demo")
	flags.register(fs)
	if err := flags.parse(fs, args); err != nil {
		return err
	}

	file := specfile.FromSpec(specfile.Demo())
	e, err := flags.engineFor(file)
	if err != nil {
		return err
	}
	r, err := newReport("demo", e)
	if err != nil {
		return err
	}
	return printReports(stdout, &flags, []report{r})
}
