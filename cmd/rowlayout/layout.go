package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/rowlayout/internal/specfile"
	"golang.org/x/sync/errgroup"
)

// runLayout implements the layout subcommand.
// Files are laid out concurrently, each with its own engine, and printed in argument order.
func runLayout(args []string, stdout io.Writer) error {
	var flags layoutFlags
	fs := newFlagSet("layout")
	flags.register(fs)
	if err := flags.parse(fs, args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		return fmt.Errorf("layout: no spec files given")
	}

	if flags.verbose {
		fmt.Fprintf(stdout, "Laying out %d spec file(s)\n", len(paths))
	}

	reports := make([]report, len(paths))
	var g errgroup.Group
	g.SetLimit(flags.jobs)
	for i, path := range paths {
		g.Go(func() error {
			r, err := layoutFile(&flags, path)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return printReports(stdout, &flags, reports)
}

// layoutFile loads one spec file and lays it out.
func layoutFile(flags *layoutFlags, path string) (report, error) {
	file, err := specfile.Load(path)
	if err != nil {
		return report{}, err
	}
	e, err := flags.engineFor(file)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", path, err)
	}
	return newReport(path, e)
}

func printReports(w io.Writer, flags *layoutFlags, reports []report) error {
	if flags.json {
		return writeJSON(w, reports)
	}
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := writeTable(w, r); err != nil {
			return err
		}
	}
	return nil
}
