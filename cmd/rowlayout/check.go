package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/rowlayout/internal/layout"
	"github.com/grindlemire/rowlayout/internal/specfile"
	"golang.org/x/sync/errgroup"
)

// runCheck implements the check subcommand.
// It loads and validates spec files without laying them out, reporting every
// violating row of every file.
func runCheck(args []string, stdout, stderr io.Writer) error {
	var flags layoutFlags
	fs := newFlagSet("check")
	flags.register(fs)
	if err := flags.parse(fs, args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		return fmt.Errorf("check: no spec files given")
	}

	if flags.verbose {
		fmt.Fprintf(stdout, "Checking %d spec file(s)\n", len(paths))
	}

	problems := make([][]error, len(paths))
	var g errgroup.Group
	g.SetLimit(flags.jobs)
	for i, path := range paths {
		g.Go(func() error {
			problems[i] = checkFile(path)
			return nil
		})
	}
	// Workers never fail; problems are collected per file.
	_ = g.Wait()

	var errorCount int
	for i, path := range paths {
		if flags.verbose {
			fmt.Fprintf(stdout, "Checking %s\n", path)
		}
		if len(problems[i]) == 0 {
			continue
		}
		errorCount++
		for _, err := range problems[i] {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if flags.verbose {
		fmt.Fprintf(stdout, "All %d file(s) passed checks\n", len(paths))
	}

	return nil
}

// checkFile loads and validates a single spec file.
func checkFile(path string) []error {
	file, err := specfile.Load(path)
	if err != nil {
		return []error{err}
	}
	spec, err := file.Spec()
	if err != nil {
		return []error{err}
	}
	errs := layout.ValidateAll(spec)
	if err := file.Apply(layout.DefaultConfig()).Validate(); err != nil {
		errs = append(errs, err)
	}
	return errs
}
