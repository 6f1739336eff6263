package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/grindlemire/rowlayout/internal/debug"
	"github.com/grindlemire/rowlayout/internal/layout"
	"github.com/grindlemire/rowlayout/internal/specfile"
	"golang.org/x/term"
)

// fallbackWidth is used when neither a flag, the spec file nor a terminal provides a width.
const fallbackWidth = 320

// layoutFlags holds the options shared by the commands that lay out specs.
type layoutFlags struct {
	width       float64
	itemSpacing float64
	rowSpacing  float64
	itemHeight  float64
	json        bool
	jobs        int
	verbose     bool
	logPath     string

	set map[string]bool // Flags given explicitly on the command line
}

// newFlagSet returns a flag set whose errors are reported to the caller instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// register adds the shared layout flags to fs.
func (f *layoutFlags) register(fs *flag.FlagSet) {
	defaults := layout.DefaultConfig()
	fs.Float64Var(&f.width, "width", 0, "container width")
	fs.Float64Var(&f.itemSpacing, "item-spacing", defaults.ItemSpacing, "horizontal gap between items")
	fs.Float64Var(&f.rowSpacing, "row-spacing", defaults.RowSpacing, "vertical gap between rows")
	fs.Float64Var(&f.itemHeight, "item-height", defaults.ItemHeight, "height of every item")
	fs.BoolVar(&f.json, "json", false, "print JSON")
	fs.IntVar(&f.jobs, "j", runtime.NumCPU(), "number of files to process concurrently")
	fs.BoolVar(&f.verbose, "v", false, "verbose output")
	fs.StringVar(&f.logPath, "log", "", "append debug logs to this file")
}

// parse parses args and records which flags were set explicitly.
func (f *layoutFlags) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	if f.jobs < 1 {
		f.jobs = 1
	}
	if f.logPath != "" {
		if err := debug.Init(f.logPath); err != nil {
			return err
		}
	}
	return nil
}

// config layers the spacing policy: defaults, then the spec file, then explicit flags.
func (f *layoutFlags) config(file specfile.File) layout.Config {
	cfg := file.Apply(layout.DefaultConfig())
	if f.set["item-spacing"] {
		cfg.ItemSpacing = f.itemSpacing
	}
	if f.set["row-spacing"] {
		cfg.RowSpacing = f.rowSpacing
	}
	if f.set["item-height"] {
		cfg.ItemHeight = f.itemHeight
	}
	return cfg
}

// containerWidth picks the width flag, then the spec file's width, then the
// terminal width when stdout is a terminal, then fallbackWidth.
func (f *layoutFlags) containerWidth(file specfile.File) float64 {
	if f.set["width"] {
		return f.width
	}
	if file.ContainerWidth > 0 {
		return file.ContainerWidth
	}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			return float64(cols)
		}
	}
	return fallbackWidth
}

// engineFor builds an engine for one spec file.
func (f *layoutFlags) engineFor(file specfile.File) (*layout.Engine, error) {
	spec, err := file.Spec()
	if err != nil {
		return nil, err
	}
	return layout.NewEngine(
		layout.WithConfig(f.config(file)),
		layout.WithContainerWidth(f.containerWidth(file)),
		layout.WithSpec(spec),
	)
}
