package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grindlemire/rowlayout/internal/layout"
	"github.com/grindlemire/rowlayout/internal/specfile"
)

// runQuery implements the query subcommand.
// Exactly one of -rect, -index or -point selects the items to print.
func runQuery(args []string, stdout io.Writer) error {
	var flags layoutFlags
	var rectArg, pointArg string
	var index int
	var demo bool

	fs := newFlagSet("query")
	flags.register(fs)
	fs.StringVar(&rectArg, "rect", "", "x,y,w,h region to intersect")
	fs.IntVar(&index, "index", -1, "flat item index")
	fs.StringVar(&pointArg, "point", "", "x,y point to hit test")
	fs.BoolVar(&demo, "demo", false, "query the built-in demo rows instead of a file")
	if err := flags.parse(fs, args); err != nil {
		return err
	}

	modes := 0
	for _, name := range []string{"rect", "index", "point"} {
		if flags.set[name] {
			modes++
		}
	}
	if modes != 1 {
		return fmt.Errorf("query: exactly one of -rect, -index or -point is required")
	}

	file, err := queryFile(fs.Args(), demo)
	if err != nil {
		return err
	}
	e, err := flags.engineFor(file)
	if err != nil {
		return err
	}

	var items []layout.ItemRect
	switch {
	case flags.set["rect"]:
		query, err := parseRect(rectArg)
		if err != nil {
			return err
		}
		seq, err := e.RectsIntersecting(query)
		if err != nil {
			return err
		}
		for item := range seq {
			items = append(items, item)
		}
	case flags.set["index"]:
		item, err := e.RectAt(index)
		if err != nil {
			return err
		}
		items = append(items, item)
	case flags.set["point"]:
		p, err := parsePoint(pointArg)
		if err != nil {
			return err
		}
		result, err := e.Layout()
		if err != nil {
			return err
		}
		if item, ok := result.HitTest(p); ok {
			items = append(items, item)
		}
	}

	if flags.json {
		return writeJSON(stdout, rectsJSON(items))
	}
	return writeRects(stdout, items)
}

func queryFile(paths []string, demo bool) (specfile.File, error) {
	switch {
	case demo && len(paths) == 0:
		return specfile.FromSpec(specfile.Demo()), nil
	case !demo && len(paths) == 1:
		return specfile.Load(paths[0])
	default:
		return specfile.File{}, fmt.Errorf("query: want exactly one spec file or -demo")
	}
}

// parseRect parses "x,y,w,h".
func parseRect(s string) (layout.Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return layout.Rect{}, fmt.Errorf("invalid -rect %q: %w", s, err)
	}
	return layout.NewRect(v[0], v[1], v[2], v[3]), nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (layout.Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return layout.Point{}, fmt.Errorf("invalid -point %q: %w", s, err)
	}
	return layout.Point{X: v[0], Y: v[1]}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
