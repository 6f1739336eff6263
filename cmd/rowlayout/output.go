package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/grindlemire/rowlayout/internal/layout"
	"github.com/grindlemire/rowlayout/internal/specfile"
)

// report is the outcome of laying out one spec.
type report struct {
	Name           string        `json:"name"`
	ContainerWidth float64       `json:"container_width"`
	Config         configJSON    `json:"config"`
	Spec           specfile.File `json:"spec"`
	Rects          []rectJSON    `json:"rects"`
	ContentSize    sizeJSON      `json:"content_size"`

	result    layout.Result // Not serialized; used by the table printer
	alignment layout.Alignment
}

type configJSON struct {
	ItemSpacing float64 `json:"item_spacing"`
	RowSpacing  float64 `json:"row_spacing"`
	ItemHeight  float64 `json:"item_height"`
}

type rectJSON struct {
	Index  int     `json:"index"`
	Row    int     `json:"row"`
	Column int     `json:"column"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type sizeJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// newReport lays out the engine's spec and collects everything worth printing.
func newReport(name string, e *layout.Engine) (report, error) {
	result, err := e.Layout()
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", name, err)
	}
	cfg := e.Config()
	spec := e.Spec()
	return report{
		Name:           name,
		ContainerWidth: e.ContainerWidth(),
		Config:         configJSON(cfg),
		Spec:           specfile.FromSpec(spec),
		Rects:          rectsJSON(result.Rects),
		ContentSize:    sizeJSON(result.ContentSize),
		result:         result,
		alignment:      spec.Alignment,
	}, nil
}

func rectsJSON(items []layout.ItemRect) []rectJSON {
	out := make([]rectJSON, len(items))
	for i, item := range items {
		out[i] = rectJSON{
			Index:  item.Index,
			Row:    item.Row,
			Column: item.Column,
			X:      round(item.Rect.X),
			Y:      round(item.Rect.Y),
			Width:  round(item.Rect.Width),
			Height: round(item.Rect.Height),
		}
	}
	return out
}

// round trims floating point noise to two decimals and normalizes -0.
func round(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func num(v float64) string {
	return strconv.FormatFloat(round(v), 'f', -1, 64)
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTable prints a report header followed by one line per item.
func writeTable(w io.Writer, r report) error {
	fmt.Fprintf(w, "%s: width=%s alignment=%s items=%d content=%sx%s\n",
		r.Name, num(r.ContainerWidth), r.alignment, r.result.Len(),
		num(r.result.ContentSize.Width), num(r.result.ContentSize.Height))
	return writeRects(w, r.result.Rects)
}

// writeRects prints item rects as an aligned table.
func writeRects(w io.Writer, items []layout.ItemRect) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tROW\tCOL\tX\tY\tWIDTH\tHEIGHT")
	for _, item := range items {
		r := item.Rect
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\n",
			item.Index, item.Row, item.Column, num(r.X), num(r.Y), num(r.Width), num(r.Height))
	}
	return tw.Flush()
}
