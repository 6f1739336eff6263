package specfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/grindlemire/rowlayout/internal/layout"
	"gopkg.in/yaml.v3"
)

// Format identifies a spec file encoding.
type Format uint8

const (
	FormatTOML Format = iota // .toml
	FormatYAML               // .yaml, .yml
	FormatJSON               // .json
)

// String returns the format's name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFor returns the format matching path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%s: unsupported spec file extension (want .toml, .yaml, .yml or .json)", path)
	}
}

// Config holds spacing overrides. Nil fields keep the engine's value.
type Config struct {
	ItemSpacing *float64 `toml:"item_spacing" yaml:"item_spacing" json:"item_spacing,omitempty"`
	RowSpacing  *float64 `toml:"row_spacing" yaml:"row_spacing" json:"row_spacing,omitempty"`
	ItemHeight  *float64 `toml:"item_height" yaml:"item_height" json:"item_height,omitempty"`
}

// File is the decoded content of a spec file.
type File struct {
	Alignment      string   `toml:"alignment" yaml:"alignment" json:"alignment"`
	ContainerWidth float64  `toml:"container_width" yaml:"container_width" json:"container_width,omitempty"`
	Rows           [][]Size `toml:"rows" yaml:"rows" json:"rows"`
	Config         Config   `toml:"config" yaml:"config" json:"config"`
}

// Load reads and decodes the spec file at path, choosing the decoder by extension.
func Load(path string) (File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading spec file: %w", err)
	}
	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode reads a spec file in the given format from r.
func Decode(r io.Reader, format Format) (File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return File{}, fmt.Errorf("decoding toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return File{}, fmt.Errorf("decoding toml: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return File{}, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("decoding json: %w", err)
		}
	default:
		return File{}, fmt.Errorf("unknown format %v", format)
	}
	return f, nil
}

// Spec converts the file into a layout spec. An empty alignment means center.
// The spec is not validated; use layout.Validate.
func (f File) Spec() (layout.Spec, error) {
	align := layout.AlignCenter
	if f.Alignment != "" {
		a, err := layout.ParseAlignment(f.Alignment)
		if err != nil {
			return layout.Spec{}, err
		}
		align = a
	}

	rows := make([]layout.Row, len(f.Rows))
	for i, items := range f.Rows {
		row := make(layout.Row, len(items))
		for j, size := range items {
			row[j] = layout.ItemSize(size)
		}
		rows[i] = row
	}
	return layout.NewSpec(align, rows...), nil
}

// Apply overlays the file's config values onto cfg.
func (f File) Apply(cfg layout.Config) layout.Config {
	if f.Config.ItemSpacing != nil {
		cfg.ItemSpacing = *f.Config.ItemSpacing
	}
	if f.Config.RowSpacing != nil {
		cfg.RowSpacing = *f.Config.RowSpacing
	}
	if f.Config.ItemHeight != nil {
		cfg.ItemHeight = *f.Config.ItemHeight
	}
	return cfg
}

// FromSpec builds a File describing spec.
func FromSpec(spec layout.Spec) File {
	rows := make([][]Size, len(spec.Rows))
	for i, row := range spec.Rows {
		items := make([]Size, len(row))
		for j, size := range row {
			items[j] = Size(size)
		}
		rows[i] = items
	}
	return File{Alignment: spec.Alignment.String(), Rows: rows}
}

// Demo returns the sample data the engine was first built around: four right
// aligned rows mixing small and normal items.
func Demo() layout.Spec {
	s, n := layout.Small, layout.Normal
	return layout.NewSpec(layout.AlignRight,
		layout.Row{s, n, n},
		layout.Row{s, s, s, s},
		layout.Row{s, n, s},
		layout.Row{n},
	)
}
