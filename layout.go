// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package rowlayout

import "github.com/grindlemire/rowlayout/internal/layout"

// ItemSize is an item's width as a fraction of its row's available width.
type ItemSize = layout.ItemSize

const (
	Small  = layout.Small
	Normal = layout.Normal
)

// Alignment specifies how each row is placed horizontally within the container.
type Alignment = layout.Alignment

const (
	AlignCenter = layout.AlignCenter
	AlignLeft   = layout.AlignLeft
	AlignRight  = layout.AlignRight
)

// Row is one row of items in left-to-right order.
type Row = layout.Row

// Spec is an alignment plus rows stacked top to bottom.
type Spec = layout.Spec

// Config holds the spacing policy: item spacing, row spacing and item height.
type Config = layout.Config

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// ItemRect is the computed rectangle of one item and its position in the spec.
type ItemRect = layout.ItemRect

// Result holds the item rects and content size of a layout pass.
type Result = layout.Result

// Engine caches the layout of a spec in a container.
type Engine = layout.Engine

// Option configures an Engine.
type Option = layout.Option

// Error types.
type (
	EmptyRowError        = layout.EmptyRowError
	OverfullRowError     = layout.OverfullRowError
	InvalidSizeError     = layout.InvalidSizeError
	IndexOutOfRangeError = layout.IndexOutOfRangeError
	ConfigError          = layout.ConfigError
)

// Sentinel errors for use with errors.Is.
var (
	ErrEmptyRow        = layout.ErrEmptyRow
	ErrOverfullRow     = layout.ErrOverfullRow
	ErrInvalidSize     = layout.ErrInvalidSize
	ErrIndexOutOfRange = layout.ErrIndexOutOfRange
	ErrInvalidConfig   = layout.ErrInvalidConfig
)

// Fraction creates an ItemSize for an arbitrary fraction of the available width.
func Fraction(f float64) ItemSize {
	return layout.Fraction(f)
}

// ParseItemSize parses "small", "normal" or a decimal fraction.
func ParseItemSize(s string) (ItemSize, error) {
	return layout.ParseItemSize(s)
}

// ParseAlignment parses "center", "left" or "right".
func ParseAlignment(s string) (Alignment, error) {
	return layout.ParseAlignment(s)
}

// NewSpec creates a Spec with the given alignment and rows.
func NewSpec(alignment Alignment, rows ...Row) Spec {
	return layout.NewSpec(alignment, rows...)
}

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// DefaultConfig returns the default spacing policy (20 / 20 / 30).
func DefaultConfig() Config {
	return layout.DefaultConfig()
}

// Validate checks spec and returns the first empty, overfull or invalid row.
func Validate(spec Spec) error {
	return layout.Validate(spec)
}

// Calculate validates spec and lays it out in a container of the given width.
func Calculate(cfg Config, containerWidth float64, spec Spec) (Result, error) {
	return layout.Calculate(cfg, containerWidth, spec)
}

// NewEngine creates a layout engine.
func NewEngine(opts ...Option) (*Engine, error) {
	return layout.NewEngine(opts...)
}

// WithConfig sets the engine's whole spacing policy.
func WithConfig(cfg Config) Option { return layout.WithConfig(cfg) }

// WithItemSpacing sets the horizontal gap between items in a row.
func WithItemSpacing(spacing float64) Option { return layout.WithItemSpacing(spacing) }

// WithRowSpacing sets the vertical gap between rows.
func WithRowSpacing(spacing float64) Option { return layout.WithRowSpacing(spacing) }

// WithItemHeight sets the height of every item.
func WithItemHeight(height float64) Option { return layout.WithItemHeight(height) }

// WithContainerWidth sets the engine's initial container width.
func WithContainerWidth(width float64) Option { return layout.WithContainerWidth(width) }

// WithSpec sets the engine's initial spec.
func WithSpec(spec Spec) Option { return layout.WithSpec(spec) }
