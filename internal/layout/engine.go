package layout

import (
	"iter"

	"github.com/grindlemire/rowlayout/internal/debug"
)

// Engine holds a container width, a spec and the most recent layout of the two.
// The cached Result is invalidated whenever the width or the spec changes and is
// fully recomputed on the next query.
//
// An Engine is not safe for concurrent use; callers sharing one across goroutines
// must synchronize access themselves. Separate engines are fully independent.
type Engine struct {
	config         Config
	containerWidth float64
	spec           Spec

	result Result
	err    error
	dirty  bool // Cached result needs recalculation
}

// NewEngine creates an engine with the default spacing policy, an empty spec and
// a zero container width, then applies opts in order.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		config: DefaultConfig(),
		dirty:  true, // New engines need layout
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Config returns the engine's spacing policy.
func (e *Engine) Config() Config {
	return e.config
}

// ContainerWidth returns the current container width.
func (e *Engine) ContainerWidth() float64 {
	return e.containerWidth
}

// Spec returns a copy of the current spec.
func (e *Engine) Spec() Spec {
	return e.spec.Clone()
}

// SetContainerWidth updates the container width and marks the layout dirty if it changed.
func (e *Engine) SetContainerWidth(width float64) {
	if width == e.containerWidth {
		return
	}
	e.containerWidth = width
	e.MarkDirty()
}

// SetSpec replaces the spec and marks the layout dirty if it changed.
// The spec is copied, so later changes to the caller's rows have no effect.
func (e *Engine) SetSpec(spec Spec) {
	if spec.Equal(e.spec) {
		return
	}
	e.spec = spec.Clone()
	e.MarkDirty()
}

// MarkDirty forces a full recomputation on the next query.
func (e *Engine) MarkDirty() {
	e.dirty = true
}

// IsDirty returns whether the cached layout is stale.
func (e *Engine) IsDirty() bool {
	return e.dirty
}

// Layout returns the layout of the current spec in the current container width,
// recomputing it if anything changed since the last call.
// An invalid spec yields its validation error and no result.
func (e *Engine) Layout() (Result, error) {
	if e.dirty {
		e.recalculate()
	}
	return e.result, e.err
}

func (e *Engine) recalculate() {
	e.result, e.err = Calculate(e.config, e.containerWidth, e.spec)
	e.dirty = false

	if e.err != nil {
		debug.Log("layout: width=%g rows=%d: %v", e.containerWidth, len(e.spec.Rows), e.err)
		return
	}
	debug.Log("layout: width=%g rows=%d items=%d content=%gx%g",
		e.containerWidth, len(e.spec.Rows), e.result.Len(),
		e.result.ContentSize.Width, e.result.ContentSize.Height)
}

// ContentSize returns the size needed to display every row.
func (e *Engine) ContentSize() (Size, error) {
	result, err := e.Layout()
	if err != nil {
		return Size{}, err
	}
	return result.ContentSize, nil
}

// RectsIntersecting returns the item rects that overlap query.
func (e *Engine) RectsIntersecting(query Rect) (iter.Seq[ItemRect], error) {
	result, err := e.Layout()
	if err != nil {
		return nil, err
	}
	return result.Intersecting(query), nil
}

// RectAt returns the item rect with the given flat index.
func (e *Engine) RectAt(index int) (ItemRect, error) {
	result, err := e.Layout()
	if err != nil {
		return ItemRect{}, err
	}
	return result.RectAt(index)
}
