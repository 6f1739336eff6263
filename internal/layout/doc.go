// Package layout implements a deterministic row-based box layout engine.
//
// Rows of items are stacked top to bottom. Each item's width is a fraction of
// its row's available width (the container width minus the gaps between the
// row's items), and every row is placed as a block according to the spec's
// [Alignment]. Types are re-exported through the root rowlayout package for
// public consumption.
//
// The main entry point is [Calculate], which validates a [Spec] and computes
// absolute [Rect] positions for every item. [Engine] wraps Calculate with a
// cached [Result] that is recomputed whenever the container width or the spec
// changes.
package layout
