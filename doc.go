// Package rowlayout computes row-based box layouts.
//
// Users import this single package for the complete public API: item sizes,
// alignment, specs, the layout calculation and the caching engine.
//
// Items are arranged in rows stacked top to bottom. Each item's width is a
// fraction of its row's available width, and each row is aligned left, right
// or centered within the container:
//
//	spec := rowlayout.NewSpec(rowlayout.AlignRight,
//		rowlayout.Row{rowlayout.Small, rowlayout.Normal, rowlayout.Normal},
//		rowlayout.Row{rowlayout.Normal},
//	)
//	result, err := rowlayout.Calculate(rowlayout.DefaultConfig(), 300, spec)
//
// An [Engine] keeps the latest result and recomputes it only when the container
// width or the spec changes.
package rowlayout
