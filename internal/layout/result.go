package layout

import "iter"

// ItemRect is the computed rectangle of one item.
// Index is the item's 0-based position in row-major order; Row and Column
// locate the item in the Spec it came from.
type ItemRect struct {
	Index  int
	Row    int
	Column int
	Rect   Rect
}

// Result holds the output of a layout pass.
type Result struct {
	// Rects are in row-major order; Rects[i].Index == i.
	Rects []ItemRect

	// ContentSize is the container width and the accumulated vertical extent.
	ContentSize Size
}

// Len returns the number of item rects.
func (r Result) Len() int {
	return len(r.Rects)
}

// RectAt returns the item rect with the given flat index.
// Returns *IndexOutOfRangeError if index is outside [0, Len()).
func (r Result) RectAt(index int) (ItemRect, error) {
	if index < 0 || index >= len(r.Rects) {
		return ItemRect{}, &IndexOutOfRangeError{Index: index, Len: len(r.Rects)}
	}
	return r.Rects[index], nil
}

// Intersecting returns the item rects that overlap query, in index order.
// Touching edges do not count. The sequence is lazy and can be ranged over
// any number of times.
func (r Result) Intersecting(query Rect) iter.Seq[ItemRect] {
	rects := r.Rects
	return func(yield func(ItemRect) bool) {
		for _, item := range rects {
			if !item.Rect.Intersects(query) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// HitTest returns the item whose rect contains p.
// Items never overlap on a valid layout, so at most one item matches.
func (r Result) HitTest(p Point) (ItemRect, bool) {
	for _, item := range r.Rects {
		if p.In(item.Rect) {
			return item, true
		}
	}
	return ItemRect{}, false
}

// Bounds returns the union of all non-empty item rects.
func (r Result) Bounds() Rect {
	var bounds Rect
	for _, item := range r.Rects {
		bounds = bounds.Union(item.Rect)
	}
	return bounds
}
