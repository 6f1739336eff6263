package layout

// Calculate lays out spec in a container of the given width using cfg's spacing policy.
//
// The spec is validated first; on error no partial result is returned. Rows are
// processed top to bottom with a running vertical offset starting at 0. For each row:
//
//	totalItemSpacing = (items - 1) * ItemSpacing
//	availableWidth   = containerWidth - totalItemSpacing
//	itemWidth        = fraction * availableWidth
//	x0               = alignment offset of the row block
//
// availableWidth is not clamped, so a container narrower than a row's gaps yields
// negative item widths. A container width that is zero, negative or not finite
// is degenerate: every item gets an empty rect at the origin and the content size is zero.
//
// The content height includes one trailing RowSpacing after the last row.
func Calculate(cfg Config, containerWidth float64, spec Spec) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := Validate(spec); err != nil {
		return Result{}, err
	}

	rects := make([]ItemRect, 0, spec.ItemCount())

	if !isFinite(containerWidth) || containerWidth <= 0 {
		for i, row := range spec.Rows {
			for j := range row {
				rects = append(rects, ItemRect{Index: len(rects), Row: i, Column: j})
			}
		}
		return Result{Rects: rects}, nil
	}

	y := 0.0
	for i, row := range spec.Rows {
		rects = layoutRow(rects, cfg, containerWidth, spec.Alignment, i, row, y)
		y += cfg.ItemHeight + cfg.RowSpacing
	}

	return Result{
		Rects:       rects,
		ContentSize: Size{Width: containerWidth, Height: y},
	}, nil
}

// layoutRow appends the rects of one row at vertical offset y.
func layoutRow(rects []ItemRect, cfg Config, containerWidth float64, align Alignment, rowIndex int, row Row, y float64) []ItemRect {
	totalItemSpacing := float64(len(row)-1) * cfg.ItemSpacing
	availableWidth := containerWidth - totalItemSpacing

	var rowContentWidth float64
	for _, size := range row {
		rowContentWidth += size.Width(availableWidth)
	}

	x := align.Offset(containerWidth, rowContentWidth, totalItemSpacing)
	for j, size := range row {
		width := size.Width(availableWidth)
		rects = append(rects, ItemRect{
			Index:  len(rects),
			Row:    rowIndex,
			Column: j,
			Rect:   NewRect(x, y, width, cfg.ItemHeight),
		})
		x += width + cfg.ItemSpacing
	}
	return rects
}
