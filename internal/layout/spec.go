package layout

// Row is one row of items in left-to-right placement order.
type Row []ItemSize

// Len returns the number of items in the row.
func (r Row) Len() int {
	return len(r)
}

// Sum returns the sum of the row's fractions.
func (r Row) Sum() float64 {
	var sum float64
	for _, size := range r {
		sum += size.Fraction()
	}
	return sum
}

// Spec describes what to lay out: an alignment shared by all rows and the rows
// themselves, stacked top to bottom in order. The engine never mutates a Spec.
type Spec struct {
	Alignment Alignment
	Rows      []Row
}

// NewSpec creates a Spec with the given alignment and rows.
func NewSpec(alignment Alignment, rows ...Row) Spec {
	return Spec{Alignment: alignment, Rows: rows}
}

// ItemCount returns the total number of items across all rows.
func (s Spec) ItemCount() int {
	n := 0
	for _, row := range s.Rows {
		n += len(row)
	}
	return n
}

// Clone returns a deep copy of the spec.
func (s Spec) Clone() Spec {
	rows := make([]Row, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = append(Row(nil), row...)
	}
	return Spec{Alignment: s.Alignment, Rows: rows}
}

// Equal reports whether two specs have the same alignment and rows.
func (s Spec) Equal(other Spec) bool {
	if s.Alignment != other.Alignment || len(s.Rows) != len(other.Rows) {
		return false
	}
	for i, row := range s.Rows {
		if len(row) != len(other.Rows[i]) {
			return false
		}
		for j, size := range row {
			if size != other.Rows[i][j] {
				return false
			}
		}
	}
	return true
}
