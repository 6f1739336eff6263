package layout

import (
	"fmt"
	"strings"
)

// Alignment specifies how each row is placed horizontally as a block
// within the container.
type Alignment uint8

const (
	AlignCenter Alignment = iota // Equal free space on both sides
	AlignLeft                    // Flush with the left edge
	AlignRight                   // Flush with the right edge
)

// String returns the alignment's lowercase name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// ParseAlignment parses "center", "left" or "right" (case-insensitive).
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignCenter, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q (want center, left or right)", s)
	}
}

// Offset returns the x coordinate of a row's first item.
// rowContentWidth excludes the gaps between items; totalItemSpacing is the sum of those gaps.
// The result is not clamped: a row wider than the container gets a negative offset.
func (a Alignment) Offset(containerWidth, rowContentWidth, totalItemSpacing float64) float64 {
	switch a {
	case AlignLeft:
		return 0
	case AlignRight:
		return containerWidth - rowContentWidth - totalItemSpacing
	case AlignCenter:
		return (containerWidth - rowContentWidth - totalItemSpacing) / 2
	default:
		return 0
	}
}
