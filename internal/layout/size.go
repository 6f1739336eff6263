package layout

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ItemSize is an item's width as a fraction of its row's available width.
// Valid sizes are finite and lie in (0, 1].
type ItemSize float64

const (
	Small  ItemSize = 0.2 // One fifth of the available width
	Normal ItemSize = 0.4 // Two fifths of the available width
)

// namedSizes maps the names accepted by ParseItemSize to their sizes.
var namedSizes = map[string]ItemSize{
	"small":  Small,
	"normal": Normal,
}

// Fraction returns an ItemSize for an arbitrary fraction of the available width.
// The result is not checked; use Valid or Validate.
func Fraction(f float64) ItemSize {
	return ItemSize(f)
}

// Fraction returns the size as a plain float64.
func (s ItemSize) Fraction() float64 {
	return float64(s)
}

// Valid reports whether the size is a finite fraction in (0, 1].
func (s ItemSize) Valid() bool {
	f := s.Fraction()
	return isFinite(f) && f > 0 && f <= 1
}

// Width returns the item's width for the given available row width.
func (s ItemSize) Width(available float64) float64 {
	return s.Fraction() * available
}

// String returns the size's name if it has one, otherwise its fraction.
func (s ItemSize) String() string {
	switch s {
	case Small:
		return "small"
	case Normal:
		return "normal"
	default:
		return strconv.FormatFloat(s.Fraction(), 'g', -1, 64)
	}
}

// ParseItemSize parses a size name ("small", "normal") or a decimal fraction ("0.25").
// Names are case-insensitive. Parsed fractions must be valid.
func ParseItemSize(s string) (ItemSize, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if size, ok := namedSizes[name]; ok {
		return size, nil
	}

	f, err := strconv.ParseFloat(name, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown item size %q (want one of %s or a fraction in (0, 1])",
			s, strings.Join(NamedSizes(), ", "))
	}
	size := Fraction(f)
	if !size.Valid() {
		return 0, fmt.Errorf("item size %q out of range (0, 1]", s)
	}
	return size, nil
}

// NamedSizes returns the names accepted by ParseItemSize, sorted.
func NamedSizes() []string {
	names := maps.Keys(namedSizes)
	slices.Sort(names)
	return names
}
