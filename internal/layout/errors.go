package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrEmptyRow        = errors.New("empty row")
	ErrOverfullRow     = errors.New("overfull row")
	ErrInvalidSize     = errors.New("invalid item size")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidConfig   = errors.New("invalid layout config")
)

// EmptyRowError reports a row with no items.
type EmptyRowError struct {
	Row int
}

// Error implements the error interface.
func (e *EmptyRowError) Error() string {
	return fmt.Sprintf("row %d: row must contain at least one item", e.Row)
}

// Is matches ErrEmptyRow.
func (e *EmptyRowError) Is(target error) bool {
	return target == ErrEmptyRow
}

// OverfullRowError reports a row whose fractions sum beyond 1.
type OverfullRowError struct {
	Row int
	Sum float64
}

// Error implements the error interface.
func (e *OverfullRowError) Error() string {
	return fmt.Sprintf("row %d: item fractions sum to %g, must not exceed 1", e.Row, e.Sum)
}

// Is matches ErrOverfullRow.
func (e *OverfullRowError) Is(target error) bool {
	return target == ErrOverfullRow
}

// InvalidSizeError reports an item whose fraction is not a finite value in (0, 1].
type InvalidSizeError struct {
	Row  int
	Item int
	Size ItemSize
}

// Error implements the error interface.
func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("row %d, item %d: size %s is not a fraction in (0, 1]", e.Row, e.Item, e.Size)
}

// Is matches ErrInvalidSize.
func (e *InvalidSizeError) Is(target error) bool {
	return target == ErrInvalidSize
}

// IndexOutOfRangeError reports a lookup outside [0, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Is matches ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// ConfigError reports an unusable engine configuration value.
type ConfigError struct {
	Field string
	Value float64
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Field)
	sb.WriteString(" must be a finite non-negative value, got ")
	sb.WriteString(fmt.Sprintf("%g", e.Value))
	return sb.String()
}

// Is matches ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
