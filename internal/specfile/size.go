package specfile

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/grindlemire/rowlayout/internal/layout"
	"gopkg.in/yaml.v3"
)

// Size is an item size as written in a spec file: a name or a number.
// Numbers are taken as-is so that out-of-range fractions surface from
// layout.Validate with their row and item position.
type Size layout.ItemSize

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Size) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return s.parse(v)
	case float64:
		*s = Size(v)
		return nil
	case int64:
		*s = Size(float64(v))
		return nil
	default:
		return fmt.Errorf("item size must be a name or a number, got %T", v)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: item size must be a scalar", node.Line)
	}
	if tag := node.ShortTag(); tag == "!!int" || tag == "!!float" {
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = Size(f)
		return nil
	}
	if err := s.parse(node.Value); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Size) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*s = Size(f)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("item size must be a name or a number, got %s", data)
	}
	return s.parse(name)
}

// MarshalJSON writes named sizes by name and others as numbers.
func (s Size) MarshalJSON() ([]byte, error) {
	size := layout.ItemSize(s)
	switch size {
	case layout.Small, layout.Normal:
		return json.Marshal(size.String())
	default:
		return json.Marshal(size.Fraction())
	}
}

func (s *Size) parse(v string) error {
	size, err := layout.ParseItemSize(v)
	if err != nil {
		return err
	}
	*s = Size(size)
	return nil
}
