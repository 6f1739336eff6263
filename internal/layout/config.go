package layout

const (
	DefaultItemSpacing = 20 // Horizontal gap between adjacent items in a row
	DefaultRowSpacing  = 20 // Vertical gap between adjacent rows
	DefaultItemHeight  = 30 // Height of every item
)

// Config holds the fixed spacing policy applied to every layout.
type Config struct {
	ItemSpacing float64 // Horizontal gap inserted between adjacent items in a row
	RowSpacing  float64 // Vertical gap inserted between adjacent rows
	ItemHeight  float64 // Height applied uniformly to every item
}

// DefaultConfig returns the default spacing policy.
func DefaultConfig() Config {
	return Config{
		ItemSpacing: DefaultItemSpacing,
		RowSpacing:  DefaultRowSpacing,
		ItemHeight:  DefaultItemHeight,
	}
}

// Validate returns a *ConfigError for the first negative or non-finite field.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"item spacing", c.ItemSpacing},
		{"row spacing", c.RowSpacing},
		{"item height", c.ItemHeight},
	}
	for _, f := range fields {
		if !isFinite(f.value) || f.value < 0 {
			return &ConfigError{Field: f.name, Value: f.value}
		}
	}
	return nil
}
