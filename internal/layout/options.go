package layout

import "fmt"

// Option is a functional option for configuring an Engine.
type Option func(*Engine) error

// WithConfig replaces the engine's whole spacing policy.
func WithConfig(cfg Config) Option {
	return func(e *Engine) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		e.config = cfg
		return nil
	}
}

// WithItemSpacing sets the horizontal gap between adjacent items in a row.
// Default is 20. Must be finite and non-negative.
func WithItemSpacing(spacing float64) Option {
	return func(e *Engine) error {
		if !isFinite(spacing) || spacing < 0 {
			return &ConfigError{Field: "item spacing", Value: spacing}
		}
		e.config.ItemSpacing = spacing
		return nil
	}
}

// WithRowSpacing sets the vertical gap between adjacent rows.
// Default is 20. Must be finite and non-negative.
func WithRowSpacing(spacing float64) Option {
	return func(e *Engine) error {
		if !isFinite(spacing) || spacing < 0 {
			return &ConfigError{Field: "row spacing", Value: spacing}
		}
		e.config.RowSpacing = spacing
		return nil
	}
}

// WithItemHeight sets the height of every item.
// Default is 30. Must be finite and non-negative.
func WithItemHeight(height float64) Option {
	return func(e *Engine) error {
		if !isFinite(height) || height < 0 {
			return &ConfigError{Field: "item height", Value: height}
		}
		e.config.ItemHeight = height
		return nil
	}
}

// WithContainerWidth sets the initial container width.
func WithContainerWidth(width float64) Option {
	return func(e *Engine) error {
		e.containerWidth = width
		return nil
	}
}

// WithSpec sets the initial spec. The spec is validated when the engine is created.
func WithSpec(spec Spec) Option {
	return func(e *Engine) error {
		if err := Validate(spec); err != nil {
			return fmt.Errorf("initial spec: %w", err)
		}
		e.spec = spec.Clone()
		return nil
	}
}
