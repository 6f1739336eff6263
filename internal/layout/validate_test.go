package layout

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	type tc struct {
		spec    Spec
		wantErr error
	}

	tests := map[string]tc{
		"no rows": {
			spec: NewSpec(AlignCenter),
		},
		"single empty row": {
			spec:    NewSpec(AlignLeft, Row{}),
			wantErr: ErrEmptyRow,
		},
		"nil row": {
			spec:    Spec{Rows: []Row{nil}},
			wantErr: ErrEmptyRow,
		},
		"overfull row": {
			spec:    NewSpec(AlignLeft, Row{Fraction(0.6), Fraction(0.6)}),
			wantErr: ErrOverfullRow,
		},
		"exactly full row": {
			spec: NewSpec(AlignLeft, Row{Fraction(0.6), Fraction(0.4)}),
		},
		"five small items": {
			spec: NewSpec(AlignLeft, Row{Small, Small, Small, Small, Small}),
		},
		"small normal normal": {
			spec: NewSpec(AlignRight, Row{Small, Normal, Normal}),
		},
		"three normal items": {
			spec:    NewSpec(AlignRight, Row{Normal, Normal, Normal}),
			wantErr: ErrOverfullRow,
		},
		"zero size": {
			spec:    NewSpec(AlignLeft, Row{Small, Fraction(0)}),
			wantErr: ErrInvalidSize,
		},
		"NaN size": {
			spec:    NewSpec(AlignLeft, Row{Fraction(math.NaN())}),
			wantErr: ErrInvalidSize,
		},
		"error in later row": {
			spec:    NewSpec(AlignLeft, Row{Small}, Row{Normal}, Row{}),
			wantErr: ErrEmptyRow,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := Validate(tt.spec)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ErrorDetails(t *testing.T) {
	err := Validate(NewSpec(AlignLeft, Row{Small}, Row{Fraction(0.6), Fraction(0.6)}))

	var overfull *OverfullRowError
	if !errors.As(err, &overfull) {
		t.Fatalf("Validate() error = %T, want *OverfullRowError", err)
	}
	if overfull.Row != 1 {
		t.Errorf("Row = %d, want 1", overfull.Row)
	}
	if !approxEqual(overfull.Sum, 1.2, Epsilon) {
		t.Errorf("Sum = %v, want 1.2", overfull.Sum)
	}

	err = Validate(NewSpec(AlignLeft, Row{Small, Fraction(2)}))
	var invalid *InvalidSizeError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() error = %T, want *InvalidSizeError", err)
	}
	if invalid.Row != 0 || invalid.Item != 1 || invalid.Size != Fraction(2) {
		t.Errorf("InvalidSizeError = %+v, want row 0 item 1 size 2", invalid)
	}

	err = Validate(NewSpec(AlignLeft, Row{}, Row{Fraction(0.6), Fraction(0.6)}))
	var empty *EmptyRowError
	if !errors.As(err, &empty) || empty.Row != 0 {
		t.Errorf("Validate() error = %v, want EmptyRowError for row 0", err)
	}
}

func TestValidateAll(t *testing.T) {
	spec := NewSpec(AlignLeft,
		Row{},
		Row{Small},
		Row{Normal, Normal, Normal},
		Row{Fraction(-1)},
	)

	errs := ValidateAll(spec)
	if len(errs) != 3 {
		t.Fatalf("ValidateAll() returned %d errors, want 3: %v", len(errs), errs)
	}

	want := []error{ErrEmptyRow, ErrOverfullRow, ErrInvalidSize}
	for i, target := range want {
		if !errors.Is(errs[i], target) {
			t.Errorf("errs[%d] = %v, want %v", i, errs[i], target)
		}
	}

	if errs := ValidateAll(NewSpec(AlignLeft, Row{Small})); errs != nil {
		t.Errorf("ValidateAll() on valid spec = %v, want nil", errs)
	}
}

func TestConfig_Validate(t *testing.T) {
	type tc struct {
		cfg     Config
		wantErr bool
	}

	tests := map[string]tc{
		"default": {cfg: DefaultConfig()},
		"all zero": {cfg: Config{}},
		"negative spacing": {
			cfg:     Config{ItemSpacing: -1, ItemHeight: 30},
			wantErr: true,
		},
		"infinite height": {
			cfg:     Config{ItemHeight: math.Inf(1)},
			wantErr: true,
		},
		"NaN row spacing": {
			cfg:     Config{RowSpacing: math.NaN()},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	type tc struct {
		err  error
		want string
	}

	tests := map[string]tc{
		"empty row": {
			err:  &EmptyRowError{Row: 2},
			want: "row 2: row must contain at least one item",
		},
		"overfull row": {
			err:  &OverfullRowError{Row: 0, Sum: 1.2},
			want: "row 0: item fractions sum to 1.2, must not exceed 1",
		},
		"invalid size": {
			err:  &InvalidSizeError{Row: 1, Item: 3, Size: Fraction(1.5)},
			want: "row 1, item 3: size 1.5 is not a fraction in (0, 1]",
		},
		"index out of range": {
			err:  &IndexOutOfRangeError{Index: -1, Len: 3},
			want: "index -1 out of range [0, 3)",
		},
		"config": {
			err:  &ConfigError{Field: "item height", Value: -2},
			want: "item height must be a finite non-negative value, got -2",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
