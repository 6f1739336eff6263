package layout

// Validate checks every row of spec and returns the first violation found,
// scanning rows top to bottom and items left to right:
//   - *EmptyRowError if a row has no items
//   - *InvalidSizeError if an item's fraction is not finite or not in (0, 1]
//   - *OverfullRowError if a row's fractions sum beyond 1 (within Epsilon)
//
// Validate has no side effects.
func Validate(spec Spec) error {
	for i, row := range spec.Rows {
		if err := validateRow(i, row); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll is like Validate but reports every violating row instead of stopping
// at the first. Each row contributes at most one error. Returns nil for a valid spec.
func ValidateAll(spec Spec) []error {
	var errs []error
	for i, row := range spec.Rows {
		if err := validateRow(i, row); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func validateRow(index int, row Row) error {
	if len(row) == 0 {
		return &EmptyRowError{Row: index}
	}
	for j, size := range row {
		if !size.Valid() {
			return &InvalidSizeError{Row: index, Item: j, Size: size}
		}
	}
	if sum := row.Sum(); sum > 1 && !approxEqual(sum, 1, Epsilon) {
		return &OverfullRowError{Row: index, Sum: sum}
	}
	return nil
}
