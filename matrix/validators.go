package matrix

import "math"

// ValidateSquare checks that d is non-nil and of positive order.
//
// Complexity: O(1).
func ValidateSquare(d *Dense) error {
	if d == nil {
		return ErrNilMatrix
	}
	if d.n <= 0 {
		return ErrNonSquare
	}

	return nil
}

// ValidateFinite verifies every entry of d is non-NaN and non-negative.
// +Inf is permitted (it denotes "no direct edge"); NaN and negative
// entries never are, matching the teacher's tsp/validate.go policy for
// distance matrices.
//
// Complexity: O(n²).
func ValidateFinite(d *Dense) error {
	if err := ValidateSquare(d); err != nil {
		return err
	}

	var i int
	for i = 0; i < len(d.data); i++ {
		v := d.data[i]
		if math.IsNaN(v) {
			return ErrDimensionMismatch
		}
		if v < 0 {
			return ErrDimensionMismatch
		}
	}

	return nil
}
