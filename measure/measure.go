package measure

// PrecisionKind enumerates the numeric representations a build can select.
type PrecisionKind uint8

const (
	// PrecisionDouble marks a build compiled with Scalar = float64.
	PrecisionDouble PrecisionKind = iota

	// PrecisionInteger marks a build compiled with Scalar = int64 (tag vrp_integer).
	PrecisionInteger
)

// roundScale controls Round's absolute stabilization precision on double
// builds (1e-9). Integer builds are exact and ignore it; see scalar_int.go.
const roundScale = 1e9

// Max returns the larger of a and b.
//
// Complexity: O(1).
func Max(a, b Scalar) Scalar {
	if a > b {
		return a
	}

	return b
}

// Min returns the smaller of a and b.
//
// Complexity: O(1).
func Min(a, b Scalar) Scalar {
	if a < b {
		return a
	}

	return b
}

// Clamp returns x restricted to [lo, hi]. If lo > hi, lo is returned
// (callers are expected to guarantee lo <= hi; this keeps Clamp total).
//
// Complexity: O(1).
func Clamp(x, lo, hi Scalar) Scalar {
	if lo > hi {
		return lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// PosPart returns max(0, x) — the positive part of x. Used throughout the
// segment algebras and cost evaluator wherever the spec writes "max(0, …)".
//
// Complexity: O(1).
func PosPart(x Scalar) Scalar {
	return Max(0, x)
}
