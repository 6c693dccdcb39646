package matrix

import "errors"

// Sentinel errors for matrix construction and access. Every message is
// prefixed "matrix: ..." for consistent grepping across logs; callers use
// errors.Is, not string matching.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare indicates an operation that requires a square matrix
	// received one that is not.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates two matrices have incompatible shapes
	// for the requested operation; ValidateFinite also returns it for a
	// NaN or negative entry.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil *Dense was passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
