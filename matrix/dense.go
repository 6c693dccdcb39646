package matrix

import "fmt"

// Dense is a row-major square matrix of measure.Scalar-compatible float64
// values. Distances and durations are stored as float64 regardless of the
// measure build tag — the conversion to measure.Scalar happens at the
// ProblemData boundary (pdata package), keeping this package reusable for
// any n×n numeric table.
//
// Complexity: At/Set are O(1); Clone is O(n²).
type Dense struct {
	n    int       // matrix order (rows == cols == n)
	data []float64 // flat backing storage, length n*n, row-major
}

// NewDense allocates an n×n Dense matrix initialized to zero.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// NewDenseFromRows builds a Dense matrix from a slice of equal-length rows.
// Returns ErrNonSquare if rows are not len(rows) wide each.
//
// Complexity: O(n²) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			d.data[i*n+j] = rows[i][j]
		}
	}

	return d, nil
}

// N returns the matrix order (both rows and columns, since Dense is square).
//
// Complexity: O(1).
func (d *Dense) N() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At retrieves the element at (i, j).
//
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return d.data[i*d.n+j], nil
}

// MustAt is At without an error return, for hot paths that have already
// validated indices once (e.g. a prefetched row range). Panics on OOB,
// mirroring slice-index semantics — callers own the bounds guarantee.
//
// Complexity: O(1).
func (d *Dense) MustAt(i, j int) float64 {
	return d.data[i*d.n+j]
}

// Set assigns v at (i, j).
//
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if d == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	d.data[i*d.n+j] = v

	return nil
}

// Clone returns a deep, independent copy of d.
//
// Complexity: O(n²).
func (d *Dense) Clone() *Dense {
	if d == nil {
		return nil
	}
	out := &Dense{n: d.n, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}
