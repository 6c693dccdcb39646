package matrix

import "math"

// FloydWarshall computes the all-pairs shortest path closure of d in place.
// Off-diagonal zero entries are not treated specially; callers that mean
// "no edge" must pre-seed those entries with +Inf (InitOpenEntries does
// this). The diagonal is forced to 0 before the relaxation runs.
//
// Adapted from the teacher's matrix/ops/floyd_warshal.go: same fixed
// k→i→j loop order for deterministic accumulation, same in-place O(1)
// extra space discipline.
//
// Complexity: O(n³) time, O(1) extra space.
func FloydWarshall(d *Dense) error {
	if err := ValidateSquare(d); err != nil {
		return err
	}
	n := d.n

	var i int
	for i = 0; i < n; i++ {
		d.data[i*n+i] = 0
	}

	var (
		k, j         int
		baseK, baseI int
		ik, kj, ij   float64
		cand         float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = d.data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = d.data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = d.data[baseI+j]
				cand = ik + kj
				if cand < ij {
					d.data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// InitOpenEntries rewrites every zero off-diagonal entry of d to +Inf,
// the adjacency -> distance convention FloydWarshall expects for "no
// direct edge" cells. Call this before FloydWarshall only when the
// caller's zero entries genuinely mean "unknown", not "zero distance".
//
// Complexity: O(n²).
func InitOpenEntries(d *Dense) error {
	if err := ValidateSquare(d); err != nil {
		return err
	}
	n := d.n

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if d.data[i*n+j] == 0 {
				d.data[i*n+j] = math.Inf(1)
			}
		}
	}

	return nil
}
