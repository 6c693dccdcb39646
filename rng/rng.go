package rng

// RNG is a deterministic xorshift128 generator with explicit 4x32-bit
// state, seedable from either a single uint32 or a [4]uint32, and fully
// disclosed via State for checkpointing.
type RNG struct {
	state [4]uint32
}

// New seeds an RNG from a single uint32 by expanding it into four words
// with a SplitMix32-style avalanche mix, the same family of finalizer the
// teacher's deriveSeed uses for its 64-bit streams.
//
// Complexity: O(1).
func New(seed uint32) *RNG {
	s := seed
	var state [4]uint32
	for i := range state {
		s += 0x9e3779b9
		z := s
		z = (z ^ (z >> 16)) * 0x85ebca6b
		z = (z ^ (z >> 13)) * 0xc2b2ae35
		z ^= z >> 16
		state[i] = z
	}
	if state == ([4]uint32{}) {
		state[0] = 1
	}

	return &RNG{state: state}
}

// NewFromState restores an RNG from a previously disclosed state, e.g. a
// checkpoint taken mid-search.
func NewFromState(state [4]uint32) (*RNG, error) {
	if state == ([4]uint32{}) {
		return nil, ErrZeroState
	}

	return &RNG{state: state}, nil
}

// Next advances the xorshift128 state and returns the new top word.
//
// Complexity: O(1).
func (r *RNG) Next() uint32 {
	t := r.state[3]
	s := r.state[0]
	r.state[3] = r.state[2]
	r.state[2] = r.state[1]
	r.state[1] = s

	t ^= t << 11
	t ^= t >> 8
	r.state[0] = t ^ s ^ (s >> 19)

	return r.state[0]
}

// Rand returns a pseudo-random float64 in [0, 1).
//
// Complexity: O(1).
func (r *RNG) Rand() float64 {
	return float64(r.Next()) / (float64(1) + float64(^uint32(0)))
}

// RandInt returns a pseudo-random int in [0, high). high must be positive.
// Uses a plain modulo reduction — for the neighbour-list and tie-break
// sample sizes the driver uses (tens to low thousands), the resulting
// modulo bias is negligible; a rejection-sampling variant is not worth
// the extra branch here.
//
// Complexity: O(1).
func (r *RNG) RandInt(high int) int {
	if high <= 0 {
		return 0
	}

	return int(r.Next() % uint32(high))
}

// State discloses the full internal state for checkpointing.
func (r *RNG) State() [4]uint32 { return r.state }

// Checkpoint is an alias of State, named for the search driver's
// checkpoint/restore call sites (spec.md §6 "state() disclosure for
// checkpointing").
func (r *RNG) Checkpoint() [4]uint32 { return r.State() }

// Restore resets the generator to a previously captured checkpoint.
func (r *RNG) Restore(state [4]uint32) error {
	if state == ([4]uint32{}) {
		return ErrZeroState
	}
	r.state = state

	return nil
}

// ShuffleInts performs an in-place Fisher-Yates shuffle of a, the
// randomized client iteration order the driver needs each sweep.
// Grounded on the teacher's shuffleIntsInPlace (tsp/rng.go).
//
// Complexity: O(n) time, O(1) extra space.
func (r *RNG) ShuffleInts(a []int) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.RandInt(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
