package rng

import "errors"

// ErrZeroState is returned by NewFromState/Restore when given the
// all-zero state: xorshift is absorbing at zero (every subsequent value
// is also zero), so it is rejected rather than silently producing a
// degenerate stream.
var ErrZeroState = errors.New("rng: all-zero state is invalid for xorshift")
