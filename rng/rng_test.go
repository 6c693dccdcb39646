package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vrpcore/rng"
)

func TestSameSeedProducesIdenticalStream(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := rng.New(1)
	b := rng.New(2)

	same := true
	for i := 0; i < 16; i++ {
		if a.Next() != b.Next() {
			same = false
		}
	}
	require.False(t, same)
}

func TestRandIsWithinUnitInterval(t *testing.T) {
	r := rng.New(7)
	for i := 0; i < 1000; i++ {
		v := r.Rand()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestRandIntIsWithinBounds(t *testing.T) {
	r := rng.New(9)
	for i := 0; i < 1000; i++ {
		v := r.RandInt(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
	}
}

func TestCheckpointRestoreResumesIdenticalStream(t *testing.T) {
	r := rng.New(123)
	for i := 0; i < 10; i++ {
		r.Next()
	}
	checkpoint := r.Checkpoint()

	expected := make([]uint32, 20)
	for i := range expected {
		expected[i] = r.Next()
	}

	restored, err := rng.NewFromState(checkpoint)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.Equal(t, expected[i], restored.Next())
	}
}

func TestNewFromStateRejectsZeroState(t *testing.T) {
	_, err := rng.NewFromState([4]uint32{})
	require.ErrorIs(t, err, rng.ErrZeroState)
}

func TestRestoreRejectsZeroState(t *testing.T) {
	r := rng.New(1)
	require.ErrorIs(t, r.Restore([4]uint32{}), rng.ErrZeroState)
}

func TestShuffleIntsIsPermutation(t *testing.T) {
	r := rng.New(55)
	a := []int{0, 1, 2, 3, 4, 5, 6, 7}
	orig := append([]int(nil), a...)
	r.ShuffleInts(a)

	require.ElementsMatch(t, orig, a)
}
