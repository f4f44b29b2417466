package bench

import (
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
)

func TestRandomTarget(t *testing.T) {
	t.Parallel()

	r := NewRand(0)
	data := GenerateSortedInts(100)
	for i := 0; i < 1000; i++ {
		target, err := RandomTarget(r, data)
		require.NoError(t, err)
		require.GreaterOrEqual(t, target, int32(0))
		require.Less(t, target, int32(100))
	}

	items := GenerateSortedStrings(10)
	target, err := RandomTarget(r, items)
	require.NoError(t, err)
	require.Contains(t, items, target)

	one, err := RandomTarget(r, []string{"only"})
	require.NoError(t, err)
	require.Equal(t, "only", one)
}

func TestRandomTarget_empty(t *testing.T) {
	t.Parallel()

	_, err := RandomTarget[int32](NewRand(1), nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrEmptyDataset))
}

func TestNewRand_seed(t *testing.T) {
	t.Parallel()

	data := GenerateSortedInts(1_000_000)
	r1, r2 := NewRand(42), NewRand(42)
	for i := 0; i < 10; i++ {
		a, err := RandomTarget(r1, data)
		require.NoError(t, err)
		b, err := RandomTarget(r2, data)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}
