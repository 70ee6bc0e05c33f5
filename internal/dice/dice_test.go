package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/errors"
)

func TestRoll_WithinBounds(t *testing.T) {
	cases := []struct {
		notation string
		min      int
		max      int
	}{
		{"1d6", 1, 6},
		{"2d4+2", 4, 10},
		{"3d8", 3, 24},
		{"1d2", 1, 2},
		{"1d20-3", 1, 17}, // floor at 1 beats the raw minimum of -2
	}

	for _, tc := range cases {
		t.Run(tc.notation, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				total, err := dice.Roll(tc.notation)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, total, tc.min)
				assert.LessOrEqual(t, total, tc.max)
			}
		})
	}
}

func TestRoll_Deterministic(t *testing.T) {
	// 1d1 has exactly one outcome
	for i := 0; i < 100; i++ {
		total, err := dice.Roll("1d1")
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	}
}

func TestRoll_FloorsAtOne(t *testing.T) {
	// 1d2-10 always lands below 1 before flooring
	for i := 0; i < 100; i++ {
		total, err := dice.Roll("1d2-10")
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	}
}

func TestRoll_InvalidNotation(t *testing.T) {
	for _, notation := range []string{"", "d6", "2x6", "1d", "1d6+", "1d6+2+3", "-1d6", "1d6 "} {
		t.Run(notation, func(t *testing.T) {
			_, err := dice.Roll(notation)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestRoll_ZeroCountRejected(t *testing.T) {
	_, err := dice.Roll("0d6")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = dice.Roll("1d0")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestMaxRoll(t *testing.T) {
	maxVal, err := dice.MaxRoll("2d4+2")
	require.NoError(t, err)
	assert.Equal(t, 10, maxVal)
}

func TestWeightedIndex_ScanOrder(t *testing.T) {
	weights := []int{60, 30, 10}

	// The draw subtracts weights left to right until the remainder is <= 0.
	assert.Equal(t, 0, dice.WeightedIndex(0, weights))
	assert.Equal(t, 0, dice.WeightedIndex(59.9, weights))
	assert.Equal(t, 0, dice.WeightedIndex(60, weights))
	assert.Equal(t, 1, dice.WeightedIndex(60.1, weights))
	assert.Equal(t, 1, dice.WeightedIndex(90, weights))
	assert.Equal(t, 2, dice.WeightedIndex(90.1, weights))
	assert.Equal(t, 2, dice.WeightedIndex(99.9, weights))
}

func TestWeightedIndex_ZeroWeightEntriesSkipped(t *testing.T) {
	// A zero-weight head entry is only selected on the degenerate r == 0 draw.
	weights := []int{0, 5}
	assert.Equal(t, 1, dice.WeightedIndex(0.1, weights))
	assert.Equal(t, 1, dice.WeightedIndex(4.9, weights))
}

func TestWeightedIndex_Empty(t *testing.T) {
	assert.Equal(t, -1, dice.WeightedIndex(1, nil))
}

func TestPickWeighted(t *testing.T) {
	idx, ok := dice.PickWeighted([]int{1})
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = dice.PickWeighted(nil)
	assert.False(t, ok)

	_, ok = dice.PickWeighted([]int{0, 0})
	assert.False(t, ok)
}

func TestIntBetween(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := dice.IntBetween(2, 5)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 5)
	}

	assert.Equal(t, 3, dice.IntBetween(3, 3))
	assert.Equal(t, 7, dice.IntBetween(7, 2)) // degenerate range collapses to min
}

func TestChance_Extremes(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.False(t, dice.Chance(0))
		assert.False(t, dice.Chance(-0.5))
		assert.True(t, dice.Chance(1))
		assert.True(t, dice.Chance(1.5))
	}
}
