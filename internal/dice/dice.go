// Package dice provides the randomness primitives for the combat engine:
// damage notation rolling, weighted selection, and uniform draws.
package dice

import (
	"math/rand/v2"
	"regexp"
	"strconv"

	toolkit "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/combat-api/internal/errors"
)

// notationRegex matches damage notation like "1d6", "2d4+2", or "1d8-1".
var notationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// ParseNotation parses dice notation into count, faces, and the signed
// modifier.
func ParseNotation(notation string) (count, faces, modifier int, err error) {
	matches := notationRegex.FindStringSubmatch(notation)
	if matches == nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: NdM+K)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	faces, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}

	if count <= 0 || faces <= 0 {
		return 0, 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, faces, modifier, nil
}

// Roll parses and rolls damage notation, returning the total. A roll never
// reports less than 1 regardless of the modifier.
func Roll(notation string) (int, error) {
	count, faces, modifier, err := ParseNotation(notation)
	if err != nil {
		return 0, err
	}

	roll, err := toolkit.NewRoll(count, faces)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", notation)
	}

	total := roll.GetValue() + modifier
	if total < 1 {
		total = 1
	}
	return total, nil
}

// MaxRoll returns the highest value the notation can produce.
func MaxRoll(notation string) (int, error) {
	count, faces, modifier, err := ParseNotation(notation)
	if err != nil {
		return 0, err
	}
	total := count*faces + modifier
	if total < 1 {
		total = 1
	}
	return total, nil
}

// WeightedIndex selects an index from weights given a draw r in
// [0, totalWeight). Weights are scanned left to right, subtracting each from
// r until it drops to zero or below. The scan order is part of the reward
// distribution the content was balanced against; do not replace it with a
// cumulative-sum search.
func WeightedIndex(r float64, weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	for i, w := range weights {
		r -= float64(w)
		if r <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

// PickWeighted draws uniformly over the total weight and returns the
// selected index. Returns false when the weights cannot produce a draw.
func PickWeighted(weights []int) (int, bool) {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, false
	}
	return WeightedIndex(rand.Float64()*float64(total), weights), true
}

// IntBetween returns a uniform integer in [minVal, maxVal] inclusive.
func IntBetween(minVal, maxVal int) int {
	if maxVal <= minVal {
		return minVal
	}
	return minVal + rand.IntN(maxVal-minVal+1)
}

// Chance returns true with probability p. Values at or below 0 never hit;
// values at or above 1 always hit.
func Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rand.Float64() < p
}
