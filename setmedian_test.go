package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostrmetrics/levenshtein"
)

func TestSetMedianIndexOfIdenticalStringsIsFirst(t *testing.T) {
	strs := []string{"abc", "abc", "abc"}
	weights := []float64{1, 1, 1}
	assert.Equal(t, 0, levenshtein.SetMedianIndex(strs, weights))
	assert.Equal(t, "abc", levenshtein.SetMedian(strs, weights))
}

func TestSetMedianIndexEmptySet(t *testing.T) {
	assert.Equal(t, -1, levenshtein.SetMedianIndex(nil, nil))
	assert.Equal(t, "", levenshtein.SetMedian(nil, nil))
}

func TestSetMedianIndexIsWithinRange(t *testing.T) {
	strs := []string{"kitten", "sitting", "bitten", "mitten", "smitten"}
	weights := []float64{1, 1, 1, 1, 1}
	idx := levenshtein.SetMedianIndex(strs, weights)
	require.True(t, idx >= 0 && idx < len(strs), "index %d out of range", idx)

	// The chosen index's total weighted distance to the rest must be no
	// worse than every other candidate's.
	dist := func(i int) float64 {
		sum := 0.0
		for j, s := range strs {
			if j == i {
				continue
			}
			sum += float64(levenshtein.Distance(strs[i], s, false)) * weights[j]
		}
		return sum
	}
	best := dist(idx)
	for i := range strs {
		assert.LessOrEqual(t, best, dist(i))
	}
}
