package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gostrmetrics/levenshtein"
)

func totalWeightedDistance(s string, strings []string, weights []float64) float64 {
	sum := 0.0
	for i, str := range strings {
		sum += float64(levenshtein.Distance(s, str, false)) * weights[i]
	}
	return sum
}

func TestGreedyMedianOfIdenticalStringsIsThatString(t *testing.T) {
	strs := []string{"abc", "abc", "abc"}
	weights := []float64{1, 1, 1}
	got := levenshtein.GreedyMedian(strs, weights)
	assert.Equal(t, "abc", got)
	assert.Zero(t, totalWeightedDistance(got, strs, weights))
}

func TestGreedyMedianHandlesEmptyInput(t *testing.T) {
	assert.Equal(t, "", levenshtein.GreedyMedian(nil, nil))
}

func TestMedianImproveNeverIncreasesTotalDistance(t *testing.T) {
	strs := []string{"kitten", "sitting", "bitten", "mitten"}
	weights := []float64{1, 1, 1, 1}

	start := levenshtein.GreedyMedian(strs, weights)
	startSum := totalWeightedDistance(start, strs, weights)

	improved := levenshtein.MedianImprove(start, strs, weights)
	improvedSum := totalWeightedDistance(improved, strs, weights)

	assert.LessOrEqual(t, improvedSum, startSum)
}

func TestMedianImproveOfIdenticalStringsStaysFixed(t *testing.T) {
	strs := []string{"abc", "abc", "abc"}
	weights := []float64{1, 1, 1}
	got := levenshtein.MedianImprove("abc", strs, weights)
	assert.Equal(t, "abc", got)
}

func TestGreedyMedianRunesMatchesBytesOnASCII(t *testing.T) {
	strs := []string{"kitten", "sitting", "bitten"}
	weights := []float64{1, 1, 1}

	byteMedian := levenshtein.GreedyMedian(strs, weights)

	rstrs := make([][]rune, len(strs))
	for i, s := range strs {
		rstrs[i] = []rune(s)
	}
	runeMedian := levenshtein.GreedyMedianRunes(rstrs, weights)

	assert.Equal(t, byteMedian, string(runeMedian))
}
