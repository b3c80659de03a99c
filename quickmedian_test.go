package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gostrmetrics/levenshtein"
)

func TestQuickMedianOfIdenticalStringsIsThatString(t *testing.T) {
	strs := []string{"abc", "abc", "abc"}
	weights := []float64{1, 1, 1}
	assert.Equal(t, "abc", levenshtein.QuickMedian(strs, weights))
}

func TestQuickMedianHandlesEmptyInput(t *testing.T) {
	assert.Equal(t, "", levenshtein.QuickMedian(nil, nil))
}

func TestQuickMedianSkipsZeroLengthStringsWithoutPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		levenshtein.QuickMedian([]string{"", "abc", "abc"}, []float64{1, 1, 1})
	})
}

func TestQuickMedianRunesMatchesBytesOnASCII(t *testing.T) {
	strs := []string{"abc", "abc", "abd"}
	weights := []float64{1, 1, 1}
	byteMedian := levenshtein.QuickMedian(strs, weights)

	rstrs := make([][]rune, len(strs))
	for i, s := range strs {
		rstrs[i] = []rune(s)
	}
	runeMedian := levenshtein.QuickMedianRunes(rstrs, weights)

	assert.Equal(t, byteMedian, string(runeMedian))
}
