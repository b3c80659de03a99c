package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gostrmetrics/levenshtein"
)

func TestSequenceDistanceIdenticalSequencesIsZero(t *testing.T) {
	seq := []string{"alpha", "beta", "gamma"}
	assert.Zero(t, levenshtein.SequenceDistance(seq, seq))
}

func TestSequenceDistanceEmptyAgainstNonEmpty(t *testing.T) {
	seq := []string{"alpha", "beta"}
	assert.Equal(t, float64(len(seq)), levenshtein.SequenceDistance(nil, seq))
	assert.Equal(t, float64(len(seq)), levenshtein.SequenceDistance(seq, nil))
}

func TestSequenceDistanceIsSymmetric(t *testing.T) {
	s1 := []string{"alpha", "beta", "gamma"}
	s2 := []string{"alpha", "delta", "gamma", "epsilon"}
	assert.Equal(t, levenshtein.SequenceDistance(s1, s2), levenshtein.SequenceDistance(s2, s1))
}

func TestSetDistanceIdenticalSetsIsZero(t *testing.T) {
	set := []string{"alpha", "beta", "gamma"}
	assert.Zero(t, levenshtein.SetDistance(set, set))
}

func TestSetDistanceEmptyAgainstNonEmpty(t *testing.T) {
	set := []string{"alpha", "beta"}
	assert.Equal(t, float64(len(set)), levenshtein.SetDistance(nil, set))
	assert.Equal(t, float64(len(set)), levenshtein.SetDistance(set, nil))
}

func TestSetDistancePenalizesSizeMismatch(t *testing.T) {
	set := []string{"alpha", "beta", "gamma"}
	// set ∪ {"delta"} must cost at least the one full unmatched-element
	// penalty more than set against itself.
	bigger := append(append([]string(nil), set...), "delta")
	assert.GreaterOrEqual(t, levenshtein.SetDistance(set, bigger), 1.0)
}
