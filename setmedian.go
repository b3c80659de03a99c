package levenshtein

import "math"

// SetMedianIndex returns the index into strings of the set median: the
// input string (unlike GreedyMedian/QuickMedian, a member of strings itself)
// minimizing the weighted sum of edit distances to every other string in
// the set. It returns -1 for an empty set.
func SetMedianIndex(strings []string, weights []float64) int {
	return setMedianIndex(toByteStrings(strings), weights)
}

// SetMedianIndexRunes is the rune-string instantiation of SetMedianIndex.
func SetMedianIndexRunes(strings [][]rune, weights []float64) int {
	return setMedianIndex(strings, weights)
}

func setMedianIndex[T Symbol](strings [][]T, weights []float64) int {
	n := len(strings)
	if n == 0 {
		return -1
	}

	// Pairwise distances are symmetric and expensive, so each pair is
	// computed at most once and cached; dist accumulation bails out as
	// soon as it can no longer beat the best candidate found so far.
	cache := make(map[[2]int]int)
	distAt := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if d, ok := cache[key]; ok {
			return d
		}
		d := distance(strings[a], strings[b], false)
		cache[key] = d
		return d
	}

	minidx := 0
	mindist := math.Inf(1)
	for i := 0; i < n; i++ {
		dist := 0.0
		for j := 0; j < n && dist < mindist; j++ {
			if j == i {
				continue
			}
			dist += weights[j] * float64(distAt(i, j))
		}
		if dist < mindist {
			mindist = dist
			minidx = i
		}
	}
	return minidx
}

// SetMedian returns the set median itself (SetMedianIndex's choice applied
// back to strings).
func SetMedian(strings []string, weights []float64) string {
	idx := SetMedianIndex(strings, weights)
	if idx < 0 {
		return ""
	}
	return strings[idx]
}

// SetMedianRunes is the rune-string instantiation of SetMedian.
func SetMedianRunes(strings [][]rune, weights []float64) []rune {
	idx := SetMedianIndexRunes(strings, weights)
	if idx < 0 {
		return nil
	}
	return strings[idx]
}
