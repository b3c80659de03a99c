package levenshtein

import "math"

// QuickMedian builds an approximate generalized median string of strings in
// time linear in the total input length, by letting every string cast a
// fractional vote (proportional to how much of its length maps onto a given
// target position) for the symbol that should occupy each position of a
// string of the weighted-average length. It is considerably cheaper than
// GreedyMedian but usually a somewhat worse approximation.
func QuickMedian(strings []string, weights []float64) string {
	return string(quickMedian(toByteStrings(strings), weights))
}

// QuickMedianRunes is the rune-string instantiation of QuickMedian.
func QuickMedianRunes(strings [][]rune, weights []float64) []rune {
	return quickMedian(strings, weights)
}

func quickMedian[T Symbol](strings [][]T, weights []float64) []T {
	var totalLen, totalWeight float64
	for i, s := range strings {
		totalLen += float64(len(s)) * weights[i]
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		return []T{}
	}
	// Round half up: an average length of exactly n+0.5 gives n+1.
	targetLenF := math.Floor(totalLen/totalWeight + 0.5)
	length := int(targetLenF)
	if length == 0 {
		return []T{}
	}

	symlist := symbolSet(strings)
	median := make([]T, length)
	votes := make(map[T]float64, len(symlist))

	for j := 0; j < length; j++ {
		for _, sym := range symlist {
			votes[sym] = 0
		}
		for i, s := range strings {
			lengthi := len(s)
			if lengthi == 0 {
				continue
			}
			weighti := weights[i]
			start := float64(lengthi) / targetLenF * float64(j)
			end := start + float64(lengthi)/targetLenF
			istart := int(math.Floor(start))
			iend := int(math.Ceil(end))
			if iend > lengthi {
				iend = lengthi
			}

			// The inner part, including the complete last character.
			for k := istart + 1; k < iend; k++ {
				votes[s[k]] += weighti
			}
			// The initial fraction.
			votes[s[istart]] += weighti * (float64(1+istart) - start)
			// Subtract what was counted from the last character but
			// doesn't actually belong here; this also handles the case
			// where everything happens inside a single character.
			votes[s[iend-1]] -= weighti * (float64(iend) - end)
		}

		var best T
		bestVotes := math.Inf(-1)
		for _, sym := range symlist {
			if v := votes[sym]; v > bestVotes {
				bestVotes = v
				best = sym
			}
		}
		median[j] = best
	}
	return median
}
