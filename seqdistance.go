package levenshtein

// SequenceDistance computes a "double Levenshtein" distance between two
// ordered sequences of strings: the edit distance you'd get by treating
// each whole string as a single symbol, except that replacing one string
// with another costs not a flat 1 but 2*d/(len(a)+len(b)), the normalized
// edit distance between them (0 for identical strings, up to 2 for
// completely dissimilar ones).
func SequenceDistance(s1, s2 []string) float64 {
	return sequenceDistance(toByteStrings(s1), toByteStrings(s2))
}

// SequenceDistanceRunes is the rune-string instantiation of SequenceDistance.
func SequenceDistanceRunes(s1, s2 [][]rune) float64 {
	return sequenceDistance(s1, s2)
}

func sequenceDistance[T Symbol](s1, s2 [][]T) float64 {
	for len(s1) > 0 && len(s2) > 0 && equalSlice(s1[0], s2[0]) {
		s1 = s1[1:]
		s2 = s2[1:]
	}
	for len(s1) > 0 && len(s2) > 0 && equalSlice(s1[len(s1)-1], s2[len(s2)-1]) {
		s1 = s1[:len(s1)-1]
		s2 = s2[:len(s2)-1]
	}

	n1, n2 := len(s1), len(s2)
	if n1 == 0 {
		return float64(n2)
	}
	if n2 == 0 {
		return float64(n1)
	}
	if n1 > n2 {
		s1, s2 = s2, s1
		n1, n2 = n2, n1
	}

	row := make([]float64, n2+1)
	for i := range row {
		row[i] = float64(i)
	}

	for i := 1; i <= n1; i++ {
		str1 := s1[i-1]
		D := float64(i) - 1.0
		x := float64(i)
		for j := 1; j <= n2; j++ {
			str2 := s2[j-1]
			var q float64
			if l := len(str1) + len(str2); l == 0 {
				q = D
			} else {
				d := distance(str1, str2, true)
				q = D + 2.0/float64(l)*float64(d)
			}
			x++
			if x > q {
				x = q
			}
			D = row[j]
			if x > D+1.0 {
				x = D + 1.0
			}
			row[j] = x
		}
	}
	return row[n2]
}

func equalSlice[T Symbol](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SetDistance computes the distance between two unordered sets of strings:
// the cheapest way to pair up members of the smaller set with members of
// the larger one (via Munkres assignment over normalized pairwise edit
// distances), plus one full point of penalty for every unmatched member of
// the larger set.
func SetDistance(s1, s2 []string) float64 {
	return setDistance(toByteStrings(s1), toByteStrings(s2))
}

// SetDistanceRunes is the rune-string instantiation of SetDistance.
func SetDistanceRunes(s1, s2 [][]rune) float64 {
	return setDistance(s1, s2)
}

func setDistance[T Symbol](s1, s2 [][]T) float64 {
	n1, n2 := len(s1), len(s2)
	if n1 == 0 {
		return float64(n2)
	}
	if n2 == 0 {
		return float64(n1)
	}
	if n1 > n2 {
		s1, s2 = s2, s1
		n1, n2 = n2, n1
	}

	// dists is n2 rows (the larger set) by n1 columns (the smaller set),
	// row-major, as Munkres expects.
	dists := make([][]float64, n2)
	for i := 0; i < n2; i++ {
		dists[i] = make([]float64, n1)
		for j := 0; j < n1; j++ {
			if l := len(s2[i]) + len(s1[j]); l != 0 {
				d := distance(s2[i], s1[j], true)
				dists[i][j] = float64(d) / float64(l)
			}
		}
	}

	mapping := Munkres(dists)

	sum := float64(n2 - n1)
	for j := 0; j < n1; j++ {
		i := mapping[j]
		if l := len(s1[j]) + len(s2[i]); l > 0 {
			d := distance(s1[j], s2[i], true)
			sum += 2.0 * float64(d) / float64(l)
		}
	}
	return sum
}
