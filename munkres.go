package levenshtein

import "math"

// munkresEpsilon matches the reference implementation's tolerance for
// treating a reduced cost as exactly zero; plain floating-point equality
// against 0.0 after repeated subtraction is not reliable enough.
const munkresEpsilon = 1e-14

// Munkres solves the rectangular minimum-cost assignment problem: given a
// cost matrix with at least as many rows as columns, it returns, for every
// column j, the row Munkres(costs)[j] assigned to it, such that every row
// is used at most once and the sum of assigned costs is minimal. This is
// the classical Munkres-Blackman algorithm (augmenting paths over starred
// and primed zeroes), used by SetDistance to find the cheapest pairing
// between two string sets.
func Munkres(costs [][]float64) []int {
	n2 := len(costs)
	if n2 == 0 {
		return nil
	}
	n1 := len(costs[0])
	if n1 == 0 {
		return []int{}
	}
	dists := make([]float64, n1*n2)
	for i := 0; i < n2; i++ {
		copy(dists[i*n1:(i+1)*n1], costs[i])
	}
	return munkresAssign(n1, n2, dists)
}

// munkresAssign implements the algorithm over a flat, row-major cost matrix
// (n2 rows, n1 columns, n1 <= n2), mutating dists as scratch space. zstarc
// holds, for each column, the 1-based row of its starred zero (0 = none);
// zstarr is the row-indexed mirror, holding the 1-based column of each row's
// starred zero; zprimer holds the 1-based column of each row's primed zero.
func munkresAssign(n1, n2 int, dists []float64) []int {
	at := func(row, col int) float64 { return dists[row*n1+col] }
	set := func(row, col int, v float64) {
		if v < munkresEpsilon {
			v = 0
		}
		dists[row*n1+col] = v
	}

	covc := make([]bool, n1)
	covr := make([]bool, n2)
	zstarc := make([]int, n1)
	zstarr := make([]int, n2)
	zprimer := make([]int, n2)

	// Step 0 (subtract each column's minimum) and step 1 (star a free zero
	// in each column where possible).
	for j := 0; j < n1; j++ {
		minidx := 0
		min := at(0, j)
		for i := 1; i < n2; i++ {
			if min > at(i, j) {
				minidx = i
				min = at(i, j)
			}
		}
		for i := 0; i < n2; i++ {
			set(i, j, at(i, j)-min)
		}
		if zstarc[j] == 0 && zstarr[minidx] == 0 {
			zstarc[j] = minidx + 1
			zstarr[minidx] = j + 1
		} else {
			for i := 0; i < n2; i++ {
				if i != minidx && at(i, j) == 0 && zstarc[j] == 0 && zstarr[i] == 0 {
					zstarc[j] = i + 1
					zstarr[i] = j + 1
					break
				}
			}
		}
	}

	for {
		// Step 2: cover every column already containing a starred zero. If
		// that's every column, the starring is a complete assignment.
		nc := 0
		for j := 0; j < n1; j++ {
			if zstarc[j] != 0 {
				covc[j] = true
				nc++
			}
		}
		if nc == n1 {
			break
		}

		// Step 3: find an uncovered zero, prime it, and either extend the
		// cover (when its row already has a star) or jump to step 4.
		stepFourRow := -1
		for stepFourRow < 0 {
			restarted := false
		scan:
			for j := 0; j < n1; j++ {
				if covc[j] {
					continue
				}
				for i := 0; i < n2; i++ {
					if !covr[i] && at(i, j) == 0 {
						zprimer[i] = j + 1
						if zstarr[i] != 0 {
							covr[i] = true
							covc[zstarr[i]-1] = false
							restarted = true
							break scan
						}
						stepFourRow = i
						break scan
					}
				}
			}
			if stepFourRow >= 0 || restarted {
				continue
			}

			// Step 5: no uncovered zero exists. Find the smallest uncovered
			// entry, add it to every covered row, subtract it from every
			// uncovered column, and retry step 3.
			min := math.Inf(1)
			for j := 0; j < n1; j++ {
				if covc[j] {
					continue
				}
				for i := 0; i < n2; i++ {
					if !covr[i] && min > at(i, j) {
						min = at(i, j)
					}
				}
			}
			for i := 0; i < n2; i++ {
				if !covr[i] {
					continue
				}
				for j := 0; j < n1; j++ {
					dists[i*n1+j] = at(i, j) + min
				}
			}
			for j := 0; j < n1; j++ {
				if covc[j] {
					continue
				}
				for i := 0; i < n2; i++ {
					set(i, j, at(i, j)-min)
				}
			}
		}

		// Step 4: flip the alternating chain of primed/starred zeroes
		// starting at stepFourRow into new stars, then reset and loop.
		i := stepFourRow
		for {
			j := zprimer[i] - 1
			zstarr[i] = j + 1
			prevStar := zstarc[j]
			zstarc[j] = i + 1
			if prevStar == 0 {
				break
			}
			i = prevStar - 1
		}
		for k := range zprimer {
			zprimer[k] = 0
		}
		for k := range covr {
			covr[k] = false
		}
		for k := range covc {
			covc[k] = false
		}
	}

	result := make([]int, n1)
	for j := 0; j < n1; j++ {
		result[j] = zstarc[j] - 1
	}
	return result
}
