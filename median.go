package levenshtein

import "math"

// GreedyMedian builds a generalized median string of strings: an
// approximation of the string minimizing the weighted sum of edit distances
// to every member of strings, constructed by choosing one symbol at a time.
// weights behave as multiplicities (a string with weight 2 counts the same
// as two copies of it at weight 1, but is far cheaper to compute with).
func GreedyMedian(strings []string, weights []float64) string {
	return string(greedyMedian(toByteStrings(strings), weights))
}

// GreedyMedianRunes is the rune-string instantiation of GreedyMedian.
func GreedyMedianRunes(strings [][]rune, weights []float64) []rune {
	return greedyMedian(strings, weights)
}

func greedyMedian[T Symbol](strings [][]T, weights []float64) []T {
	symlist := symbolSet(strings)
	if len(symlist) == 0 {
		return []T{}
	}

	n := len(strings)
	rows := make([][]int, n)
	maxlen := 0
	for i, s := range strings {
		if len(s) > maxlen {
			maxlen = len(s)
		}
		r := make([]int, len(s)+1)
		for j := range r {
			r[j] = j
		}
		rows[i] = r
	}
	stoplen := 2*maxlen + 1
	row := make([]int, stoplen+1)
	median := make([]T, stoplen)
	mediandist := make([]float64, stoplen+1)
	for i, s := range strings {
		mediandist[0] += float64(len(s)) * weights[i]
	}

	actualStop := stoplen
	for length := 1; length <= stoplen; length++ {
		minminsum := math.Inf(1)
		row[0] = length
		var best T

		for _, symbol := range symlist {
			totaldist := 0.0
			minsum := 0.0
			for i, s := range strings {
				p := rows[i]
				leni := len(s)
				min := length
				x := length
				for k := 1; k <= leni; k++ {
					D := p[k-1]
					if symbol != s[k-1] {
						D++
					}
					x++
					if x > D {
						x = D
					}
					if x > p[k]+1 {
						x = p[k] + 1
					}
					if x < min {
						min = x
					}
				}
				minsum += float64(min) * weights[i]
				totaldist += float64(x) * weights[i]
			}
			if minsum < minminsum {
				minminsum = minsum
				mediandist[length] = totaldist
				best = symbol
			}
		}
		median[length-1] = best

		// Stop once the matrix no longer needs recomputing, or once we're
		// past the longest input and adding more symbols stopped helping.
		if length == stoplen || (length > maxlen && mediandist[length] > mediandist[length-1]) {
			actualStop = length
			break
		}

		symbol := median[length-1]
		for i, s := range strings {
			oldrow := rows[i]
			leni := len(s)
			for k := 1; k <= leni; k++ {
				c1 := oldrow[k] + 1
				c2 := row[k-1] + 1
				c3 := oldrow[k-1]
				if symbol != s[k-1] {
					c3++
				}
				v := c2
				if c3 < v {
					v = c3
				}
				if c1 < v {
					v = c1
				}
				row[k] = v
			}
			copy(oldrow, row[:leni+1])
		}
	}

	bestlen := 0
	for length := 1; length <= actualStop; length++ {
		if mediandist[length] < mediandist[bestlen] {
			bestlen = length
		}
	}
	result := make([]T, bestlen)
	copy(result, median[:bestlen])
	return result
}

// finishDistance completes the sum of distances from medianTail (a
// candidate suffix of the median string, already matched up to some
// per-string row) to every string in strings, given rows[i] holding the
// Levenshtein matrix row reached so far for strings[i]. It does not mutate
// rows; row is scratch space reused across calls.
func finishDistance[T Symbol](medianTail []T, strings [][]T, weights []float64, rows [][]int, row []int) float64 {
	len1 := len(medianTail)
	if len1 == 0 {
		sum := 0.0
		for j, s := range strings {
			sum += float64(rows[j][len(s)]) * weights[j]
		}
		return sum
	}

	distsum := 0.0
	for j, s := range strings {
		rowi := rows[j]
		leni := len(s)
		length := len1

		for length > 0 && leni > 0 && s[leni-1] == medianTail[length-1] {
			length--
			leni--
		}

		if length == 0 {
			distsum += float64(rowi[leni]) * weights[j]
			continue
		}
		offset := rowi[0]
		if leni == 0 {
			distsum += float64(offset+length) * weights[j]
			continue
		}

		copy(row, rowi[:leni+1])
		for i := 1; i <= length; i++ {
			char1 := medianTail[i-1]
			D := i + offset
			x := D
			pIdx, char2Idx := 1, 0
			for pIdx <= leni {
				D--
				c3 := D
				if char1 != s[char2Idx] {
					c3++
				}
				char2Idx++
				x++
				if x > c3 {
					x = c3
				}
				D = row[pIdx]
				D++
				if x > D {
					x = D
				}
				row[pIdx] = x
				pIdx++
			}
		}
		distsum += weights[j] * float64(row[leni])
	}
	return distsum
}

// MedianImprove refines an existing approximate median s by trying, at
// every position in turn, to replace, insert before, or delete the symbol
// there, keeping whichever single perturbation lowers the total weighted
// distance the most. It never returns a string with a higher sum of
// distances than s; in the worst case the result equals s.
func MedianImprove(s string, strings []string, weights []float64) string {
	return string(medianImprove([]byte(s), toByteStrings(strings), weights))
}

// MedianImproveRunes is the rune-string instantiation of MedianImprove.
func MedianImproveRunes(s []rune, strings [][]rune, weights []float64) []rune {
	return medianImprove(s, strings, weights)
}

func medianImprove[T Symbol](s []T, strings [][]T, weights []float64) []T {
	symlist := symbolSet(strings)
	if len(symlist) == 0 {
		return []T{}
	}

	n := len(strings)
	rows := make([][]int, n)
	maxlen := 0
	for i, str := range strings {
		if len(str) > maxlen {
			maxlen = len(str)
		}
		r := make([]int, len(str)+1)
		for j := range r {
			r[j] = j
		}
		rows[i] = r
	}
	stoplen := 2*maxlen + 1
	row := make([]int, stoplen+2)

	// buf carries one spare leading cell, the "-1st element", so an
	// insertion at position 0 can be simulated the same way as any other
	// insertion: as a replacement of the (otherwise unused) cell before it.
	buf := make([]T, stoplen+1)
	medlen := copy(buf[1:], s)
	at := func(i int) T { return buf[i+1] }
	set := func(i int, v T) { buf[i+1] = v }

	minminsum := finishDistance(buf[1:1+medlen], strings, weights, rows, row)

	for pos := 0; pos <= medlen; {
		symbol := at(pos)
		operation := Keep

		if pos < medlen {
			origSymbol := at(pos)
			for _, sym := range symlist {
				if sym == origSymbol {
					continue
				}
				set(pos, sym)
				sum := finishDistance(buf[pos+1:1+medlen], strings, weights, rows, row)
				if sum < minminsum {
					minminsum = sum
					symbol = sym
					operation = Replace
				}
			}
			set(pos, origSymbol)
		}

		// Try inserting each symbol before pos, simulated as replacing the
		// (-1st, for pos==0) cell immediately preceding it.
		origPrev := at(pos - 1)
		for _, sym := range symlist {
			set(pos-1, sym)
			sum := finishDistance(buf[pos:1+medlen], strings, weights, rows, row)
			if sum < minminsum {
				minminsum = sum
				symbol = sym
				operation = Insert
			}
		}
		set(pos-1, origPrev)

		if pos < medlen {
			sum := finishDistance(buf[pos+2:1+medlen], strings, weights, rows, row)
			if sum < minminsum {
				minminsum = sum
				operation = Delete
			}
		}

		switch operation {
		case Replace:
			set(pos, symbol)
		case Insert:
			copy(buf[pos+2:2+medlen], buf[pos+1:1+medlen])
			set(pos, symbol)
			medlen++
		case Delete:
			copy(buf[pos+1:medlen], buf[pos+2:1+medlen])
			medlen--
		}

		if operation != Delete {
			symbol = at(pos)
			row[0] = pos + 1
			for i, str := range strings {
				oldrow := rows[i]
				leni := len(str)
				for k := 1; k <= leni; k++ {
					c1 := oldrow[k] + 1
					c2 := row[k-1] + 1
					c3 := oldrow[k-1]
					if symbol != str[k-1] {
						c3++
					}
					v := c2
					if c3 < v {
						v = c3
					}
					if c1 < v {
						v = c1
					}
					row[k] = v
				}
				copy(oldrow, row[:leni+1])
			}
			pos++
		}
	}

	result := make([]T, medlen)
	copy(result, buf[1:1+medlen])
	return result
}
