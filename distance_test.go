package levenshtein_test

import (
	"testing"

	"github.com/gostrmetrics/levenshtein"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		s1, s2 string
		xcost  bool
		want   int
	}{
		{"", "", false, 0},
		{"", "abc", false, 3},
		{"abc", "", false, 3},
		{"abc", "abc", false, 0},
		{"a", "b", false, 1},
		{"a", "b", true, 2},
		{"kitten", "kitten", false, 0},
		{"horse", "rose", false, 2},
		{"flaw", "lawn", false, 2},
		{"abc", "abc", true, 0},
	}
	for _, c := range cases {
		if got := levenshtein.Distance(c.s1, c.s2, c.xcost); got != c.want {
			t.Errorf("Distance(%q, %q, %v) = %d, want %d", c.s1, c.s2, c.xcost, got, c.want)
		}
		// Distance is symmetric.
		if got := levenshtein.Distance(c.s2, c.s1, c.xcost); got != c.want {
			t.Errorf("Distance(%q, %q, %v) = %d, want %d", c.s2, c.s1, c.xcost, got, c.want)
		}
	}
}

func TestDistanceRunesMatchesBytesOnASCII(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abcdef"},
		{"flaw", "lawn"},
		{"horse", "rose"},
	}
	for _, p := range pairs {
		for _, xcost := range []bool{false, true} {
			got := levenshtein.DistanceRunes([]rune(p[0]), []rune(p[1]), xcost)
			want := levenshtein.Distance(p[0], p[1], xcost)
			if got != want {
				t.Errorf("DistanceRunes(%q, %q, %v) = %d, want %d (byte facade)", p[0], p[1], xcost, got, want)
			}
		}
	}
}

func TestDistanceXcostNeverLessThanPlain(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"intention", "execution"},
		{"", "abc"},
	}
	for _, p := range pairs {
		plain := levenshtein.Distance(p[0], p[1], false)
		xcost := levenshtein.Distance(p[0], p[1], true)
		if xcost < plain {
			t.Errorf("Distance(%q, %q, xcost=true) = %d < Distance(..., xcost=false) = %d", p[0], p[1], xcost, plain)
		}
	}
}
