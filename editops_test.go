package levenshtein_test

import (
	"testing"

	"github.com/gostrmetrics/levenshtein"
)

func TestEditOpsAppliesToSecondString(t *testing.T) {
	pairs := [][2]string{
		{"horse", "rose"},
		{"kitten", "sitting"},
		{"", "abc"},
		{"abc", ""},
		{"abc", "abc"},
		{"intention", "execution"},
		{"flaw", "lawn"},
	}
	for _, p := range pairs {
		s1, s2 := p[0], p[1]
		ops := levenshtein.EditOps(s1, s2)

		if got, want := len(ops), levenshtein.Distance(s1, s2, false); got != want {
			t.Errorf("len(EditOps(%q, %q)) = %d, want edit distance %d", s1, s2, got, want)
		}

		got := string(levenshtein.Apply([]byte(s1), []byte(s2), ops))
		if got != s2 {
			t.Errorf("Apply(%q, %q, EditOps(%q, %q)) = %q, want %q", s1, s2, s1, s2, got, s2)
		}

		for _, op := range ops {
			if op.Type == levenshtein.Keep {
				t.Errorf("EditOps(%q, %q) emitted a Keep operation: %s", s1, s2, op)
			}
		}
	}
}

func TestEditOpsRunesMatchesBytesOnASCII(t *testing.T) {
	pairs := [][2]string{
		{"horse", "rose"},
		{"kitten", "sitting"},
	}
	for _, p := range pairs {
		s1, s2 := p[0], p[1]
		byteOps := levenshtein.EditOps(s1, s2)
		runeOps := levenshtein.EditOpsRunes([]rune(s1), []rune(s2))
		if len(byteOps) != len(runeOps) {
			t.Fatalf("EditOps(%q, %q) has %d ops, EditOpsRunes has %d", s1, s2, len(byteOps), len(runeOps))
		}
		for i := range byteOps {
			if byteOps[i] != runeOps[i] {
				t.Errorf("op %d differs: byte=%s rune=%s", i, byteOps[i], runeOps[i])
			}
		}
	}
}

func TestEditTypeString(t *testing.T) {
	cases := map[levenshtein.EditType]string{
		levenshtein.Keep:    "keep",
		levenshtein.Replace: "replace",
		levenshtein.Insert:  "insert",
		levenshtein.Delete:  "delete",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("EditType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
