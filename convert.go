package levenshtein

// toByteStrings is a small convenience shared by the byte-string facades of
// the multi-string algorithms (median construction, sequence/set distance),
// which all need []string turned into [][]byte before calling their shared
// generic engine.
func toByteStrings(strings []string) [][]byte {
	out := make([][]byte, len(strings))
	for i, s := range strings {
		out[i] = []byte(s)
	}
	return out
}
