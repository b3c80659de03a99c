// Package levenshtein computes edit distances, recovers edit scripts, and
// builds generalized median strings over sequences of bytes or runes.
//
// It covers four tightly coupled pieces: a memory-economical edit-distance
// kernel (Distance/DistanceRunes), edit-script recovery and difflib-style
// opcode/matching-block conversion (EditOps, EditOpsToOpCodes, Apply,
// Invert, Subtract, ...), generalized median string construction (greedy
// construction, local-perturbation improvement, a linear-time voting
// heuristic, and set-median selection), and distance between ordered and
// unordered collections of strings (SequenceDistance, SetDistance), the
// latter via a Munkres-Blackman assignment solver.
//
// Every algorithm is exposed twice: once for strings of bytes and once for
// strings of runes. Both facades are generated from the same generic engine
// (symbol tables are Go maps in both), so they agree bit-for-bit on ASCII
// input.
//
// All functions are pure: they read their inputs and return freshly
// allocated results without mutating argument slices, except where a
// function's doc comment says otherwise (Invert, most notably, is an
// in-place transform).
package levenshtein
