package levenshtein

// EditOpsToOpCodes groups a list of elementary edit operations (as returned
// by EditOps/EditOpsRunes) into difflib-style blocks, inserting Keep blocks
// to cover the untouched spans between them. len1/len2 are the lengths of
// the original source and destination, needed to produce a trailing Keep
// block when the edit script ends before either string does.
func EditOpsToOpCodes(ops []EditOp, len1, len2 int) []OpCode {
	var codes []OpCode
	spos, dpos := 0, 0
	i, n := 0, len(ops)
	for i < n {
		for i < n && ops[i].Type == Keep {
			i++
		}
		if i >= n {
			break
		}
		o := ops[i]
		if spos < o.SPos || dpos < o.DPos {
			codes = append(codes, OpCode{Type: Keep, SBeg: spos, SEnd: o.SPos, DBeg: dpos, DEnd: o.DPos})
			spos, dpos = o.SPos, o.DPos
		}
		typ := o.Type
		sbeg, dbeg := spos, dpos
		switch typ {
		case Replace:
			for {
				spos++
				dpos++
				i++
				if !(i < n && ops[i].Type == typ && ops[i].SPos == spos && ops[i].DPos == dpos) {
					break
				}
			}
		case Delete:
			for {
				spos++
				i++
				if !(i < n && ops[i].Type == typ && ops[i].SPos == spos && ops[i].DPos == dpos) {
					break
				}
			}
		case Insert:
			for {
				dpos++
				i++
				if !(i < n && ops[i].Type == typ && ops[i].SPos == spos && ops[i].DPos == dpos) {
					break
				}
			}
		}
		codes = append(codes, OpCode{Type: typ, SBeg: sbeg, SEnd: spos, DBeg: dbeg, DEnd: dpos})
	}
	if spos < len1 || dpos < len2 {
		codes = append(codes, OpCode{Type: Keep, SBeg: spos, SEnd: len1, DBeg: dpos, DEnd: len2})
	}
	return codes
}

// OpCodesToEditOps expands difflib-style blocks back into elementary edit
// operations. Keep blocks are dropped unless keepKeep is set.
func OpCodesToEditOps(codes []OpCode, keepKeep bool) []EditOp {
	n := 0
	for _, b := range codes {
		if !keepKeep && b.Type == Keep {
			continue
		}
		span := b.SEnd - b.SBeg
		if d := b.DEnd - b.DBeg; d > span {
			span = d
		}
		n += span
	}
	if n == 0 {
		return nil
	}
	ops := make([]EditOp, 0, n)
	for _, b := range codes {
		switch b.Type {
		case Keep:
			if !keepKeep {
				continue
			}
			for k := 0; k < b.SEnd-b.SBeg; k++ {
				ops = append(ops, EditOp{Type: Keep, SPos: b.SBeg + k, DPos: b.DBeg + k})
			}
		case Replace:
			for k := 0; k < b.SEnd-b.SBeg; k++ {
				ops = append(ops, EditOp{Type: Replace, SPos: b.SBeg + k, DPos: b.DBeg + k})
			}
		case Delete:
			for k := 0; k < b.SEnd-b.SBeg; k++ {
				ops = append(ops, EditOp{Type: Delete, SPos: b.SBeg + k, DPos: b.DBeg})
			}
		case Insert:
			for k := 0; k < b.DEnd-b.DBeg; k++ {
				ops = append(ops, EditOp{Type: Insert, SPos: b.SBeg, DPos: b.DBeg + k})
			}
		}
	}
	return ops
}

// MatchingBlocksFromEditOps computes the maximal runs of untouched positions
// implied by ops, the same way a diff viewer highlights unchanged regions.
// A final sentinel block of length zero is never appended; callers that
// need one (as difflib's SequenceMatcher.get_matching_blocks does) can
// append MatchingBlock{len(s1), len(s2), 0} themselves.
func MatchingBlocksFromEditOps(len1, len2 int, ops []EditOp) []MatchingBlock {
	var blocks []MatchingBlock
	spos, dpos := 0, 0
	i, n := 0, len(ops)
	for i < n {
		for i < n && ops[i].Type == Keep {
			i++
		}
		if i >= n {
			break
		}
		o := ops[i]
		if spos < o.SPos || dpos < o.DPos {
			blocks = append(blocks, MatchingBlock{SPos: spos, DPos: dpos, Len: o.SPos - spos})
			spos, dpos = o.SPos, o.DPos
		}
		typ := o.Type
		switch typ {
		case Replace:
			for {
				spos++
				dpos++
				i++
				if !(i < n && ops[i].Type == typ && ops[i].SPos == spos && ops[i].DPos == dpos) {
					break
				}
			}
		case Delete:
			for {
				spos++
				i++
				if !(i < n && ops[i].Type == typ && ops[i].SPos == spos && ops[i].DPos == dpos) {
					break
				}
			}
		case Insert:
			for {
				dpos++
				i++
				if !(i < n && ops[i].Type == typ && ops[i].SPos == spos && ops[i].DPos == dpos) {
					break
				}
			}
		}
	}
	if spos < len1 || dpos < len2 {
		blocks = append(blocks, MatchingBlock{SPos: spos, DPos: dpos, Len: len1 - spos})
	}
	return blocks
}

// MatchingBlocksFromOpCodes extracts matching blocks directly from a
// difflib-style block list, coalescing adjacent Keep blocks (EditOpsToOpCodes
// never produces adjacent Keep blocks, but callers may hand-assemble one).
func MatchingBlocksFromOpCodes(len1 int, codes []OpCode) []MatchingBlock {
	var blocks []MatchingBlock
	i, n := 0, len(codes)
	for i < n {
		if codes[i].Type != Keep {
			i++
			continue
		}
		spos, dpos := codes[i].SBeg, codes[i].DBeg
		for i < n && codes[i].Type == Keep {
			i++
		}
		length := len1 - spos
		if i < n {
			length = codes[i].SBeg - spos
		}
		blocks = append(blocks, MatchingBlock{SPos: spos, DPos: dpos, Len: length})
	}
	return blocks
}

// Apply reconstructs the destination string (or as much of it as ops
// determines) by walking s1 and splicing in s2's replaced/inserted symbols.
// ops need not be a complete edit script: any position s1 covers that no op
// mentions is copied through unchanged, which is what makes Apply usable on
// partial edits subtracted out by Subtract.
func Apply[T Symbol](s1, s2 []T, ops []EditOp) []T {
	dst := make([]T, 0, len(s1)+len(ops))
	spos := 0
	for _, o := range ops {
		j := o.SPos - spos
		if o.Type == Keep {
			j++
		}
		if j > 0 {
			dst = append(dst, s1[spos:spos+j]...)
			spos += j
		}
		switch o.Type {
		case Delete:
			spos++
		case Replace:
			spos++
			dst = append(dst, s2[o.DPos])
		case Insert:
			dst = append(dst, s2[o.DPos])
		}
	}
	if spos < len(s1) {
		dst = append(dst, s1[spos:]...)
	}
	return dst
}

// ApplyOpCodes is the difflib-block counterpart of Apply.
func ApplyOpCodes[T Symbol](s1, s2 []T, codes []OpCode) []T {
	dst := make([]T, 0, len(s1)+len(s2))
	for _, b := range codes {
		switch b.Type {
		case Insert, Replace:
			dst = append(dst, s2[b.DBeg:b.DEnd]...)
		case Keep:
			dst = append(dst, s1[b.SBeg:b.SEnd]...)
		}
	}
	return dst
}

// Invert exchanges the roles of source and destination in place, so ops
// becomes a partial edit from what used to be the destination back to what
// used to be the source. Insert and Delete swap (their type tag differs
// only in the low bit); Keep and Replace are their own inverse.
func Invert(ops []EditOp) {
	for i := range ops {
		ops[i].SPos, ops[i].DPos = ops[i].DPos, ops[i].SPos
		if ops[i].Type&2 != 0 {
			ops[i].Type ^= 1
		}
	}
}

// InvertOpCodes is the difflib-block counterpart of Invert.
func InvertOpCodes(codes []OpCode) {
	for i := range codes {
		codes[i].SBeg, codes[i].DBeg = codes[i].DBeg, codes[i].SBeg
		codes[i].SEnd, codes[i].DEnd = codes[i].DEnd, codes[i].SEnd
		if codes[i].Type&2 != 0 {
			codes[i].Type ^= 1
		}
	}
}

// Normalize drops Keep operations from ops, returning nil for an edit
// script that is empty or contains only Keep.
func Normalize(ops []EditOp) []EditOp {
	var norm []EditOp
	for _, o := range ops {
		if o.Type == Keep {
			continue
		}
		norm = append(norm, o)
	}
	return norm
}

// editTypeShift is how much a given op type shifts the source-position
// coordinate space of everything that comes after it, used by Subtract to
// re-anchor the positions of the remaining, un-subtracted operations.
var editTypeShift = [4]int{Keep: 0, Replace: 0, Insert: 1, Delete: -1}

// Subtract removes sub, an ordered subsequence of ops, from ops, returning
// the remainder: a normalized edit script that, applied after sub has
// already been applied, reaches the same final result as applying ops to
// the original string. It returns an error if sub is not actually a
// subsequence of ops.
func Subtract(ops, sub []EditOp) ([]EditOp, error) {
	nr := 0
	for _, o := range ops {
		if o.Type != Keep {
			nr++
		}
	}
	nn := 0
	for _, o := range sub {
		if o.Type != Keep {
			nn++
		}
	}
	if nn > nr {
		return nil, ErrSpanErr
	}
	nr -= nn

	var rem []EditOp
	if nr > 0 {
		rem = make([]EditOp, 0, nr)
	}
	j, shift := 0, 0
	for _, s := range sub {
		for j < len(ops) && (ops[j].SPos != s.SPos || ops[j].DPos != s.DPos || ops[j].Type != s.Type) {
			if ops[j].Type != Keep {
				o := ops[j]
				o.SPos += shift
				rem = append(rem, o)
			}
			j++
		}
		if j == len(ops) {
			return nil, ErrOrderErr
		}
		shift += editTypeShift[s.Type]
		j++
	}
	for ; j < len(ops); j++ {
		if ops[j].Type != Keep {
			o := ops[j]
			o.SPos += shift
			rem = append(rem, o)
		}
	}
	return rem, nil
}

// CheckEditOpsErrors verifies that ops is a consistent, in-bounds,
// monotonically-ordered partial edit from a string of length len1 to a
// string of length len2.
func CheckEditOpsErrors(len1, len2 int, ops []EditOp) error {
	if len(ops) == 0 {
		return nil
	}
	for _, o := range ops {
		if o.Type < Keep || o.Type > Delete {
			return ErrTypeErr
		}
		if o.SPos > len1 || o.DPos > len2 {
			return ErrOutErr
		}
		if o.SPos == len1 && o.Type != Insert {
			return ErrOutErr
		}
		if o.DPos == len2 && o.Type != Delete {
			return ErrOutErr
		}
	}
	for i := 1; i < len(ops); i++ {
		if ops[i].SPos < ops[i-1].SPos || ops[i].DPos < ops[i-1].DPos {
			return ErrOrderErr
		}
	}
	return nil
}

// CheckOpCodesErrors verifies that codes is a complete, consistent,
// contiguous sequence of blocks covering a string of length len1 mapped to
// a string of length len2.
func CheckOpCodesErrors(len1, len2 int, codes []OpCode) error {
	if len(codes) == 0 {
		return ErrSpanErr
	}
	first, last := codes[0], codes[len(codes)-1]
	if first.SBeg != 0 || first.DBeg != 0 || last.SEnd != len1 || last.DEnd != len2 {
		return ErrSpanErr
	}
	for _, b := range codes {
		if b.SEnd > len1 || b.DEnd > len2 {
			return ErrOutErr
		}
		switch b.Type {
		case Keep, Replace:
			if b.DEnd-b.DBeg != b.SEnd-b.SBeg || b.DEnd == b.DBeg {
				return ErrBlockErr
			}
		case Insert:
			if b.DEnd-b.DBeg == 0 || b.SEnd-b.SBeg != 0 {
				return ErrBlockErr
			}
		case Delete:
			if b.SEnd-b.SBeg == 0 || b.DEnd-b.DBeg != 0 {
				return ErrBlockErr
			}
		default:
			return ErrTypeErr
		}
	}
	for i := 1; i < len(codes); i++ {
		if codes[i].SBeg != codes[i-1].SEnd || codes[i].DBeg != codes[i-1].DEnd {
			return ErrOrderErr
		}
	}
	return nil
}
