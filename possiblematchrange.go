package coregex

// PossibleMatchRange computes [min, max] byte-string bounds such that every
// string this pattern can match begins with a prefix lying in [min, max]
// (SPEC_FULL.md §4.7). It combines the pattern's required literal prefix
// (folded to uppercase for min, lowercase for max when case-insensitive,
// since ASCII uppercase sorts below lowercase and min must not exceed max)
// with the longest common prefix the teacher's literal.Extractor finds over
// the parsed tree. ok is false when neither source yields any information.
//
// maxLen bounds the length of the returned strings; a range longer than
// maxLen is truncated and max is bumped (0xff-padded) so it remains a valid
// upper bound.
func (r *Regex) PossibleMatchRange(maxLen int) (min, max string, ok bool) {
	if !r.Valid() || r.extra == nil || maxLen <= 0 {
		return "", "", false
	}

	prefix := r.extra.prefix
	if len(prefix) == 0 {
		if seq := extractLiteralSeq(r.extra.tree); seq != nil {
			prefix = seq.LongestCommonPrefix()
		}
	}
	if len(prefix) == 0 {
		return "", "", false
	}

	if len(prefix) > maxLen {
		prefix = prefix[:maxLen]
	}

	minBytes := make([]byte, len(prefix))
	maxBytes := make([]byte, len(prefix))
	for i, b := range prefix {
		if r.extra.foldcase {
			minBytes[i] = asciiToUpper(b)
			maxBytes[i] = asciiToLower(b)
		} else {
			minBytes[i] = b
			maxBytes[i] = b
		}
	}

	// A pattern can always match strings longer than the literal prefix, so
	// max must be bumped to remain an upper bound over every such
	// continuation; padding with the maximum byte value achieves that
	// without needing to reason about the residual suffix regexp.
	if len(maxBytes) < maxLen {
		padded := make([]byte, maxLen)
		copy(padded, maxBytes)
		for i := len(maxBytes); i < maxLen; i++ {
			padded[i] = 0xff
		}
		maxBytes = padded
	}

	return string(minBytes), string(maxBytes), true
}

func asciiToLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func asciiToUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
