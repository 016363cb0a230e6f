package coregex

// FullMatch reports whether text matches re over its entire length, binding
// capture groups 1..len(args) to args in order (SPEC_FULL.md §4.8). The call
// fails (returns false, no bindings observable) if re has fewer capture
// groups than len(args), or if any binding's parser rejects its capture.
//
// This performs a genuine anchored-both search (via Regex.findAnchoredBoth)
// rather than filtering an unanchored leftmost-first result: the latter is
// wrong whenever leftmost-first disagrees with the only alternative that
// spans the whole text, e.g. `a|ab` against "ab".
func FullMatch(text []byte, re *Regex, args ...Arg) bool {
	if !re.Valid() || re.engine.NumCaptures() < len(args) {
		return false
	}
	_, _, captures, ok := re.findAnchoredBoth(text, 0)
	if !ok {
		return false
	}
	return bindArgs(text, captures, args)
}

// PartialMatch reports whether text contains a match of re anywhere, binding
// captures the same way as FullMatch.
func PartialMatch(text []byte, re *Regex, args ...Arg) bool {
	if !re.Valid() || re.engine.NumCaptures() < len(args) {
		return false
	}
	m := re.engine.FindSubmatch(text)
	if m == nil {
		return false
	}
	return bindArgs(text, m.Captures, args)
}

// Consume matches re at the start of *text, binds captures, and on success
// advances *text past the match (SPEC_FULL.md §4.8). *text is left
// unmodified on failure.
func Consume(text *[]byte, re *Regex, args ...Arg) bool {
	if !re.Valid() || re.engine.NumCaptures() < len(args) {
		return false
	}
	m := re.engine.FindSubmatchAt(*text, 0)
	if m == nil || m.Start != 0 {
		return false
	}
	if !bindArgs(*text, m.Captures, args) {
		return false
	}
	*text = (*text)[m.End:]
	return true
}

// FindAndConsume searches *text for re anywhere, binds captures, and on
// success advances *text past the end of the match (SPEC_FULL.md §4.8).
// *text is left unmodified on failure.
func FindAndConsume(text *[]byte, re *Regex, args ...Arg) bool {
	if !re.Valid() || re.engine.NumCaptures() < len(args) {
		return false
	}
	m := re.engine.FindSubmatch(*text)
	if m == nil {
		return false
	}
	if !bindArgs(*text, m.Captures, args) {
		return false
	}
	*text = (*text)[m.End:]
	return true
}

// bindArgs parses capture groups 1..len(args) out of captures (group 0 is
// the whole match) and feeds them to args in order, stopping at the first
// rejection.
func bindArgs(text []byte, captures [][]int, args []Arg) bool {
	if len(captures)-1 < len(args) {
		return false
	}
	for i, arg := range args {
		g := captures[i+1]
		if g == nil {
			return false
		}
		if !arg.parse(text[g[0]:g[1]]) {
			return false
		}
	}
	return true
}
