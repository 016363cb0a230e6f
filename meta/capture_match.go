// Package meta implements the meta-engine orchestrator.
//
// capture_match.go contains MatchWithCaptures, the capture-group-aware
// counterpart to Match.

package meta

// MatchWithCaptures represents a successful regex match together with the
// positions of every capture group, including group 0 (the entire match).
//
// Captures[i] is [start, end] for group i, or nil if that group did not
// participate in the match.
type MatchWithCaptures struct {
	Start    int
	End      int
	Captures [][]int
	haystack []byte
}

// NewMatchWithCaptures builds a MatchWithCaptures from a haystack and the
// nested capture slots produced by an NFA or one-pass DFA search.
//
// captures[0] is expected to hold the bounds of the entire match; Start and
// End are taken from it directly.
func NewMatchWithCaptures(haystack []byte, captures [][]int) *MatchWithCaptures {
	m := &MatchWithCaptures{
		Captures: captures,
		haystack: haystack,
	}
	if len(captures) > 0 && captures[0] != nil {
		m.Start = captures[0][0]
		m.End = captures[0][1]
	}
	return m
}

// NumCaptures returns the total number of groups, including group 0.
func (m *MatchWithCaptures) NumCaptures() int {
	return len(m.Captures)
}

// GroupIndex returns the [start, end] byte offsets for group i, or nil if
// the group did not participate in the match.
func (m *MatchWithCaptures) GroupIndex(i int) []int {
	if i < 0 || i >= len(m.Captures) {
		return nil
	}
	return m.Captures[i]
}

// Group returns the matched bytes for group i, or nil if the group did not
// participate in the match. The returned slice is a view into the haystack.
func (m *MatchWithCaptures) Group(i int) []byte {
	idx := m.GroupIndex(i)
	if idx == nil {
		return nil
	}
	return m.haystack[idx[0]:idx[1]]
}

// AllGroups returns the matched bytes for every group, including group 0.
// Unmatched groups are nil.
func (m *MatchWithCaptures) AllGroups() [][]byte {
	out := make([][]byte, len(m.Captures))
	for i := range m.Captures {
		out[i] = m.Group(i)
	}
	return out
}

// AllGroupStrings returns the matched text for every group, including
// group 0. Unmatched groups are the empty string, matching stdlib
// regexp.FindStringSubmatch behavior.
func (m *MatchWithCaptures) AllGroupStrings() []string {
	out := make([]string, len(m.Captures))
	for i := range m.Captures {
		if g := m.Group(i); g != nil {
			out[i] = string(g)
		}
	}
	return out
}
