package nfa

// BoundedBacktracker implements a bounded backtracking regex matcher.
// It uses a generation-stamped visited table to track (state, position)
// pairs, providing O(1) lookup with low constant overhead - faster than
// SparseSet for small inputs.
//
// This engine is selected when:
//   - len(haystack) * nfa.States() <= maxVisitedSize (default 256KB)
//   - No prefilter is available (no good literals)
//   - Pattern doesn't benefit from DFA (simple character classes)
//
// BoundedBacktracker is 2-5x faster than PikeVM for patterns like \d+, \w+, [a-z]+.
//
// A BoundedBacktracker is read-only after construction and safe for
// concurrent use as long as each concurrent caller uses the *WithState
// methods with its own *BacktrackerState (see meta.SearchState for the
// pooling pattern this module's callers use). The legacy stateless methods
// (IsMatch, IsMatchAnchored, Search) are convenience wrappers around an
// internally owned state and are NOT safe for concurrent use on the same
// BoundedBacktracker.
type BoundedBacktracker struct {
	nfa *NFA

	numStates int

	// maxVisitedSize limits memory usage (in visited cells).
	maxVisitedSize int

	// internalState backs the legacy stateless methods.
	internalState *BacktrackerState
}

// NewBoundedBacktracker creates a new bounded backtracker for the given NFA.
func NewBoundedBacktracker(nfa *NFA) *BoundedBacktracker {
	return &BoundedBacktracker{
		nfa:            nfa,
		numStates:      nfa.States(),
		maxVisitedSize: 32 * 1024 * 1024,
		internalState:  NewBacktrackerState(),
	}
}

// NumStates returns the number of NFA states this backtracker visits over.
func (b *BoundedBacktracker) NumStates() int {
	return b.numStates
}

// SetLongest toggles leftmost-longest matching on the backtracker's owned
// internal state, affecting the legacy stateless methods.
func (b *BoundedBacktracker) SetLongest(longest bool) {
	b.internalState.Longest = longest
}

// MaxVisitedSize returns the visited-cell budget this backtracker will not
// exceed.
func (b *BoundedBacktracker) MaxVisitedSize() int {
	return b.maxVisitedSize
}

// MaxInputSize returns the largest haystack length this backtracker can
// search without exceeding MaxVisitedSize, or 0 if the underlying NFA has
// no states.
func (b *BoundedBacktracker) MaxInputSize() int {
	if b.numStates <= 0 {
		return 0
	}
	return b.maxVisitedSize/b.numStates - 1
}

// CanHandle returns true if this engine can handle the given input size.
// Returns false if the visited table would exceed maxVisitedSize.
func (b *BoundedBacktracker) CanHandle(haystackLen int) bool {
	cellsNeeded := b.numStates * (haystackLen + 1)
	return cellsNeeded <= b.maxVisitedSize
}

// IsMatch returns true if the pattern matches anywhere in the haystack.
// Not safe for concurrent use on the same BoundedBacktracker; see
// IsMatchWithState.
func (b *BoundedBacktracker) IsMatch(haystack []byte) bool {
	return b.IsMatchWithState(haystack, b.internalState)
}

// IsMatchAnchored returns true if the pattern matches at the start of haystack.
func (b *BoundedBacktracker) IsMatchAnchored(haystack []byte) bool {
	return b.IsMatchAnchoredWithState(haystack, b.internalState)
}

// IsMatchAnchoredWithState is the concurrency-safe counterpart to
// IsMatchAnchored: callers supply their own BacktrackerState so concurrent
// searches against the same BoundedBacktracker don't race on visited-state
// tracking.
func (b *BoundedBacktracker) IsMatchAnchoredWithState(haystack []byte, state *BacktrackerState) bool {
	if !b.CanHandle(len(haystack)) {
		return false
	}
	state.reset(b.numStates, len(haystack))
	return b.backtrack(haystack, 0, b.nfa.StartAnchored(), state)
}

// Search finds the first match in the haystack.
// Returns (start, end, true) if found, (-1, -1, false) otherwise.
// Not safe for concurrent use on the same BoundedBacktracker; see
// SearchWithState.
func (b *BoundedBacktracker) Search(haystack []byte) (int, int, bool) {
	return b.SearchWithState(haystack, b.internalState)
}

// SearchAt finds the first match starting at or after at. Not safe for
// concurrent use on the same BoundedBacktracker; see SearchAtWithState.
func (b *BoundedBacktracker) SearchAt(haystack []byte, at int) (int, int, bool) {
	return b.SearchAtWithState(haystack, at, b.internalState)
}

// IsMatchWithState is the concurrency-safe counterpart to IsMatch: state
// must be owned exclusively by the calling goroutine for the duration of
// the call (typically pooled, one per goroutine, via a sync.Pool).
func (b *BoundedBacktracker) IsMatchWithState(haystack []byte, state *BacktrackerState) bool {
	if !b.CanHandle(len(haystack)) {
		return false
	}
	state.reset(b.numStates, len(haystack))
	for startPos := 0; startPos <= len(haystack); startPos++ {
		if b.backtrack(haystack, startPos, b.nfa.StartAnchored(), state) {
			return true
		}
	}
	return false
}

// SearchWithState is the concurrency-safe counterpart to Search.
func (b *BoundedBacktracker) SearchWithState(haystack []byte, state *BacktrackerState) (int, int, bool) {
	return b.SearchAtWithState(haystack, 0, state)
}

// SearchAtWithState finds the first match starting at or after at.
func (b *BoundedBacktracker) SearchAtWithState(haystack []byte, at int, state *BacktrackerState) (int, int, bool) {
	if !b.CanHandle(len(haystack)) {
		return -1, -1, false
	}
	state.reset(b.numStates, len(haystack))
	for startPos := at; startPos <= len(haystack); startPos++ {
		if end := b.backtrackFind(haystack, startPos, b.nfa.StartAnchored(), state); end >= 0 {
			return startPos, end, true
		}
		// Fresh visited state per start position: a state reachable-but-
		// rejected from one start may be reachable-and-accepting from the
		// next.
		state.Generation++
	}
	return -1, -1, false
}

// backtrack performs recursive backtracking search for IsMatch.
// Returns true if a match is found from the given (pos, state).
//
//nolint:gocyclo,cyclop // complexity is inherent to state machine dispatch
func (b *BoundedBacktracker) backtrack(haystack []byte, pos int, nfaState StateID, st *BacktrackerState) bool {
	if nfaState == InvalidState || int(nfaState) >= b.numStates {
		return false
	}

	if !st.shouldVisit(nfaState, pos) {
		return false
	}

	s := b.nfa.State(nfaState)
	if s == nil {
		return false
	}

	switch s.Kind() {
	case StateMatch:
		return true

	case StateByteRange:
		lo, hi, next := s.ByteRange()
		if pos < len(haystack) {
			c := haystack[pos]
			if c >= lo && c <= hi {
				return b.backtrack(haystack, pos+1, next, st)
			}
		}
		return false

	case StateSparse:
		if pos >= len(haystack) {
			return false
		}
		c := haystack[pos]
		for _, tr := range s.Transitions() {
			if c >= tr.Lo && c <= tr.Hi {
				return b.backtrack(haystack, pos+1, tr.Next, st)
			}
		}
		return false

	case StateSplit:
		left, right := s.Split()
		return b.backtrack(haystack, pos, left, st) || b.backtrack(haystack, pos, right, st)

	case StateEpsilon:
		return b.backtrack(haystack, pos, s.Epsilon(), st)

	case StateCapture:
		_, _, next := s.Capture()
		return b.backtrack(haystack, pos, next, st)

	case StateLook:
		look, next := s.Look()
		if checkLookAssertion(look, haystack, pos) {
			return b.backtrack(haystack, pos, next, st)
		}
		return false

	case StateRuneAny:
		if pos < len(haystack) {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrack(haystack, pos+width, s.RuneAny(), st)
			}
		}
		return false

	case StateRuneAnyNotNL:
		if pos < len(haystack) && haystack[pos] != '\n' {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrack(haystack, pos+width, s.RuneAnyNotNL(), st)
			}
		}
		return false

	case StateFail:
		return false
	}

	return false
}

// backtrackFind performs recursive backtracking to find match end position.
// Returns end position if match found, -1 otherwise.
//
//nolint:gocyclo,cyclop // complexity is inherent to state machine dispatch
func (b *BoundedBacktracker) backtrackFind(haystack []byte, pos int, nfaState StateID, st *BacktrackerState) int {
	if nfaState == InvalidState || int(nfaState) >= b.numStates {
		return -1
	}

	if !st.shouldVisit(nfaState, pos) {
		return -1
	}

	s := b.nfa.State(nfaState)
	if s == nil {
		return -1
	}

	switch s.Kind() {
	case StateMatch:
		return pos

	case StateByteRange:
		lo, hi, next := s.ByteRange()
		if pos < len(haystack) {
			c := haystack[pos]
			if c >= lo && c <= hi {
				return b.backtrackFind(haystack, pos+1, next, st)
			}
		}
		return -1

	case StateSparse:
		if pos >= len(haystack) {
			return -1
		}
		c := haystack[pos]
		for _, tr := range s.Transitions() {
			if c >= tr.Lo && c <= tr.Hi {
				return b.backtrackFind(haystack, pos+1, tr.Next, st)
			}
		}
		return -1

	case StateSplit:
		left, right := s.Split()
		if end := b.backtrackFind(haystack, pos, left, st); end >= 0 {
			return end
		}
		return b.backtrackFind(haystack, pos, right, st)

	case StateEpsilon:
		return b.backtrackFind(haystack, pos, s.Epsilon(), st)

	case StateCapture:
		_, _, next := s.Capture()
		return b.backtrackFind(haystack, pos, next, st)

	case StateLook:
		look, next := s.Look()
		if checkLookAssertion(look, haystack, pos) {
			return b.backtrackFind(haystack, pos, next, st)
		}
		return -1

	case StateRuneAny:
		if pos < len(haystack) {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrackFind(haystack, pos+width, s.RuneAny(), st)
			}
		}
		return -1

	case StateRuneAnyNotNL:
		if pos < len(haystack) && haystack[pos] != '\n' {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrackFind(haystack, pos+width, s.RuneAnyNotNL(), st)
			}
		}
		return -1

	case StateFail:
		return -1
	}

	return -1
}

// runeWidth returns the width in bytes of the first UTF-8 rune in b.
// Returns 0 if b is empty.
func runeWidth(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	if b[0] < 0x80 {
		return 1
	}
	switch {
	case b[0]&0xE0 == 0xC0 && len(b) >= 2:
		return 2
	case b[0]&0xF0 == 0xE0 && len(b) >= 3:
		return 3
	case b[0]&0xF8 == 0xF0 && len(b) >= 4:
		return 4
	default:
		return 1 // Invalid UTF-8, treat as single byte
	}
}
