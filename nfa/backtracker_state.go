package nfa

// BacktrackerState holds the mutable scratch a BoundedBacktracker needs
// during a single search. Pooling one BacktrackerState per goroutine (while
// sharing one BoundedBacktracker, which is read-only after construction)
// is what makes concurrent searches against the same compiled pattern safe.
//
// Visited is generation-stamped rather than cleared between searches:
// Visited[idx] == Generation means (state, pos) has been visited this
// search. Bumping Generation invalidates every prior entry in O(1).
type BacktrackerState struct {
	Visited    []uint32
	Generation uint32
	NumStates  int
	InputLen   int
	Longest    bool
}

// NewBacktrackerState returns an empty BacktrackerState ready for its first
// search; Visited is allocated lazily on first use.
func NewBacktrackerState() *BacktrackerState {
	return &BacktrackerState{}
}

// reset sizes Visited for numStates*(haystackLen+1) cells and bumps
// Generation so every previous entry reads as unvisited.
func (s *BacktrackerState) reset(numStates, haystackLen int) {
	s.NumStates = numStates
	s.InputLen = haystackLen
	s.Generation++

	need := numStates * (haystackLen + 1)
	if cap(s.Visited) < need {
		s.Visited = make([]uint32, need)
		return
	}
	s.Visited = s.Visited[:need]
}

// shouldVisit marks (state, pos) visited for the current generation and
// reports whether it was not already visited.
func (s *BacktrackerState) shouldVisit(state StateID, pos int) bool {
	idx := int(state)*(s.InputLen+1) + pos
	if s.Visited[idx] == s.Generation {
		return false
	}
	s.Visited[idx] = s.Generation
	return true
}
