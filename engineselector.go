package coregex

import (
	"github.com/coregx/coregex/dfa/onepass"
	"github.com/coregx/coregex/meta"
)

// Engine Selector thresholds (SPEC_FULL.md §4.3), named exactly as the spec
// names them.
const (
	// maxBitStateProg is MaxBitStateProg: a bit-state (bounded backtracking)
	// engine is only considered for programs at or below this many NFA
	// states.
	maxBitStateProg = 500

	// maxBitStateBits is MaxBitStateBits: the bit-vector visited-set budget
	// a bit-state engine is allowed to spend, which bounds the haystack
	// length it can search (bitStateTextMax below).
	maxBitStateBits = 256 * 1024

	// maxOnePassCapture is K, the one-pass engine's own capability cap. This
	// module's dfa/onepass.DFA caps at 16 explicit groups + group 0.
	maxOnePassCapture = 17
)

// engineDecision records the Engine Selector's analysis for a single
// anchored submatch-extraction request (SPEC_FULL.md §4.3 step 4: one-pass
// preferred over bit-state preferred over NFA).
//
// canBitState/bitStateTextMax are computed for a complete decision record,
// but this module's nfa.BoundedBacktracker reports only a match span, not
// per-group capture slots (see DESIGN.md's Engine Selector entry), so there
// is no executable bit-state submatch path to route to: useOnePass is the
// only branch a caller can act on, and canBitState is never true's worth of
// wiring. When useOnePass is false the caller falls through to its NFA
// (meta.Engine.FindSubmatchAt), which is exactly the tree's "otherwise"
// branch.
type engineDecision struct {
	canOnePass      bool
	canBitState     bool
	bitStateTextMax int
	useOnePass      bool
}

// selectSubmatchEngine implements SPEC_FULL.md §4.3's ncap/can_one_pass/
// can_bit_state decision tree for one anchored request. programSize is the
// compiled NFA's state count (this module's analogue of RE2's program
// instruction count); hasOnePass reports whether the pattern has a usable
// one-pass DFA (meta.Engine.OnePassDFA() != nil).
func selectSubmatchEngine(programSize, ncap, textLen int, hasOnePass bool) engineDecision {
	d := engineDecision{
		canOnePass:  hasOnePass && ncap <= maxOnePassCapture,
		canBitState: programSize > 0 && programSize <= maxBitStateProg,
	}
	if programSize > 0 {
		d.bitStateTextMax = maxBitStateBits / programSize
	}
	d.useOnePass = d.canOnePass && textLen <= 4096 && (ncap > 1 || textLen <= 8)
	return d
}

// findSubmatchOnePass runs engine's one-pass DFA anchored at startPos within
// text, returning the whole-match span and per-group capture slots. ok is
// false if the engine has no one-pass DFA, the Engine Selector's thresholds
// rule it out for this request, or the one-pass search itself finds no
// match (which, since one-pass is always anchored, callers must treat as a
// genuine non-match rather than falling back to an NFA search from the same
// startPos).
func findSubmatchOnePass(engine *meta.Engine, text []byte, startPos, ncap int) (start, end int, captures [][]int, attempted, ok bool) {
	dfa := engine.OnePassDFA()
	if dfa == nil {
		return 0, 0, nil, false, false
	}
	decision := selectSubmatchEngine(engine.ProgramSize(), ncap, len(text)-startPos, true)
	if !decision.useOnePass {
		return 0, 0, nil, false, false
	}

	cache := onepass.NewCache(dfa.NumCaptures())
	slots := dfa.SearchAt(text, startPos, cache)
	if slots == nil {
		return 0, 0, nil, true, false
	}
	return slots[0], slots[1], slotsToCaptures(slots), true, true
}

// slotsToCaptures converts the one-pass DFA's flat slot layout
// ([start0,end0,start1,end1,...]) into the [][]int capture format
// pattern.go's Match uses, mirroring meta/findall.go's private helper of
// the same name.
func slotsToCaptures(slots []int) [][]int {
	n := len(slots) / 2
	captures := make([][]int, n)
	for i := 0; i < n; i++ {
		s, e := slots[i*2], slots[i*2+1]
		if s >= 0 && e >= 0 {
			captures[i] = []int{s, e}
		}
	}
	return captures
}
