package coregex

import (
	"regexp/syntax"
	"sync"

	"github.com/coregx/coregex/literal"
	"github.com/coregx/coregex/meta"
	"github.com/coregx/coregex/nfa"
)

// Anchor describes where a match is required to begin and end, mirroring
// the caller-requested anchor of SPEC_FULL.md §4.2.
type Anchor int

const (
	// Unanchored allows a match to start anywhere in the text.
	Unanchored Anchor = iota
	// AnchorStart requires the match to begin at the search's start position.
	AnchorStart
	// AnchorBoth requires the match to span the entire subtext.
	AnchorBoth
)

func (a Anchor) String() string {
	switch a {
	case Unanchored:
		return "Unanchored"
	case AnchorStart:
		return "AnchorStart"
	case AnchorBoth:
		return "AnchorBoth"
	default:
		return "Anchor(?)"
	}
}

// compileError, when non-nil, is stashed on a Regex born from CompileOptions
// so a caller that skips the error return from CompileOptions still observes
// a permanently-failing pattern rather than a nil-pointer panic, per
// SPEC_FULL.md §4.9 ("Uninitialized -> Error").
//
// named holds the lazily-built name-to-index map (SPEC_FULL.md §3,
// named_captures), built at most once behind namedOnce.
type patternExtra struct {
	options  Options
	tree     *syntax.Regexp
	config   meta.Config
	prefix   []byte
	foldcase bool

	namedOnce sync.Once
	named     map[string]int

	anchoredBothOnce   sync.Once
	anchoredBothEngine *meta.Engine

	err *CompileError
}

// CompileOptions compiles pattern under opts, translating the RE2-style
// construction knobs into regexp/syntax parse flags and a meta.Config before
// delegating compilation to the teacher's own engine selector
// (meta.CompileRegexp), per SPEC_FULL.md §6's Program/Compiler/Engine
// Selector collaborators.
func CompileOptions(pattern string, opts Options) (*Regex, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	flags := syntaxFlags(opts)
	tree, err := syntax.Parse(pattern, flags)
	if err != nil {
		ce := newCompileError(pattern, err)
		return &Regex{pattern: pattern, extra: &patternExtra{options: opts, err: ce}}, ce
	}

	config := meta.DefaultConfig()
	if opts.MaxMem > 0 {
		states := opts.MaxMem / bytesPerDFAStateEstimate
		if states < 1 {
			states = 1
		}
		if states > 1<<20 {
			states = 1 << 20
		}
		config.MaxDFAStates = uint32(states)
	}

	engine, err := meta.CompileRegexp(tree, config)
	if err != nil {
		ce := newCompileError(pattern, err)
		return &Regex{pattern: pattern, extra: &patternExtra{options: opts, tree: tree, err: ce}}, ce
	}
	engine.SetLongest(opts.Longest || opts.POSIXSyntax)

	prefix, foldcase, _ := requiredPrefix(tree)

	return &Regex{
		engine:  engine,
		pattern: pattern,
		extra: &patternExtra{
			options:  opts,
			tree:     tree,
			config:   config,
			prefix:   prefix,
			foldcase: foldcase,
		},
	}, nil
}

// MustCompileOptions is like CompileOptions but panics if the pattern fails
// to compile, following the teacher's existing MustCompile convention.
func MustCompileOptions(pattern string, opts Options) *Regex {
	re, err := CompileOptions(pattern, opts)
	if err != nil {
		panic("regexp: CompileOptions(`" + pattern + "`): " + err.Error())
	}
	return re
}

// bytesPerDFAStateEstimate mirrors dfa/lazy/config.go's documented rule of
// thumb ("~100-200 bytes per state") for translating an Options.MaxMem byte
// budget into meta.Config's MaxDFAStates cap.
const bytesPerDFAStateEstimate = 150

// syntaxFlags translates Options into the regexp/syntax.Flags the parser
// needs. regexp/syntax does not expose RE2's PerlClasses/WordBoundary split
// independently of PerlX, so both are folded into the single PerlX toggle;
// this is recorded as a deliberate simplification in DESIGN.md.
func syntaxFlags(opts Options) syntax.Flags {
	var flags syntax.Flags
	if opts.POSIXSyntax {
		flags = syntax.Flags(0)
	} else {
		flags = syntax.ClassNL | syntax.PerlX | syntax.UnicodeGroups
	}
	if opts.OneLine {
		flags |= syntax.OneLine
	}
	if opts.DotNL {
		flags |= syntax.DotNL
	}
	if !opts.CaseSensitive {
		flags |= syntax.FoldCase
	}
	if opts.Literal {
		flags |= syntax.Literal
	}
	return flags
}

// Valid reports whether the pattern compiled successfully. A Regex born from
// the stdlib-shaped Compile/MustCompile is always valid (those constructors
// already return an error instead of publishing a broken Regex).
func (r *Regex) Valid() bool {
	return r.extra == nil || r.extra.err == nil
}

// Err returns the compile error recorded on this pattern, or nil if it
// compiled successfully.
func (r *Regex) Err() *CompileError {
	if r.extra == nil {
		return nil
	}
	return r.extra.err
}

// NamedCaptures returns a mapping from capture group name to its 1-based
// group index, built at most once and cached thereafter (SPEC_FULL.md §3,
// §4.9, §5: the named_captures lazy field, realized here with sync.Once
// rather than a mutex since the computation takes no arguments).
func (r *Regex) NamedCaptures() map[string]int {
	if r.engine == nil {
		return nil
	}
	extra := r.extra
	if extra == nil {
		extra = &patternExtra{}
		r.extra = extra
	}
	extra.namedOnce.Do(func() {
		names := r.engine.SubexpNames()
		m := make(map[string]int, len(names))
		for i, name := range names {
			if name != "" {
				m[name] = i
			}
		}
		extra.named = m
	})
	return extra.named
}

// ProgramSize reports the compiled program's size (NFA state count), the
// collaborator query named in SPEC_FULL.md §6.
func (r *Regex) ProgramSize() int {
	if r.engine == nil {
		return 0
	}
	return r.engine.ProgramSize()
}

// MatchAt implements the Match Driver entry point described in SPEC_FULL.md
// §4.4: search text starting no earlier than startPos under anchor, filling
// up to len(submatch) slots with absolute byte slices into text ([start,end)
// windows, expressed here as the slices themselves per Go idiom). Returns
// false immediately for an invalid pattern, matching the "Uninitialized ->
// Error" short-circuit of §4.9.
//
// Named MatchAt, not Match, to avoid colliding with the stdlib-compatible
// Regex.Match(b []byte) bool in regex.go — Go has no method overloading, so
// the two entry points need distinct names even though both exist on *Regex.
func (r *Regex) MatchAt(text []byte, startPos int, anchor Anchor, submatch [][]byte) bool {
	if !r.Valid() || r.engine == nil {
		return false
	}
	if startPos < 0 || startPos > len(text) {
		return false
	}

	anchor = r.reconcileAnchor(anchor)

	// Prefix Filter (SPEC_FULL.md §4.1): every match this pattern can
	// produce begins with extra.prefix, so a haystack that doesn't carry it
	// at the anchor point can be rejected without invoking the engine at
	// all. Only usable once the search is pinned to a known offset.
	if anchor != Unanchored && len(r.extra.prefix) > 0 {
		if startPos+len(r.extra.prefix) > len(text) {
			return false
		}
		if !prefixMatches(text[startPos:startPos+len(r.extra.prefix)], r.extra.prefix, r.extra.foldcase) {
			return false
		}
	}

	var start, end int
	var slots [][]int

	if anchor == AnchorBoth {
		s, e, captures, ok := r.findAnchoredBoth(text, startPos)
		if !ok {
			return false
		}
		start, end, slots = s, e, captures
	} else {
		ncap := 1 + r.engine.NumCaptures()
		if len(submatch) < ncap {
			ncap = len(submatch)
		}

		// Engine Selector (SPEC_FULL.md §4.3): an anchored request with more
		// than one capture group is a candidate for the one-pass engine,
		// when the pattern has one and the thresholds allow it.
		usedOnePass := false
		if anchor == AnchorStart && ncap > 1 {
			if s, e, onePassCaptures, attempted, ok := findSubmatchOnePass(r.engine, text, startPos, ncap); attempted {
				if !ok {
					return false
				}
				start, end, slots = s, e, onePassCaptures
				usedOnePass = true
			}
		}

		if !usedOnePass {
			if ncap <= 1 {
				s, e, ok := r.engine.FindIndicesAt(text, startPos)
				if !ok {
					return false
				}
				start, end = s, e
			} else {
				m := r.engine.FindSubmatchAt(text, startPos)
				if m == nil {
					return false
				}
				start, end = m.Start, m.End
				slots = m.Captures
			}

			if anchor == AnchorStart && start != startPos {
				return false
			}
		}
	}

	if r.extra != nil && r.extra.options.NeverNL && containsNL(text[start:end]) {
		return false
	}

	if len(submatch) > 0 {
		submatch[0] = text[start:end]
	}
	for i := 1; i < len(submatch); i++ {
		if i < len(slots) && slots[i] != nil {
			submatch[i] = text[slots[i][0]:slots[i][1]]
		} else {
			submatch[i] = nil
		}
	}
	return true
}

// reconcileAnchor implements the Anchor Planner of SPEC_FULL.md §4.2: a
// pattern that is itself intrinsically anchored (leading \A/^ or trailing
// \z/$ baked into the parse tree) is at least as anchored as the tree
// already requires, regardless of what the caller asked for, so the
// stronger of the two anchor requirements always wins.
func (r *Regex) reconcileAnchor(anchor Anchor) Anchor {
	if r.extra == nil || r.extra.tree == nil {
		return anchor
	}
	startAnchored := nfa.IsPatternStartAnchored(r.extra.tree)
	endAnchored := nfa.IsPatternEndAnchored(r.extra.tree)
	switch {
	case startAnchored && endAnchored:
		return AnchorBoth
	case startAnchored && anchor == Unanchored:
		return AnchorStart
	default:
		return anchor
	}
}

// prefixMatches reports whether text begins with prefix, honoring foldcase
// the same way requiredPrefix recorded it (ASCII-only case-insensitivity).
func prefixMatches(text, prefix []byte, foldcase bool) bool {
	for i, b := range prefix {
		c := text[i]
		if foldcase {
			c = asciiToLower(c)
			b = asciiToLower(b)
		}
		if c != b {
			return false
		}
	}
	return true
}

// findAnchoredBoth performs a genuine anchored-both search: text[startPos:]
// must match re in its entirety. It lazily compiles a synthetic
// \A(?:pattern)\z-wrapped program so the anchor is structural, enforced by
// the engine itself, rather than a post-filter over an unanchored
// leftmost-first search — the latter is wrong whenever leftmost-first
// disagrees with the only alternative spanning the whole text (pattern
// `a|ab` against "ab": leftmost-first returns "a", but `a|ab` does fully
// match "ab" under real ANCHOR_BOTH semantics).
func (r *Regex) findAnchoredBoth(text []byte, startPos int) (start, end int, captures [][]int, ok bool) {
	engine := r.anchoredBoth()
	if engine == nil {
		return 0, 0, nil, false
	}

	ncap := 1 + engine.NumCaptures()
	if s, e, onePassCaptures, attempted, onePassOK := findSubmatchOnePass(engine, text, startPos, ncap); attempted {
		if !onePassOK {
			return 0, 0, nil, false
		}
		return s, e, onePassCaptures, true
	}

	sub := text[startPos:]
	m := engine.FindSubmatchAt(sub, 0)
	if m == nil {
		return 0, 0, nil, false
	}
	offset := make([][]int, len(m.Captures))
	for i, g := range m.Captures {
		if g == nil {
			continue
		}
		offset[i] = []int{startPos + g[0], startPos + g[1]}
	}
	return startPos + m.Start, startPos + m.End, offset, true
}

// anchoredBoth lazily compiles this pattern wrapped as \A(?:pattern)\z,
// reusing the same meta.Config the unanchored engine was built with.
// OpBeginText/OpEndText are structural anchors (\A/\z, not ^/$), so they
// enforce true whole-text matching no matter where in text the search is
// started.
func (r *Regex) anchoredBoth() *meta.Engine {
	if r.extra == nil || r.extra.tree == nil {
		return nil
	}
	r.extra.anchoredBothOnce.Do(func() {
		wrapped := &syntax.Regexp{
			Op: syntax.OpConcat,
			Sub: []*syntax.Regexp{
				{Op: syntax.OpBeginText},
				r.extra.tree,
				{Op: syntax.OpEndText},
			},
		}
		engine, err := meta.CompileRegexp(wrapped, r.extra.config)
		if err != nil {
			return
		}
		engine.SetLongest(r.extra.options.Longest || r.extra.options.POSIXSyntax)
		r.extra.anchoredBothEngine = engine
	})
	return r.extra.anchoredBothEngine
}

func containsNL(b []byte) bool {
	for _, c := range b {
		if c == '\n' {
			return true
		}
	}
	return false
}

// requiredPrefix implements the Prefix Extraction collaborator of
// SPEC_FULL.md §6: a literal byte-prefix is pulled off the front of re when
// one is available, for use by PossibleMatchRange and future prefix-based
// acceleration. Only a leading OpLiteral (whole-pattern or first Concat
// child) is recognized; non-ASCII literals are refused so the ASCII-only
// fold-case contract stays honest.
func requiredPrefix(re *syntax.Regexp) (prefix []byte, foldcase bool, ok bool) {
	lit := re
	if re.Op == syntax.OpConcat && len(re.Sub) > 0 {
		lit = re.Sub[0]
	}
	if lit.Op != syntax.OpLiteral {
		return nil, false, false
	}
	b := make([]byte, 0, len(lit.Rune))
	for _, r := range lit.Rune {
		if r > 127 {
			return nil, false, false
		}
		b = append(b, byte(r))
	}
	if len(b) == 0 {
		return nil, false, false
	}
	return b, lit.Flags&syntax.FoldCase != 0, true
}

// extractLiteralSeq runs the teacher's literal.Extractor over the pattern's
// parse tree; used by PossibleMatchRange.
func extractLiteralSeq(tree *syntax.Regexp) *literal.Seq {
	if tree == nil {
		return nil
	}
	extractor := literal.New(literal.DefaultConfig())
	return extractor.ExtractPrefixes(tree)
}
