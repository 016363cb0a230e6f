package coregex

import "fmt"

// Encoding selects how the pattern and input bytes are interpreted.
type Encoding int

const (
	// EncodingUTF8 treats both pattern and input as UTF-8.
	EncodingUTF8 Encoding = iota
	// EncodingLatin1 treats both pattern and input as raw Latin-1 bytes.
	EncodingLatin1
)

// defaultMaxMem is the default automaton memory budget, split 2/3 forward
// and 1/3 reverse per SPEC_FULL.md §3 invariant 4.
const defaultMaxMem = 8 << 20 // 8MB, matching RE2's own default.

// Options carries every construction-time knob a CompiledPattern needs,
// mirroring re2.cc's RE2::Options (SPEC_FULL.md §3, §10.1).
type Options struct {
	Encoding Encoding

	// POSIXSyntax restricts the grammar to POSIX egrep syntax (no \d, no
	// non-greedy operators) and forces leftmost-longest matching.
	POSIXSyntax bool

	// Literal treats the pattern as a literal string, not a regexp.
	Literal bool

	// Longest requests leftmost-longest match semantics instead of
	// leftmost-first (Perl-style).
	Longest bool

	// CaseSensitive disables (?i) folding at the top level when false.
	CaseSensitive bool

	// DotNL makes '.' match '\n' as well.
	DotNL bool

	// NeverNL forbids the pattern from matching '\n' at all, even inside
	// literals and character classes.
	NeverNL bool

	// PerlClasses enables Perl character classes (\d, \s, \w).
	PerlClasses bool

	// WordBoundary enables \b and \B.
	WordBoundary bool

	// OneLine anchors ^ and $ to the whole text instead of each line.
	OneLine bool

	// LogErrors controls whether compile errors are reported through the
	// ambient debugf hook (SPEC_FULL.md §10.2).
	LogErrors bool

	// MaxMem bounds the combined forward+reverse automaton memory budget,
	// in bytes. Zero selects defaultMaxMem.
	MaxMem int64
}

// DefaultOptions returns the Perl-like, UTF-8, leftmost-first options RE2
// itself defaults to.
func DefaultOptions() Options {
	return Options{
		Encoding:      EncodingUTF8,
		CaseSensitive: true,
		PerlClasses:   true,
		WordBoundary:  true,
		OneLine:       false,
		LogErrors:     true,
		MaxMem:        defaultMaxMem,
	}
}

// Latin1Options mirrors re2.cc's RE2::Latin1 preset: Latin-1 encoding,
// otherwise defaulted.
func Latin1Options() Options {
	o := DefaultOptions()
	o.Encoding = EncodingLatin1
	return o
}

// POSIXOptions mirrors re2.cc's RE2::POSIX preset: POSIX syntax and
// leftmost-longest matching.
func POSIXOptions() Options {
	o := DefaultOptions()
	o.POSIXSyntax = true
	o.Longest = true
	return o
}

// QuietOptions mirrors re2.cc's RE2::Quiet preset: same as default but with
// error logging disabled.
func QuietOptions() Options {
	o := DefaultOptions()
	o.LogErrors = false
	return o
}

// Validate reports the first out-of-range field, following the same shape
// as the teacher's meta.Config.Validate.
func (o Options) Validate() error {
	if o.MaxMem < 0 {
		return &ConfigError{Field: "MaxMem", Message: "must be non-negative"}
	}
	return nil
}

// ConfigError reports an invalid Options or meta.Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("coregex: invalid option %s: %s", e.Field, e.Message)
}
