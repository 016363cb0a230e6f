package coregex

import (
	"errors"
	"fmt"
	"regexp/syntax"

	"github.com/coregx/coregex/nfa"
)

// ErrorCode classifies why a pattern failed to compile, following the
// domain laid out in SPEC_FULL.md §7.
type ErrorCode int

const (
	// ErrNoError indicates the pattern compiled successfully.
	ErrNoError ErrorCode = iota
	ErrInternal
	ErrBadEscape
	ErrBadCharClass
	ErrBadCharRange
	ErrMissingBracket
	ErrMissingParen
	ErrTrailingBackslash
	ErrRepeatArgument
	ErrRepeatSize
	ErrRepeatOp
	ErrBadPerlOp
	ErrBadUTF8
	ErrBadNamedCapture
	// ErrPatternTooLarge means the forward or reverse program exceeded its
	// memory budget during compilation.
	ErrPatternTooLarge
)

func (c ErrorCode) String() string {
	switch c {
	case ErrNoError:
		return "no error"
	case ErrInternal:
		return "internal error"
	case ErrBadEscape:
		return "bad escape sequence"
	case ErrBadCharClass:
		return "bad character class"
	case ErrBadCharRange:
		return "bad character class range"
	case ErrMissingBracket:
		return "missing closing ]"
	case ErrMissingParen:
		return "missing closing )"
	case ErrTrailingBackslash:
		return "trailing backslash"
	case ErrRepeatArgument:
		return "missing argument to repetition operator"
	case ErrRepeatSize:
		return "invalid repeat count"
	case ErrRepeatOp:
		return "invalid nested repetition operator"
	case ErrBadPerlOp:
		return "bad perl operator"
	case ErrBadUTF8:
		return "invalid UTF-8"
	case ErrBadNamedCapture:
		return "bad named capture"
	case ErrPatternTooLarge:
		return "pattern too large"
	default:
		return "unknown error"
	}
}

// syntaxErrorCode maps a regexp/syntax parse error onto this module's
// ErrorCode domain, following the table RE2's own Init uses to translate
// its parser's error codes (see DESIGN.md, errors.go entry).
func syntaxErrorCode(code syntax.ErrorCode) ErrorCode {
	switch code {
	case syntax.ErrInvalidEscape:
		return ErrBadEscape
	case syntax.ErrInvalidCharClass:
		return ErrBadCharClass
	case syntax.ErrInvalidCharRange:
		return ErrBadCharRange
	case syntax.ErrMissingBracket:
		return ErrMissingBracket
	case syntax.ErrMissingParen, syntax.ErrUnexpectedParen:
		return ErrMissingParen
	case syntax.ErrTrailingBackslash:
		return ErrTrailingBackslash
	case syntax.ErrMissingRepeatArgument:
		return ErrRepeatArgument
	case syntax.ErrInvalidRepeatSize, syntax.ErrNestingDepth, syntax.ErrLarge:
		return ErrRepeatSize
	case syntax.ErrInvalidRepeatOp:
		return ErrRepeatOp
	case syntax.ErrInvalidPerlOp:
		return ErrBadPerlOp
	case syntax.ErrInvalidUTF8:
		return ErrBadUTF8
	case syntax.ErrInvalidNamedCapture:
		return ErrBadNamedCapture
	default:
		return ErrInternal
	}
}

// CompileError reports why CompileOptions failed. It wraps the underlying
// *syntax.Error when the failure originated in parsing, so callers can use
// errors.As to reach it.
type CompileError struct {
	Pattern string
	Code    ErrorCode
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("coregex: error compiling %q: %s", e.Pattern, e.Code)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

func newCompileError(pattern string, err error) *CompileError {
	var se *syntax.Error
	code := ErrInternal
	switch {
	case errors.As(err, &se):
		code = syntaxErrorCode(se.Code)
	case errors.Is(err, nfa.ErrTooComplex):
		// meta.CompileRegexp's own NFA compiler hit MaxRecursionDepth
		// (nfa/compile.go) building the forward or ASCII program: the
		// pattern is too large for this budget, independent of the
		// regexp/syntax parse succeeding.
		code = ErrPatternTooLarge
	}
	return &CompileError{Pattern: pattern, Code: code, Err: err}
}

// RewriteError reports a malformed or over-referencing rewrite template,
// returned by CheckRewriteString and by Rewrite/Replace/GlobalReplace/Extract
// when the template cannot be applied (SPEC_FULL.md §4.5, §7).
type RewriteError struct {
	Template string
	Message  string
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("coregex: invalid rewrite template %q: %s", e.Template, e.Message)
}
