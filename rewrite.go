package coregex

import "github.com/coregx/coregex/meta"

// The Substitution Engine (SPEC_FULL.md §4.5) operates on a template grammar
// distinct from the stdlib-style "$1" expansion ReplaceAll already supports:
// `\\` is a literal backslash, `\d` for a decimal digit d selects capture
// group d (group 0 is the whole match), and any other byte following `\` is
// malformed, as is a trailing `\`.

// MaxSubmatch returns the largest capture-group index referenced by an
// unescaped `\` in template, or 0 if none is referenced.
func MaxSubmatch(template string) int {
	max := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '\\' || i+1 >= len(template) {
			continue
		}
		c := template[i+1]
		if c >= '0' && c <= '9' {
			if n := int(c - '0'); n > max {
				max = n
			}
		}
		i++
	}
	return max
}

// CheckRewriteString statically validates template against numCaptures
// (SPEC_FULL.md §4.5: CheckRewriteString), returning a *RewriteError naming
// the problem when the template is malformed or refers to a group beyond
// numCaptures.
func CheckRewriteString(template string, numCaptures int) error {
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '\\' {
			continue
		}
		i++
		if i >= len(template) {
			return &RewriteError{Template: template, Message: "trailing backslash"}
		}
		d := template[i]
		if d == '\\' {
			continue
		}
		if d < '0' || d > '9' {
			return &RewriteError{Template: template, Message: "invalid escape sequence \\" + string(d)}
		}
	}
	if max := MaxSubmatch(template); max > numCaptures {
		return &RewriteError{
			Template: template,
			Message:  "invalid reference to capture group " + itoa(max) + " (pattern has " + itoa(numCaptures) + ")",
		}
	}
	return nil
}

// Rewrite appends the expansion of template against submatch to dst and
// returns the result (SPEC_FULL.md §4.5: Rewrite). submatch[0] is the whole
// match; submatch[i] is group i, or nil if group i did not participate (in
// which case the reference contributes nothing). Fails if template is
// malformed or references a group at or beyond len(submatch).
func Rewrite(dst []byte, template string, submatch [][]byte) ([]byte, error) {
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '\\' {
			dst = append(dst, c)
			continue
		}
		i++
		if i >= len(template) {
			return dst, &RewriteError{Template: template, Message: "trailing backslash"}
		}
		d := template[i]
		switch {
		case d == '\\':
			dst = append(dst, '\\')
		case d >= '0' && d <= '9':
			n := int(d - '0')
			if n >= len(submatch) {
				return dst, &RewriteError{
					Template: template,
					Message:  "invalid reference to capture group " + itoa(n) + " (only " + itoa(len(submatch)-1) + " captured)",
				}
			}
			if submatch[n] != nil {
				dst = append(dst, submatch[n]...)
			}
		default:
			return dst, &RewriteError{Template: template, Message: "invalid escape sequence \\" + string(d)}
		}
	}
	return dst, nil
}

// itoa avoids pulling in strconv for a handful of single/double-digit group
// numbers; group indices are always small in practice (bounded by
// MaxOnePassCapture's K=17 for any pattern that still extracts captures).
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Replace finds one unanchored match of the pattern in src and splices in
// the expansion of template in place of the matched span (SPEC_FULL.md
// §4.5: Replace). Returns src unchanged (copied) if there is no match.
func (r *Regex) Replace(src []byte, template string) ([]byte, error) {
	m := r.engine.FindSubmatch(src)
	if m == nil {
		out := make([]byte, len(src))
		copy(out, src)
		return out, nil
	}

	submatch := matchToSubmatch(src, m)
	out := make([]byte, 0, len(src))
	out = append(out, src[:m.Start:m.Start]...)
	out, err := Rewrite(out, template, submatch)
	if err != nil {
		return nil, err
	}
	out = append(out, src[m.End:]...)
	return out, nil
}

// GlobalReplace performs a non-overlapping, left-to-right substitution of
// every match in src (SPEC_FULL.md §4.5: GlobalReplace), returning the
// result, the number of substitutions made, and a non-nil error only when
// template itself is rejected by CheckRewriteString. A zero-substitution
// result returns src unchanged and count 0, never an error — per the Open
// Question resolved in SPEC_FULL.md §9.
//
// Empty-match policy: a zero-length match occurring immediately after the
// previous match's end is suppressed — one byte is copied verbatim and the
// cursor advances by one — so the cursor always strictly advances and the
// loop is guaranteed to terminate.
func (r *Regex) GlobalReplace(src []byte, template string) (string, int, error) {
	if err := CheckRewriteString(template, r.engine.NumCaptures()); err != nil {
		return string(src), 0, err
	}

	var out []byte
	pos := 0
	lastMatchEnd := -1
	count := 0

	for pos <= len(src) {
		m := r.engine.FindSubmatchAt(src, pos)
		if m == nil {
			break
		}

		if m.Start == m.End && m.Start == lastMatchEnd {
			// Suppress the empty match glued to the previous one's end.
			if m.Start < len(src) {
				out = append(out, src[m.Start])
			}
			pos = m.Start + 1
			continue
		}

		out = append(out, src[pos:m.Start]...)
		submatch := matchToSubmatch(src, m)
		var err error
		out, err = Rewrite(out, template, submatch)
		if err != nil {
			return string(src), 0, err
		}
		count++
		lastMatchEnd = m.End

		if m.End > pos {
			pos = m.End
		} else {
			if m.End < len(src) {
				out = append(out, src[m.End])
			}
			pos = m.End + 1
		}
	}

	if count == 0 {
		return string(src), 0, nil
	}

	out = append(out, src[min(pos, len(src)):]...)
	return string(out), count, nil
}

// min(a, b int) int is a compiler builtin as of Go 1.21; no helper needed.

// Extract finds one unanchored match of the pattern in src and returns the
// expansion of template against it (SPEC_FULL.md §4.5: Extract). ok is
// false when there is no match or template is rejected.
func (r *Regex) Extract(src []byte, template string) (result string, ok bool) {
	m := r.engine.FindSubmatch(src)
	if m == nil {
		return "", false
	}
	submatch := matchToSubmatch(src, m)
	out, err := Rewrite(nil, template, submatch)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// matchToSubmatch converts the meta package's flat capture representation
// into the SubmatchVector shape (SPEC_FULL.md §3) the rewrite helpers above
// consume: index 0 the whole match, index i the i-th group or nil if absent.
func matchToSubmatch(src []byte, m *meta.MatchWithCaptures) [][]byte {
	submatch := make([][]byte, len(m.Captures))
	submatch[0] = src[m.Start:m.End]
	for i := 1; i < len(m.Captures); i++ {
		if g := m.Captures[i]; g != nil {
			submatch[i] = src[g[0]:g[1]]
		}
	}
	return submatch
}
