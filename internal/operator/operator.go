// Package operator implements the operator-continuation pattern engine
// described in spec.md §4.2 and §9: two precompiled, per-surface-mode
// patterns that decide, at a whitespace byte inside an EXPRESSION with an
// empty group stack, whether the expression continues across the
// whitespace or ends there.
//
// The lookbehind half of the rule ("the bytes immediately before pos end in
// a unary/binary operator") has no equivalent in Go's standard regexp
// engine, which is RE2-based and deliberately forbids lookaround. This
// package instead reaches for github.com/dlclark/regexp2, a backtracking
// engine that supports .NET-style lookahead/lookbehind, exactly the
// capability the rule needs (spec.md §9 Design Note: "compile them once...
// or hand-write a small DFA"; regexp2 lets us take the former path without
// losing the latter's lookbehind).
package operator

import (
	"github.com/dlclark/regexp2"
)

// Mode selects which surface syntax's continuation rules apply.
type Mode int

const (
	Verbose Mode = iota
	Concise
)

// maxLookahead/maxLookbehind bound how much of the buffer we ever hand to
// the regex engine per test, since the continuation operators spec.md §4.2
// lists are all short (the longest is "instanceof").
const (
	maxLookahead  = 64
	maxLookbehind = 32
)

// lookaheadWordOps/lookbehindWordOps are the ASCII-only word-operator sets from spec.md §4.2's
// lookahead clause ("in"/"instanceof") and lookbehind clause ("async await
// class function new typeof void"), kept distinct so each pattern can
// assemble only the subset it needs.
const (
	lookaheadWordOps  = `in|instanceof`
	lookbehindWordOps = `async|await|class|function|new|typeof|void|in|instanceof`
)

// Patterns holds the compiled lookahead/lookbehind regexes for one surface
// mode.
type Patterns struct {
	lookahead  *regexp2.Regexp
	lookbehind *regexp2.Regexp
}

var (
	versbosePatterns = Patterns{
		lookahead:  regexp2.MustCompile(buildLookahead(Verbose), regexp2.None),
		lookbehind: regexp2.MustCompile(buildLookbehind(Verbose), regexp2.None),
	}
	concisePatterns = Patterns{
		lookahead:  regexp2.MustCompile(buildLookahead(Concise), regexp2.None),
		lookbehind: regexp2.MustCompile(buildLookbehind(Concise), regexp2.None),
	}
)

// For returns the compiled patterns for the given surface mode. Patterns
// are compiled once at package init, never per-call (spec.md §9: "compile
// them once at program start").
func For(mode Mode) Patterns {
	if mode == Concise {
		return concisePatterns
	}
	return versbosePatterns
}

func buildLookahead(mode Mode) string {
	bracketClass := `[{(]`
	trailer := `|>(?=[=>])` // verbose: '>' continues only as the start of '>=' or '>>'
	if mode == Concise {
		bracketClass = `[{(\[]` // '[' is a continuation opener only in concise mode
		trailer = `|-(?!-)`     // concise: unary '-' continues unless doubled
	}
	return `^[ \t\r\n]*(?:` +
		`==|=>` +
		`|[*%<&^|?:]` +
		`|/(?![/*>])(?=[\s\w]|$)` + // division, never //, /*, />
		`|\.(?=[ \t\r\n])` +
		`|\b(?:` + lookaheadWordOps + `)\b(?!\s*[;,)\]}])` +
		`|[+]+` +
		trailer +
		`|[ \t\r\n](?=` + bracketClass + `)` +
		`)[ \t\r\n]*`
}

func buildLookbehind(mode Mode) string {
	_ = mode // both modes share the same lookbehind operator set
	return `(?:` +
		`(?<![+])\+(?!\+)` +
		`|(?<![-])-(?!-)` +
		`|[=*%<>&^|?:!]` +
		`|\b(?:` + lookbehindWordOps + `)\b` +
		`)$`
}

// Continuation is the result of testing the rule at a whitespace boundary.
type Continuation struct {
	// Matched is true if either half of the rule fired.
	Matched bool
	// Advance is how many bytes to skip forward (the lookahead case,
	// spec.md §4.2: "the parser advances past it and keeps scanning").
	// Zero for a lookbehind-only (zero-width) match.
	Advance int
	// LookbehindOnly is true when the match came from the lookbehind half
	// alone: the caller consumes the whitespace run and steps pos back by
	// one (spec.md §4.2).
	LookbehindOnly bool
}

// Test runs the continuation rule at buf[pos], where buf[pos] is known to be
// a whitespace byte. It tries the lookahead pattern first; if that doesn't
// match, it falls back to the lookbehind pattern against the bytes already
// consumed.
func Test(p Patterns, buf []byte, pos int) Continuation {
	end := pos + maxLookahead
	if end > len(buf) {
		end = len(buf)
	}
	window := string(buf[pos:end])
	if m, err := p.lookahead.FindStringMatchStartingAt(window, 0); err == nil && m != nil && m.Index == 0 {
		if length := len([]byte(m.String())); length > 0 {
			return Continuation{Matched: true, Advance: length}
		}
	}

	start := pos - maxLookbehind
	if start < 0 {
		start = 0
	}
	behind := string(buf[start:pos])
	if m, err := p.lookbehind.FindStringMatchStartingAt(behind, 0); err == nil && m != nil {
		return Continuation{Matched: true, LookbehindOnly: true}
	}

	return Continuation{}
}
