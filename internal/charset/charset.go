// Package charset holds the character classifier predicates spec.md §2
// calls out as their own component: whitespace, digit, identifier, and the
// "can this byte be followed by a division operator" rule EXPRESSION needs
// to disambiguate `/` from a regex literal (spec.md §4.2, §4.6).
//
// Identifier classification defers to the teacher's own dependency,
// github.com/tdewolff/parse/v2/js (see internal/js_scanner.IsIdentifier in
// the teacher repo), rather than hand-rolling a Unicode identifier table.
// Per spec.md §9 Open Question 2, word-operator lookahead is restricted to
// ASCII, so every predicate here operates one byte at a time.
package charset

import "github.com/tdewolff/parse/v2/js"

// IsWhitespace reports whether c is an ASCII HTML/JS whitespace byte. EOL
// bytes ('\n', '\r') are intentionally excluded — callers that care about
// end-of-line handle it separately (spec.md §4.1 "End-of-line... invokes
// eol").
func IsWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\f', '\v':
		return true
	}
	return false
}

// IsWhitespaceOrEOL additionally treats '\n' and '\r' as whitespace, for
// contexts that don't distinguish the two (e.g. skipping before an
// attribute name).
func IsWhitespaceOrEOL(c byte) bool {
	return IsWhitespace(c) || c == '\n' || c == '\r'
}

func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func IsHexDigit(c byte) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsIdentifierStart reports whether c can begin an embedded-language
// identifier.
func IsIdentifierStart(c byte) bool {
	return js.IsIdentifierStart([]byte{c})
}

// IsIdentifierPart reports whether c can continue an embedded-language
// identifier begun by IsIdentifierStart.
func IsIdentifierPart(c byte) bool {
	return js.IsIdentifierContinue([]byte{c})
}

// CanBeFollowedByDivision reports whether the byte immediately preceding a
// `/` makes that `/` the division operator rather than the start of a
// regular expression literal (spec.md §4.2: "digits, letters, %, ), ., <,
// ], }"). It is the byte-level half of the same disambiguation
// tdewolff/parse/v2/js performs at the token level via DivToken.
func CanBeFollowedByDivision(c byte) bool {
	switch c {
	case ')', '.', '<', ']', '}', '%':
		return true
	}
	return IsIdentifierPart(c) || IsDigit(c)
}

// IsNameChar reports whether c can appear in an HTML tag or attribute name
// (letters, digits, '-' and '_'). Deliberately excludes '.' and ':': both
// are significant delimiters elsewhere in the grammar — '.' starts a
// shorthand class suffix (spec.md §4 shorthand id/class), ':' begins the
// ":=" bound-attribute marker (spec.md §4.3) — and a name scan that
// swallowed them would make those constructs unreachable.
func IsNameChar(c byte) bool {
	switch c {
	case '-', '_':
		return true
	}
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || IsDigit(c)
}
