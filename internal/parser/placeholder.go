package parser

import (
	"github.com/seanpm2001/htmljs-parser/internal/handler"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
)

// scanPlaceholderAtDollar scans a "${...}" or "$!{...}" placeholder
// (spec.md PLACEHOLDER state) starting at the current position, which must
// be a '$' immediately followed by '{' or "!{". It reports whether a
// placeholder was actually present; callers fall back to treating '$' as
// ordinary text when it returns false.
//
// Placeholder content is scanned with a balanced-brace, string/comment
// aware counter rather than by re-entering a full EXPRESSION sub-parse on
// the state stack: nested strings, template strings and comments are
// skipped so braces inside them don't unbalance the count, which is enough
// to recover the placeholder's value range correctly without the
// re-entrancy a nested EXPRESSION frame would add for no observable
// difference in the emitted event.
func (p *Parser) scanPlaceholderAtDollar() bool {
	escape := true
	switch {
	case p.peek(1) == '{':
		// "${": escaped
	case p.peek(1) == '!' && p.peek(2) == '{':
		escape = false // "$!{": non-escaped
	default:
		return false
	}

	start := p.pos
	if !escape {
		p.skip(3)
	} else {
		p.skip(2)
	}

	contentStart := p.pos
	depth := 1
	for !p.eof() && depth > 0 {
		switch p.cur() {
		case '{':
			depth++
			p.pos++
		case '}':
			depth--
			if depth == 0 {
				break
			}
			p.pos++
		case '"', '\'':
			p.skipSimpleString(p.cur())
		case '`':
			p.skipTemplateLiteralRaw()
		case '/':
			if p.peek(1) == '/' {
				for !p.eof() && !p.isEOL() {
					p.pos++
				}
			} else if p.peek(1) == '*' {
				p.pos += 2
				for !p.eof() && !p.lookAhead("*/") {
					p.pos++
				}
				if p.lookAhead("*/") {
					p.pos += 2
				}
			} else {
				p.pos++
			}
		default:
			p.pos++
		}
	}

	if depth != 0 {
		p.emitErrorRange(loc.MalformedPlaceholder, "unterminated placeholder", loc.Range{Start: start, End: p.maxPos})
		return true
	}

	value := loc.Range{Start: contentStart, End: p.pos}
	p.pos++ // consume the closing '}'
	p.reporter.EmitPlaceholder(handler.PlaceholderEvent{
		Range:  loc.Range{Start: start, End: p.pos},
		Value:  value,
		Escape: escape,
	})
	return true
}

// skipSimpleString advances past a '"' or '\'' delimited literal, honoring
// backslash escapes, without emitting any events: it exists purely to keep
// scanPlaceholderAtDollar's brace counter from being confused by braces
// inside string content.
func (p *Parser) skipSimpleString(quote byte) {
	p.pos++ // opening quote
	for !p.eof() {
		c := p.cur()
		if c == '\\' {
			p.pos += 2
			continue
		}
		p.pos++
		if c == quote {
			return
		}
	}
}

// skipTemplateLiteralRaw advances past a backtick-delimited literal the
// same way, without attempting to recursively track ${...} interpolations
// inside it (spec.md Non-goal territory for this helper: see
// scanPlaceholderAtDollar's doc comment).
func (p *Parser) skipTemplateLiteralRaw() {
	p.pos++ // opening backtick
	for !p.eof() {
		c := p.cur()
		if c == '\\' {
			p.pos += 2
			continue
		}
		p.pos++
		if c == '`' {
			return
		}
	}
}

// stepPlaceholder exists only to satisfy Parser.step's dispatch table; no
// code path in this package pushes a KindPlaceholder frame onto the stack
// (placeholders are scanned synchronously by scanPlaceholderAtDollar), so
// this is never actually reached.
func (p *Parser) stepPlaceholder(f *Frame) {
	p.stack.pop()
}
