package parser

import (
	"github.com/seanpm2001/htmljs-parser/internal/charset"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
	"github.com/seanpm2001/htmljs-parser/internal/operator"
)

// stepString scans a single- or double-quoted JS string literal (spec.md
// §4.2's STRING state), honoring backslash escapes. Unterminated strings
// are left for handleEOF to report.
func (p *Parser) stepString(f *Frame) {
	if p.pos == f.Start {
		p.pos++ // opening quote
	}
	for !p.eof() {
		switch p.cur() {
		case '\\':
			p.skip(2)
		case f.QuoteChar:
			p.pos++
			p.exit()
			return
		default:
			p.pos++
		}
	}
}

// stepTemplateString scans a backtick literal (spec.md §4.2's
// TEMPLATE-STRING state), recursively scanning "${...}" interpolations as
// nested expressions so strings/braces inside them balance correctly.
func (p *Parser) stepTemplateString(f *Frame) {
	if p.pos == f.Start {
		p.pos++ // opening backtick
	}
	for !p.eof() {
		switch p.cur() {
		case '\\':
			p.skip(2)
		case '`':
			p.pos++
			p.exit()
			return
		case '$':
			if p.peek(1) == '{' {
				p.skip(2)
				if _, ok := p.scanExpression(exprOptions{
					terminator: []byte{'}'},
					purpose:    "template literal interpolation",
					opMode:     f.parentOpMode(),
				}); !ok {
					return
				}
				if p.cur() == '}' {
					p.pos++
				}
				continue
			}
			p.pos++
		default:
			p.pos++
		}
	}
}

// parentOpMode looks up the nearest ancestor EXPRESSION frame's operator
// mode, defaulting to Verbose when there is none (e.g. a template literal
// used directly as an attribute value already fixes its own mode there).
func (f *Frame) parentOpMode() operator.Mode {
	for anc := f.Parent; anc != nil; anc = anc.Parent {
		if anc.Kind == KindExpression {
			return anc.OpMode
		}
	}
	return operator.Verbose
}

// stepRegularExpression scans a `/.../flags` literal (spec.md §4.2's
// REGULAR-EXPRESSION state), tracking character-class brackets so a `/`
// inside `[...]` doesn't end the literal early.
func (p *Parser) stepRegularExpression(f *Frame) {
	if p.pos == f.Start {
		p.pos++ // opening slash
	}
	for !p.eof() {
		c := p.cur()
		switch {
		case c == '\\':
			p.skip(2)
		case c == '[':
			f.InCharClass = true
			p.pos++
		case c == ']':
			f.InCharClass = false
			p.pos++
		case c == '/' && !f.InCharClass:
			p.pos++
			for !p.eof() && charset.IsIdentifierPart(p.cur()) {
				p.pos++ // trailing flags: g, i, m, s, u, y
			}
			p.exit()
			return
		case p.isEOL():
			// A literal newline inside what looked like a regex means this
			// was never a regex; handleEOF's unterminated-regex message
			// covers this too, but report it immediately since EOL here is
			// unambiguous.
			p.emitErrorRange(loc.InvalidExpression, "unterminated regular expression literal", unterminatedRange(f, p.pos))
			return
		default:
			p.pos++
		}
	}
}
