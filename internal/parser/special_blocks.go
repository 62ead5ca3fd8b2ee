package parser

import (
	"github.com/seanpm2001/htmljs-parser/internal/handler"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
)

// stepCDATA scans a "<![CDATA[...]]>" section (spec.md §4.5; the opener is
// matched case-insensitively by the caller). The section ends at the first
// "]]>"; CDATA sections do not nest.
func (p *Parser) stepCDATA(f *Frame) {
	if p.pos == f.Start {
		p.skip(9) // "<![CDATA["
	}
	start := f.Start + 9
	for !p.eof() {
		if p.lookAhead("]]>") {
			value := loc.Range{Start: start, End: p.pos}
			p.skip(3)
			p.reporter.EmitCDATA(handler.ValueEvent{Range: loc.Range{Start: f.Start, End: p.pos}, Value: value})
			p.exit()
			return
		}
		p.pos++
	}
}

// stepDeclaration scans a generic "<!...>" markup declaration other than a
// doctype or CDATA section (spec.md §4.5's DECLARATION state), tolerating
// nested angle brackets.
func (p *Parser) stepDeclaration(f *Frame) {
	if p.pos == f.Start {
		p.skip(2) // "<!"
	}
	start := f.Start + 2
	depth := 0
	for !p.eof() {
		switch p.cur() {
		case '<':
			depth++
		case '>':
			if depth == 0 {
				value := loc.Range{Start: start, End: p.pos}
				p.pos++
				p.reporter.EmitDeclaration(handler.ValueEvent{Range: loc.Range{Start: f.Start, End: p.pos}, Value: value})
				p.exit()
				return
			}
			depth--
		}
		p.pos++
	}
}

// stepDoctype scans "<!DOCTYPE ...>" (spec.md §4.5's DOCTYPE state,
// SUPPLEMENTED FEATURES: case-insensitive keyword, nested-bracket
// tolerant for inline DTD subsets).
func (p *Parser) stepDoctype(f *Frame) {
	if p.pos == f.Start {
		p.skip(9) // "<!DOCTYPE" (case already confirmed by the caller's lookAheadFold)
	}
	start := f.Start + 9
	depth := 0
	for !p.eof() {
		switch p.cur() {
		case '<':
			depth++
		case '>':
			if depth == 0 {
				value := loc.Range{Start: start, End: p.pos}
				p.pos++
				p.reporter.EmitDoctype(handler.ValueEvent{Range: loc.Range{Start: f.Start, End: p.pos}, Value: value})
				p.exit()
				return
			}
			depth--
		}
		p.pos++
	}
}

// stepScriptlet scans a "<? ... ?>" processing-instruction-style scriptlet
// tag, grounded in spec.md §4.5's SCRIPTLET state. There is no concise-mode
// form; only the "<?" opener entered from verbose content reaches it. Content is treated as opaque JS text (spec.md
// §1 Non-goals exclude full embedded-JS re-lexing of scriptlet bodies).
func (p *Parser) stepScriptlet(f *Frame) {
	closeSeq := "?>"
	if f.Start == p.pos {
		p.skip(2) // "<?"
	}
	start := f.Start + 2
	for !p.eof() {
		if p.lookAhead(closeSeq) {
			value := loc.Range{Start: start, End: p.pos}
			p.skip(len(closeSeq))
			p.reporter.EmitScriptlet(handler.ScriptletEvent{
				Range: loc.Range{Start: f.Start, End: p.pos}, Value: value,
				Tag: f.ScriptletTag, Block: f.ScriptletBlock,
			})
			p.exit()
			return
		}
		p.pos++
	}
}

// stepInlineScript scans a concise-mode "$ <js statement>" line (spec.md
// §4.4 SUPPLEMENTED FEATURES): everything up to EOL/EOF is one opaque
// scriptlet value.
func (p *Parser) stepInlineScript(f *Frame) {
	if p.pos == f.Start {
		p.skip(1) // "$"
		p.consumeWhitespace()
	}
	start := p.pos
	for !p.eof() && !p.isEOL() {
		p.pos++
	}
	value := loc.Range{Start: start, End: p.pos}
	p.reporter.EmitScriptlet(handler.ScriptletEvent{
		Range: loc.Range{Start: f.Start, End: p.pos}, Value: value, Block: true,
	})
	p.exit()
}

// stepDelimitedHTMLBlock scans a concise-mode "--" text line (spec.md §4.4
// SUPPLEMENTED FEATURES: a single line of literal HTML text introduced by
// "--"), emitted verbatim as text with no tag/placeholder recognition.
func (p *Parser) stepDelimitedHTMLBlock(f *Frame) {
	if p.pos == f.Start {
		p.skip(2) // "--"
	}
	start := p.pos
	for !p.eof() && !p.isEOL() {
		p.pos++
	}
	if p.pos > start {
		p.reporter.EmitText(loc.Range{Start: start, End: p.pos})
	}
	p.exit()
}
