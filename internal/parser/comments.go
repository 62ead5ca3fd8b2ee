package parser

import (
	"github.com/seanpm2001/htmljs-parser/internal/handler"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
)

// stepJSCommentLine scans a "//..." comment (spec.md §4.2's JS-COMMENT-LINE
// state). It ends at EOL or EOF, neither of which is an error.
func (p *Parser) stepJSCommentLine(f *Frame) {
	if p.pos == f.Start {
		p.skip(2) // "//"
	}
	for !p.eof() && !p.isEOL() {
		p.pos++
	}
	p.exit()
}

// stepJSCommentBlock scans a "/*...*/" comment (spec.md §4.2's
// JS-COMMENT-BLOCK state). Unterminated blocks are reported by handleEOF.
func (p *Parser) stepJSCommentBlock(f *Frame) {
	if p.pos == f.Start {
		p.skip(2) // "/*"
	}
	for !p.eof() {
		if p.lookAhead("*/") {
			p.skip(2)
			p.exit()
			return
		}
		p.pos++
	}
}

// stepHTMLComment scans a "<!--...-->" comment (spec.md §4.5's
// HTML-COMMENT state).
func (p *Parser) stepHTMLComment(f *Frame) {
	if p.pos == f.Start {
		p.skip(4) // "<!--"
	}
	start := f.Start + 4
	for !p.eof() {
		if p.lookAhead("-->") {
			value := loc.Range{Start: start, End: p.pos}
			p.skip(3)
			p.reporter.EmitComment(handler.ValueEvent{Range: loc.Range{Start: f.Start, End: p.pos}, Value: value})
			p.exit()
			return
		}
		p.pos++
	}
}
