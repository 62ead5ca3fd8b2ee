package parser

import (
	"strings"

	"github.com/seanpm2001/htmljs-parser/internal/charset"
	"github.com/seanpm2001/htmljs-parser/internal/handler"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
)

// stepHTMLContent dispatches to the verbose or concise content scanner
// (spec.md §4.4/§4.5), the two flavors of the HTML-CONTENT state.
func (p *Parser) stepHTMLContent(f *Frame) {
	if f.Concise {
		p.stepConciseContent(f)
	} else {
		p.stepVerboseContent(f)
	}
}

// stepVerboseContent scans angle-bracket HTML content until it must enter a
// child state (a nested tag, comment, CDATA section, declaration,
// scriptlet or placeholder) or recognizes the closing tag for its own
// enclosing element (spec.md §4.5).
func (p *Parser) stepVerboseContent(f *Frame) {
	if f.BodyMode != BodyModeHTML {
		p.stepRawBody(f)
		return
	}

	start := p.pos
	flush := func() {
		if p.pos > start {
			p.reporter.EmitText(loc.Range{Start: start, End: p.pos})
		}
	}

	for !p.eof() {
		switch {
		case p.lookAhead("<!--"):
			flush()
			p.enter(KindHTMLComment)
			return
		case p.lookAheadFold("<![CDATA["):
			flush()
			p.enter(KindCDATA)
			return
		case p.lookAheadFold("<!DOCTYPE"):
			flush()
			p.enter(KindDoctype)
			return
		case p.cur() == '<' && p.peek(1) == '?':
			flush()
			sf := p.enter(KindScriptlet)
			sf.ScriptletTag = true
			return
		case p.cur() == '<' && p.peek(1) == '!':
			flush()
			p.enter(KindDeclaration)
			return
		case p.cur() == '<' && p.peek(1) == '/':
			flush()
			p.scanVerboseCloseTag()
			return
		case p.cur() == '<' && (charset.IsNameChar(p.peek(1)) || p.peek(1) == '#' || p.peek(1) == '.'):
			flush()
			p.skip(1)
			tf := p.enter(KindOpenTag)
			tf.Concise = false
			return
		case f.BodyMode != BodyModeStaticText && f.BodyMode != BodyModeCDATA &&
			p.cur() == '$' && (p.peek(1) == '{' || (p.peek(1) == '!' && p.peek(2) == '{')):
			flush()
			if !p.scanPlaceholderAtDollar() {
				p.pos++
				continue
			}
			if p.reporter.HasError() {
				return
			}
			start = p.pos
		default:
			p.pos++
		}
	}
	flush()
}

// stepRawBody scans the body of a PARSED_TEXT/STATIC_TEXT/CDATA-mode tag
// (spec.md §3's bodyMode, SUPPLEMENTED FEATURES "PARSED_TEXT body content"):
// everything up to the tag's own closing tag is literal text, with
// placeholder recognition only in PARSED_TEXT mode (spec.md's own framing:
// "text with placeholders", not full JS re-lexing).
func (p *Parser) stepRawBody(f *Frame) {
	start := p.pos
	flush := func() {
		if p.pos > start {
			p.reporter.EmitText(loc.Range{Start: start, End: p.pos})
		}
	}

	for !p.eof() {
		if p.cur() == '<' && p.peek(1) == '/' && p.atCloseTag(f.TagName) {
			flush()
			p.scanVerboseCloseTag()
			return
		}
		if f.BodyMode == BodyModeParsedText && p.cur() == '$' &&
			(p.peek(1) == '{' || (p.peek(1) == '!' && p.peek(2) == '{')) {
			flush()
			if !p.scanPlaceholderAtDollar() {
				p.pos++
				continue
			}
			if p.reporter.HasError() {
				return
			}
			start = p.pos
			continue
		}
		p.pos++
	}
	flush()
}

// atCloseTag reports whether the bytes at the current position spell out
// "</" + name (case-sensitive), the lookahead raw-text bodies need to find
// their own closing tag without otherwise re-lexing their content
// (SUPPLEMENTED FEATURES: checkForClosingTag lookahead helper).
func (p *Parser) atCloseTag(name loc.Range) bool {
	if p.cur() != '<' || p.peek(1) != '/' {
		return false
	}
	pos := p.pos + 2
	for i := name.Start; i < name.End; i++ {
		if p.byteAt(pos) != p.buf[i] {
			return false
		}
		pos++
	}
	after := p.byteAt(pos)
	return charset.IsWhitespaceOrEOL(after) || after == '>'
}

// scanVerboseCloseTag consumes a "</name>" sequence and closes the
// matching ancestor tag (spec.md §4.5's close-tag recognition), implicitly
// closing any unclosed descendants first the way browsers do.
func (p *Parser) scanVerboseCloseTag() {
	start := p.pos
	p.skip(2)
	nameStart := p.pos
	for !p.eof() && charset.IsNameChar(p.cur()) {
		p.pos++
	}
	name := loc.Range{Start: nameStart, End: p.pos}
	p.consumeWhitespace()
	if p.cur() == '>' {
		p.pos++
	}
	closeRange := loc.Range{Start: start, End: p.pos}
	p.closeVerboseTag(name, closeRange)
}

func (p *Parser) closeVerboseTag(name, closeRange loc.Range) {
	target := -1
	for i := len(p.stack.frames) - 1; i >= 0; i-- {
		fr := p.stack.frames[i]
		if fr.Kind == KindHTMLContent && !fr.Concise && sameName(p.buf, fr.TagName, name) {
			target = i
			break
		}
	}
	if target == -1 {
		p.emitErrorRange(loc.InvalidBody, "unmatched closing tag", closeRange)
		return
	}
	for len(p.stack.frames)-1 >= target {
		p.stack.pop() // the HTMLContent frame representing the tag's body
		open := p.stack.pop()
		p.reporter.EmitCloseTag(handler.CloseTagEvent{Range: closeRange, TagName: open.TagName})
	}
}

func sameName(buf []byte, a, b loc.Range) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if buf[a.Start+i] != buf[b.Start+i] {
			return false
		}
	}
	return true
}

// stepConciseContent scans exactly one source line of indentation-sensitive
// content (spec.md §4.4): it measures the line's indentation, closes any
// concise ancestor tags the new indentation dedents out of, and dispatches
// on the line's first significant byte.
func (p *Parser) stepConciseContent(f *Frame) {
	indentStart := p.pos
	for !p.eof() && charset.IsWhitespace(p.cur()) {
		p.pos++
	}
	indent := string(p.buf[indentStart:p.pos])
	p.currentLineIndent = indent

	if p.eof() {
		return
	}
	if p.isEOL() {
		p.skipEOL()
		return
	}

	p.closeDedentedConciseTags(indent)

	var parent *Frame
	if len(p.conciseTagStack) > 0 {
		parent = p.conciseTagStack[len(p.conciseTagStack)-1]
	}

	if parent == nil {
		if indent != "" {
			p.emitErrorRange(loc.BadIndentation, "unexpected indentation at the root", loc.Range{Start: indentStart, End: p.pos})
			return
		}
	} else {
		if parent.Ending != EndingTag {
			p.emitErrorRange(loc.InvalidBody, "tag does not allow nested content", loc.Range{Start: indentStart, End: p.pos})
			return
		}
		if parent.BodyMode == BodyModeParsedText && p.cur() != '-' {
			p.emitError(loc.IllegalLineStart, "parsed-text content must start with \"-\"")
			return
		}
		if parent.NestedIndent == nil {
			canon := indent
			parent.NestedIndent = &canon
		} else if indent != *parent.NestedIndent {
			p.emitErrorRange(loc.BadIndentation, "sibling indentation must match the first child's indentation exactly", loc.Range{Start: indentStart, End: p.pos})
			return
		}
	}

	switch {
	case p.cur() == '<' && p.peek(1) == '/':
		p.emitError(loc.IllegalLineStart, "closing tags are not allowed in concise mode")
	case p.cur() == '<' && (charset.IsNameChar(p.peek(1)) || p.peek(1) == '#' || p.peek(1) == '.'):
		p.skip(1)
		tf := p.enter(KindOpenTag)
		tf.Concise = false
	case parent != nil && parent.BodyMode == BodyModeParsedText && p.cur() == '-':
		p.scanConciseParsedTextLine()
	case p.cur() == '-' && p.peek(1) == '-':
		p.enter(KindDelimitedHTMLBlock)
	case p.cur() == '$' && p.peek(1) != '{' && !(p.peek(1) == '!' && p.peek(2) == '{'):
		p.enter(KindInlineScript)
	case p.cur() == '/' && p.peek(1) == '/':
		p.enter(KindJSCommentLine)
	case p.cur() == '/' && p.peek(1) == '*':
		p.enter(KindJSCommentBlock)
	case p.cur() == '-':
		p.emitError(loc.IllegalLineStart, "unexpected \"-\" at line start")
	case charset.IsNameChar(p.cur()) || p.cur() == '#' || p.cur() == '.':
		tf := p.enter(KindOpenTag)
		tf.Concise = true
	default:
		p.scanConciseTextLine()
	}
}

// scanConciseParsedTextLine scans one line of a PARSED_TEXT-body concise
// tag's content: the mandatory leading "-" is stripped and the remainder of
// the line is emitted verbatim as text (spec.md §4.4: "lines starting with -
// contribute to a multi-line text block whose indentation is stripped").
func (p *Parser) scanConciseParsedTextLine() {
	p.pos++ // leading '-'
	start := p.pos
	for !p.eof() && !p.isEOL() {
		p.pos++
	}
	if p.pos > start {
		p.reporter.EmitText(loc.Range{Start: start, End: p.pos})
	}
	if p.isEOL() {
		p.skipEOL()
	}
}

// closeDedentedConciseTags pops concise ancestor tags whose body the new
// line's indentation no longer nests inside, emitting the implied close
// events (spec.md §4.4's indentation-driven close rule).
func (p *Parser) closeDedentedConciseTags(indent string) {
	for len(p.conciseTagStack) > 0 {
		top := p.conciseTagStack[len(p.conciseTagStack)-1]
		if len(indent) > len(top.Indent) && strings.HasPrefix(indent, top.Indent) {
			return
		}
		p.conciseTagStack = p.conciseTagStack[:len(p.conciseTagStack)-1]
		if top.Ending == EndingTag {
			p.reporter.EmitCloseTag(handler.CloseTagEvent{
				Range:   loc.Range{Start: p.pos, End: p.pos},
				TagName: top.TagName,
			})
		}
	}
}

// scanConciseTextLine handles a concise-mode line that starts with none of
// the recognized markers: plain text, with placeholder recognition, up to
// EOL/EOF (spec.md §4.4 SUPPLEMENTED FEATURES).
func (p *Parser) scanConciseTextLine() {
	start := p.pos
	for !p.eof() && !p.isEOL() {
		if p.cur() == '$' && (p.peek(1) == '{' || (p.peek(1) == '!' && p.peek(2) == '{')) {
			if p.pos > start {
				p.reporter.EmitText(loc.Range{Start: start, End: p.pos})
			}
			if !p.scanPlaceholderAtDollar() {
				p.pos++
				continue
			}
			if p.reporter.HasError() {
				return
			}
			start = p.pos
			continue
		}
		p.pos++
	}
	if p.pos > start {
		p.reporter.EmitText(loc.Range{Start: start, End: p.pos})
	}
	if p.isEOL() {
		p.skipEOL()
	}
}
