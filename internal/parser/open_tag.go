package parser

import (
	"github.com/seanpm2001/htmljs-parser/internal/charset"
	"github.com/seanpm2001/htmljs-parser/internal/handler"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
)

// stepOpenTag implements OPEN-TAG/TAG-NAME (spec.md §3 OpenTag frame, §4.3's
// attribute-loop driver). It is invoked once per "decision point": the
// first call scans the tag name and any shorthand id/class suffixes: every
// later call (after an ATTRIBUTE child has exited) decides whether another
// attribute starts or the tag is finished.
func (p *Parser) stepOpenTag(f *Frame) {
	if !f.TagNameDone {
		p.scanTagNameAndShorthand(f)
		if p.reporter.HasError() {
			return
		}
		f.TagNameDone = true
		p.emitOpenTagName(f)
		if p.reporter.HasError() {
			return
		}
	}

	p.consumeWhitespace()
	if p.cur() == ',' {
		// A previous attribute's value stopped at a "," separator (spec.md
		// §4.3's value terminator set); consume it here before deciding
		// whether another attribute follows.
		p.pos++
		p.consumeWhitespace()
	}
	if p.eof() {
		return // handleEOF reports MALFORMED_OPEN_TAG for an unopened frame
	}

	if f.Concise {
		p.stepOpenTagConciseTerminators(f)
	} else {
		p.stepOpenTagVerboseTerminators(f)
	}
}

func (p *Parser) scanTagNameAndShorthand(f *Frame) {
	if p.cur() == 0 {
		p.emitError(loc.InvalidCharacter, "NUL byte is not allowed in a tag name")
		return
	}
	start := p.pos
	for !p.eof() && charset.IsNameChar(p.cur()) {
		p.pos++
	}
	f.TagName = loc.Range{Start: start, End: p.pos}
	if f.TagName.Empty() && !f.Concise {
		p.emitError(loc.MalformedOpenTag, "expected a tag name")
		return
	}

	for {
		switch p.cur() {
		case '#':
			p.pos++
			idStart := p.pos
			for !p.eof() && charset.IsNameChar(p.cur()) {
				p.pos++
			}
			f.HasShorthandId = true
			f.ShorthandId = loc.Range{Start: idStart, End: p.pos}
		case '.':
			p.pos++
			clsStart := p.pos
			for !p.eof() && charset.IsNameChar(p.cur()) {
				p.pos++
			}
			f.ShorthandClassNames = append(f.ShorthandClassNames, loc.Range{Start: clsStart, End: p.pos})
		default:
			if p.cur() == '(' && !f.HasArgument {
				f.HasArgument = true
				f.Argument = p.scanBalancedParens()
				continue
			}
			return
		}
	}
}

func (p *Parser) emitOpenTagName(f *Frame) {
	p.reporter.EmitOpenTagName(handler.OpenTagNameEvent{
		Range:               loc.Range{Start: f.Start, End: p.pos},
		TagName:             f.TagName,
		HasShorthandId:      f.HasShorthandId,
		ShorthandId:         f.ShorthandId,
		ShorthandClassNames: f.ShorthandClassNames,
		Concise:             f.Concise,
		SetParseOptions: func(opts handler.ParseOptions) {
			switch opts.State {
			case "parsed-text":
				f.BodyMode = BodyModeParsedText
			case "static-text":
				f.BodyMode = BodyModeStaticText
			}
		},
	})
	f.BodyMode = p.defaultBodyModeOr(f)
}

// defaultBodyModeOr resolves bodyMode once, after onOpenTagName has had a
// chance to override it via setParseOptions, falling back to the built-in
// raw-text tag table (spec.md SUPPLEMENTED FEATURES).
func (p *Parser) defaultBodyModeOr(f *Frame) BodyMode {
	if f.BodyMode != BodyModeHTML {
		return f.BodyMode
	}
	return defaultBodyMode(p.tagNameBytesOf(f))
}

func (p *Parser) stepOpenTagVerboseTerminators(f *Frame) {
	switch {
	case p.cur() == '/' && p.peek(1) == '>':
		p.skip(2)
		f.Ending = EndingSelfClosed
		p.finishOpenTag(f)
	case p.cur() == '>':
		p.skip(1)
		if isVoidTag(p.tagNameBytesOf(f)) {
			f.Ending = EndingOpenOnly
		} else {
			f.Ending = EndingTag
		}
		p.finishOpenTag(f)
	case p.eof():
		return
	default:
		p.startAttribute(f)
	}
}

func (p *Parser) stepOpenTagConciseTerminators(f *Frame) {
	switch {
	case p.cur() == ';':
		p.skip(1)
		f.Ending = EndingOpenOnly
		p.finishOpenTag(f)
	case p.isEOL() || p.eof():
		f.Ending = EndingTag
		p.finishOpenTag(f)
	default:
		p.startAttribute(f)
	}
}

func (p *Parser) tagNameBytesOf(f *Frame) []byte {
	return p.buf[f.TagName.Start:f.TagName.End]
}

func (p *Parser) startAttribute(f *Frame) {
	af := p.enter(KindAttribute)
	af.AttrDefault = len(f.Attributes) == 0
}

// finishOpenTag emits onOpenTag and either pushes a body content frame
// (HTML/PARSED_TEXT/STATIC_TEXT/CDATA) or pops the tag immediately
// (open-only/self-closed, spec.md §3 Ending enum).
func (p *Parser) finishOpenTag(f *Frame) {
	f.Opened = true
	p.reporter.EmitOpenTag(handler.OpenTagEvent{
		Range:               loc.Range{Start: f.Start, End: p.pos},
		TagName:             f.TagName,
		HasVar:              f.HasVar,
		Var:                 f.Var,
		HasArgument:         f.HasArgument,
		Argument:            f.Argument,
		HasParams:           f.HasParams,
		Params:              f.Params,
		Attributes:          f.Attributes,
		Concise:             f.Concise,
		OpenTagOnly:         f.Ending == EndingOpenOnly,
		SelfClosed:          f.Ending == EndingSelfClosed,
		HasShorthandId:      f.HasShorthandId,
		ShorthandId:         f.ShorthandId,
		ShorthandClassNames: f.ShorthandClassNames,
	})

	if f.Ending != EndingTag {
		p.stack.pop()
		if f.Concise {
			// Still recorded on the concise ancestor stack, even though it
			// takes no body, so a wrongly-indented child line can be
			// recognized as illegal rather than silently attaching to some
			// other ancestor (spec.md §4.4 step 3).
			f.Indent = p.currentLineIndent
			p.conciseTagStack = append(p.conciseTagStack, f)
			if p.isEOL() {
				p.skipEOL()
			}
		}
		return
	}

	if f.Concise {
		p.pushConciseTag(f)
		return
	}

	content := p.enter(KindHTMLContent)
	content.Concise = false
	content.BodyMode = f.BodyMode
	content.TagName = f.TagName
}

// pushConciseTag records f on the concise ancestor stack (spec.md §4.4) and
// scans the remainder of its own source line as inline body content, if
// any (spec.md S5: "span hello" gives span an inline text child).
func (p *Parser) pushConciseTag(f *Frame) {
	p.stack.pop() // the OPEN-TAG frame's own lexical scanning is finished
	f.Indent = p.currentLineIndent
	p.conciseTagStack = append(p.conciseTagStack, f)

	p.consumeWhitespace()
	if p.isEOL() || p.eof() {
		if p.isEOL() {
			p.skipEOL()
		}
		return
	}
	if f.BodyMode == BodyModeHTML {
		p.scanInlineConciseText(f, true)
	} else {
		p.scanInlineConciseText(f, false)
	}
	if p.isEOL() {
		p.skipEOL()
	}
}

// scanInlineConciseText scans same-line trailing text (and, when
// withPlaceholders is true, ${...}/$!{...} placeholders) up to EOL/EOF.
func (p *Parser) scanInlineConciseText(f *Frame, withPlaceholders bool) {
	start := p.pos
	for !p.eof() && !p.isEOL() {
		if withPlaceholders && p.cur() == '$' && (p.peek(1) == '{' || (p.peek(1) == '!' && p.peek(2) == '{')) {
			if p.pos > start {
				p.reporter.EmitText(loc.Range{Start: start, End: p.pos})
			}
			if p.scanPlaceholderAtDollar() {
				if p.reporter.HasError() {
					return
				}
				start = p.pos
				continue
			}
		}
		p.pos++
	}
	if p.pos > start {
		p.reporter.EmitText(loc.Range{Start: start, End: p.pos})
	}
}
