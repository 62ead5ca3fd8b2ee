package parser

import (
	"github.com/seanpm2001/htmljs-parser/internal/charset"
	"github.com/seanpm2001/htmljs-parser/internal/handler"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
	"github.com/seanpm2001/htmljs-parser/internal/operator"
)

// stepAttribute implements the ATTRIBUTE state's UNKNOWN -> NAME ->
// ARGUMENT/VALUE/BLOCK stage machine (spec.md §3's Attr.stage enum, §4.3).
// Like the other leaf states, it resolves an entire attribute in one call:
// any value expression it needs is scanned synchronously via scanExpression
// before this function returns.
func (p *Parser) stepAttribute(f *Frame) {
	parent := f.Parent

	if p.lookAhead("...") {
		p.skip(3)
		f.AttrSpread = true
		value, ok := p.scanExpressionValue(parent)
		if !ok {
			return
		}
		f.AttrHasValue = true
		f.AttrValue = value
		p.reporter.EmitAttrSpread(handler.AttrSpreadEvent{
			Range: loc.Range{Start: f.Start, End: p.pos}, Value: value,
		})
		p.finishAttribute(f, parent)
		return
	}

	nameStart := p.pos
	for !p.eof() && charset.IsNameChar(p.cur()) {
		p.pos++
	}
	if p.pos > nameStart {
		f.AttrHasName = true
		f.AttrStage = handler.AttrStageName
		f.AttrName = loc.Range{Start: nameStart, End: p.pos}
		p.reporter.EmitAttrName(f.AttrName)
	}

	switch {
	case p.cur() == ':' && p.peek(1) == '=':
		f.AttrBound = true
		p.skip(2)
		if !p.readAttrValue(f, parent) {
			return
		}
	case p.cur() == '=':
		p.skip(1)
		if !p.readAttrValue(f, parent) {
			return
		}
	case p.cur() == '(':
		f.AttrHasArgs = true
		f.AttrArgsWasParen = true
		f.AttrArgs = p.scanBalancedParens()
		p.reporter.EmitAttrArgs(handler.AttrArgsEvent{
			Range: loc.Range{Start: f.Start, End: p.pos}, Value: f.AttrArgs,
		})
		afterArgs := p.pos
		p.consumeWhitespace()
		if p.cur() == '{' {
			f.AttrMethod = true
			f.AttrMethodParams = f.AttrArgs
			f.AttrMethodBody = p.scanBalancedBraces()
			p.reporter.EmitAttrMethod(handler.AttrMethodEvent{
				Range: loc.Range{Start: f.Start, End: p.pos}, Params: f.AttrMethodParams, Body: f.AttrMethodBody,
			})
		} else {
			p.pos = afterArgs
		}
		if p.cur() == '(' {
			p.emitError(loc.IllegalAttributeArgument, "an attribute may only have one argument list")
			return
		}
	case p.cur() == '{' && !f.AttrHasName:
		// A bare "{...}" with no name: treat as a default block-valued
		// attribute rather than a method (spec.md AttrStageBlock).
		value := p.scanBalancedBraces()
		f.AttrHasValue = true
		f.AttrValue = value
		p.reporter.EmitAttrValue(handler.AttrValueEvent{
			Range: loc.Range{Start: f.Start, End: p.pos}, Value: value,
		})
	case !f.AttrHasName:
		// Neither a name nor any of the above markers: this is a
		// default-valued attribute expressed as a bare expression (e.g.
		// an attribute token that is just `someExpr`).
		value, ok := p.scanExpressionValue(parent)
		if !ok {
			return
		}
		f.AttrHasValue = true
		f.AttrValue = value
		p.reporter.EmitAttrValue(handler.AttrValueEvent{
			Range: loc.Range{Start: f.Start, End: p.pos}, Value: value,
		})
	}

	p.finishAttribute(f, parent)
}

func (p *Parser) readAttrValue(f *Frame, parent *Frame) bool {
	f.AttrStage = handler.AttrStageValue
	value, ok := p.scanExpressionValue(parent)
	if !ok {
		return false
	}
	if value.Empty() {
		p.emitErrorRange(loc.IllegalAttributeValue, "attribute value must not be empty", loc.Range{Start: f.Start, End: p.pos})
		return false
	}
	f.AttrHasValue = true
	f.AttrValue = value
	p.reporter.EmitAttrValue(handler.AttrValueEvent{
		Range: loc.Range{Start: f.Start, End: p.pos}, Value: value, Bound: f.AttrBound,
	})
	return true
}

// scanExpressionValue scans an attribute value expression, terminated by
// whitespace (the next attribute begins) or by the enclosing open tag's own
// terminator set (spec.md §4.3: an attribute value never swallows the `>`
// that closes its tag).
func (p *Parser) scanExpressionValue(parent *Frame) (loc.Range, bool) {
	opts := exprOptions{
		terminatedByWhitespace: true,
		purpose:                "attribute value",
	}
	if parent != nil && parent.Concise {
		opts.terminator = []byte{';', ','}
		opts.terminatedByEOL = true
		opts.opMode = operator.Concise
	} else {
		opts.terminator = []byte{'>', ','}
		opts.terminatorSeqs = [][]byte{[]byte("/>")}
		opts.opMode = operator.Verbose
	}
	return p.scanExpression(opts)
}

// finishAttribute rolls the attribute's parsed pieces into a handler.Attr
// summary, appends it to the enclosing OPEN-TAG frame (spec.md §4.1
// ordering: attribute events precede the enclosing onOpenTag), and pops the
// ATTRIBUTE frame so the driver resumes OPEN-TAG's own terminator check.
func (p *Parser) finishAttribute(f *Frame, parent *Frame) {
	if parent != nil {
		parent.Attributes = append(parent.Attributes, handler.Attr{
			Range:      loc.Range{Start: f.Start, End: p.pos},
			Name:       f.AttrName,
			HasName:    f.AttrHasName,
			Default:    f.AttrDefault,
			Spread:     f.AttrSpread,
			Bound:      f.AttrBound,
			Method:     f.AttrMethod,
			HasValue:   f.AttrHasValue,
			Value:      f.AttrValue,
			HasArgs:    f.AttrHasArgs,
			Args:       f.AttrArgs,
			MethodBody: f.AttrMethodBody,
		})
	}
	f.End = p.pos
	p.stack.pop()
}
