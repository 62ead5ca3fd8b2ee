package parser

import (
	"github.com/seanpm2001/htmljs-parser/internal/charset"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
	"github.com/seanpm2001/htmljs-parser/internal/operator"
)

// exprOptions configures one scanExpression call: the terminator rules an
// EXPRESSION frame should stop at, grounded in spec.md §4.2's "terminator
// set" and "operator continuation" rules.
type exprOptions struct {
	terminator             []byte
	terminatorSeqs         [][]byte
	terminatedByWhitespace bool
	terminatedByEOL        bool
	skipOperators          bool
	opMode                 operator.Mode
	purpose                string
}

// scanExpression enters a KindExpression frame with the given options and
// drives it (and any nested STRING/TEMPLATE-STRING/REGULAR-EXPRESSION/
// comment children it pushes) to completion, returning the value range
// (exclusive of the terminator) once it exits. ok is false if an error was
// reported or EOF interrupted the scan before a terminator was found —
// callers should simply return in that case and let the caller's own
// caller (eventually Parse's handleEOF) unwind the stack.
func (p *Parser) scanExpression(opts exprOptions) (loc.Range, bool) {
	base := p.stack.depth()
	f := p.enter(KindExpression)
	f.Terminator = opts.terminator
	f.TerminatorSeqs = opts.terminatorSeqs
	f.TerminatedByWhitespace = opts.terminatedByWhitespace
	f.TerminatedByEOL = opts.terminatedByEOL
	f.SkipOperators = opts.skipOperators
	f.OpMode = opts.opMode
	f.ExprPurpose = opts.purpose

	p.runNested(base)

	if p.reporter.HasError() || p.eof() && p.stack.depth() > base {
		return loc.Range{}, false
	}
	return loc.Range{Start: f.Start, End: f.valueEnd}, true
}

// stepExpression scans forward from the current position until it must
// push a child lexer (string, template string, regex, comment) or it finds
// its terminator at group depth 0, exiting in the latter case (spec.md
// §4.2: EXPRESSION tracks a bracket depth and only honors its terminator
// set once that depth returns to zero).
func (p *Parser) stepExpression(f *Frame) {
	for !p.eof() {
		depth0 := len(f.GroupStack) == 0

		if depth0 {
			for _, seq := range f.TerminatorSeqs {
				if p.lookAhead(string(seq)) {
					f.valueEnd = p.pos
					p.exit()
					return
				}
			}
			if containsByte(f.Terminator, p.cur()) {
				f.valueEnd = p.pos
				p.exit()
				return
			}
			if f.TerminatedByEOL && p.isEOL() {
				f.valueEnd = p.pos
				p.exit()
				return
			}
		}

		c := p.cur()
		switch c {
		case '(', '{', '[':
			f.GroupStack = append(f.GroupStack, c)
			p.pos++
		case ')', '}', ']':
			if len(f.GroupStack) > 0 {
				opener := f.GroupStack[len(f.GroupStack)-1]
				f.GroupStack = f.GroupStack[:len(f.GroupStack)-1]
				if matchingCloser(opener) != c {
					p.emitError(loc.InvalidExpression, "mismatched bracket")
					return
				}
				p.pos++
			} else {
				// Unmatched closer at depth 0: treat as an implicit
				// terminator rather than an error, since this almost
				// always means "end of the enclosing construct" (e.g. an
				// attribute value butting against a tag's own closing
				// paren).
				f.valueEnd = p.pos
				p.exit()
				return
			}
		case '"', '\'':
			child := p.enter(KindString)
			child.QuoteChar = c
			return
		case '`':
			p.enter(KindTemplateString)
			return
		case '/':
			switch {
			case p.peek(1) == '/':
				p.enter(KindJSCommentLine)
				return
			case p.peek(1) == '*':
				p.enter(KindJSCommentBlock)
				return
			case !f.SkipOperators && charset.CanBeFollowedByDivision(p.lastSignificantByte()):
				p.pos++ // division operator
			default:
				p.enter(KindRegularExpression)
				return
			}
		case ' ', '\t', '\f', '\v':
			if depth0 && !f.SkipOperators {
				if p.handleOperatorWhitespace(f) {
					continue
				}
				if f.TerminatedByWhitespace {
					f.valueEnd = p.pos
					p.exit()
					return
				}
			}
			p.pos++
		case '\r', '\n':
			if depth0 && !f.SkipOperators {
				if p.handleOperatorWhitespace(f) {
					continue
				}
			}
			if f.TerminatedByEOL {
				f.valueEnd = p.pos
				p.exit()
				return
			}
			p.pos++
		default:
			p.pos++
		}
	}
}

// handleOperatorWhitespace applies spec.md §4.2's operator-continuation
// rule at the current (known-whitespace) position. It reports whether the
// expression continues across the whitespace, having already advanced pos
// appropriately; the caller should re-loop rather than fall through to its
// own default whitespace handling when this returns true.
func (p *Parser) handleOperatorWhitespace(f *Frame) bool {
	cont := operator.Test(operator.For(f.OpMode), p.buf, p.pos)
	if !cont.Matched {
		return false
	}
	if cont.LookbehindOnly {
		p.consumeWhitespace()
		if p.isEOL() {
			p.skipEOL()
		}
		return true
	}
	p.skip(cont.Advance)
	return true
}

// lastSignificantByte returns the byte immediately before the current
// position, used by the division-vs-regex heuristic (spec.md §4.2:
// "division, never the start of a regular expression or comment, when the
// previous significant character ...").
func (p *Parser) lastSignificantByte() byte {
	if p.pos == 0 {
		return 0
	}
	return p.buf[p.pos-1]
}

// scanBalancedParens scans a "(...)" group starting at the current
// position (which must be '('), skipping over string/template literals so
// parens inside them don't unbalance the count. It is deliberately not
// JS-aware beyond that — used for OPEN-TAG's "(argument)" suffix and
// ATTRIBUTE's ARGUMENT stage, both of which spec.md treats as opaque JS
// text rather than something the tokenizer re-lexes.
func (p *Parser) scanBalancedParens() loc.Range {
	return p.scanBalancedGroup('(', ')')
}

// scanBalancedBraces is scanBalancedParens's "{...}" counterpart, used for
// ATTRIBUTE's BLOCK/METHOD stage body.
func (p *Parser) scanBalancedBraces() loc.Range {
	return p.scanBalancedGroup('{', '}')
}

func (p *Parser) scanBalancedGroup(open, close byte) loc.Range {
	start := p.pos + 1
	p.pos++
	depth := 1
	for !p.eof() && depth > 0 {
		switch p.cur() {
		case open:
			depth++
		case close:
			depth--
		case '"', '\'':
			p.skipSimpleString(p.cur())
			continue
		case '`':
			p.skipTemplateLiteralRaw()
			continue
		}
		if depth > 0 {
			p.pos++
		}
	}
	end := p.pos
	if p.cur() == close {
		p.pos++
	}
	return loc.Range{Start: start, End: end}
}

// matchingCloser returns the closing byte that balances the given opening
// bracket byte, used to reject mismatched pairs like "([)" (spec.md §4.2).
func matchingCloser(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '{':
		return '}'
	case '[':
		return ']'
	}
	return 0
}

func containsByte(set []byte, b byte) bool {
	for _, s := range set {
		if s == b {
			return true
		}
	}
	return false
}
