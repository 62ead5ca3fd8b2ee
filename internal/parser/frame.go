package parser

import (
	"github.com/seanpm2001/htmljs-parser/internal/handler"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
	"github.com/seanpm2001/htmljs-parser/internal/operator"
)

// Kind discriminates the state a Frame represents. spec.md §2 lists these
// as the "principal states"; a handful never get a frame of their own, since
// they never need to be re-entered independently: TAG-NAME is folded into
// OPEN-TAG's own bookkeeping, and close tags are handled by the HTML-CONTENT
// scanners (scanVerboseCloseTag, closeDedentedConciseTags).
type Kind int

const (
	KindHTMLContent Kind = iota
	KindOpenTag
	KindAttribute
	KindExpression
	KindString
	KindTemplateString
	KindRegularExpression
	KindJSCommentLine
	KindJSCommentBlock
	KindPlaceholder
	KindCDATA
	KindDeclaration
	KindDoctype
	KindHTMLComment
	KindScriptlet
	KindInlineScript
	KindDelimitedHTMLBlock
)

func (k Kind) String() string {
	switch k {
	case KindHTMLContent:
		return "html content"
	case KindOpenTag:
		return "open tag"
	case KindAttribute:
		return "attribute"
	case KindExpression:
		return "expression"
	case KindString:
		return "string"
	case KindTemplateString:
		return "template string"
	case KindRegularExpression:
		return "regular expression"
	case KindJSCommentLine:
		return "line comment"
	case KindJSCommentBlock:
		return "block comment"
	case KindPlaceholder:
		return "placeholder"
	case KindCDATA:
		return "CDATA section"
	case KindDeclaration:
		return "declaration"
	case KindDoctype:
		return "doctype"
	case KindHTMLComment:
		return "comment"
	case KindScriptlet:
		return "scriptlet"
	case KindInlineScript:
		return "inline script"
	case KindDelimitedHTMLBlock:
		return "delimited text block"
	}
	return "unknown"
}

// BodyMode is spec.md §3's OpenTag.bodyMode: how the tag's children are
// lexed.
type BodyMode int

const (
	BodyModeHTML BodyMode = iota
	BodyModeParsedText
	BodyModeStaticText
	BodyModeCDATA
)

// Ending is spec.md §3's OpenTag.ending.
type Ending int

const (
	EndingTag Ending = iota
	EndingOpenOnly
	EndingSelfClosed
)

// Frame is one entry on the parser's state stack (spec.md §3 StateFrame).
// Every Kind shares the header fields; the rest are variant-specific
// payload, inlined rather than behind an interface so the stack never
// allocates state definitions separately from their frames (spec.md §9).
type Frame struct {
	Kind   Kind
	Parent *Frame
	Start  int
	End    int

	// OPEN-TAG payload.
	TagName             loc.Range
	Attributes          []handler.Attr
	HasShorthandId      bool
	ShorthandId         loc.Range
	ShorthandClassNames []loc.Range
	HasVar              bool
	Var                 loc.Range
	HasArgument         bool
	Argument            loc.Range
	HasParams           bool
	Params              loc.Range
	Indent              string
	NestedIndent        *string // canonical indent recorded from this tag's first concise child (spec.md §4.4 step 5)
	BodyMode            BodyMode
	Ending              Ending
	Concise             bool
	TagNameDone         bool // tag-name/shorthand phase finished, now in attribute loop
	Opened              bool // onOpenTag already emitted

	// ATTRIBUTE payload.
	AttrStage        handler.AttrStage
	AttrName         loc.Range
	AttrHasName      bool
	AttrDefault      bool
	AttrSpread       bool
	AttrBound        bool
	AttrMethod       bool
	AttrHasArgs      bool
	AttrArgs         loc.Range
	AttrHasValue     bool
	AttrValue        loc.Range
	AttrMethodParams loc.Range
	AttrMethodBody   loc.Range
	AttrArgsWasParen bool

	// EXPRESSION payload.
	GroupStack             []byte
	Terminator             []byte   // single-byte terminators, checked only at group depth 0
	TerminatorSeqs         [][]byte // multi-byte literal terminators
	TerminatedByWhitespace bool
	TerminatedByEOL        bool
	SkipOperators          bool
	ExprPurpose            string        // human description used in EOF errors
	OpMode                 operator.Mode // which surface's continuation rule applies
	valueEnd               int           // position of the terminator, set by stepExpression on exit

	// STRING / TEMPLATE-STRING payload.
	QuoteChar byte

	// REGULAR-EXPRESSION payload.
	InCharClass bool

	// PLACEHOLDER payload.
	Escape bool

	// SCRIPTLET payload.
	ScriptletTag   bool
	ScriptletBlock bool
}

// stack is the parser's pushdown automaton storage (spec.md §3 invariant
// 1: "never empty while input remains").
type stack struct {
	frames []*Frame
}

func (s *stack) top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

func (s *stack) push(f *Frame) {
	f.Parent = s.top()
	s.frames = append(s.frames, f)
}

func (s *stack) pop() *Frame {
	n := len(s.frames)
	if n == 0 {
		return nil
	}
	f := s.frames[n-1]
	s.frames = s.frames[:n-1]
	if parent := s.top(); parent != nil && parent.End < f.End {
		parent.End = f.End
	}
	return f
}

func (s *stack) depth() int {
	return len(s.frames)
}
