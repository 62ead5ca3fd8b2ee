// Package htmljsparser is a streaming, zero-copy tokenizer for an
// HTML-superset templating syntax with embedded JS-family expressions. It
// exposes a single entry point, Parse, which walks a source buffer exactly
// once, invoking the supplied Handlers in strict source order and
// reporting at most one error before calling OnFinish.
//
// Every byte range handlers receive is a half-open [Start, End) offset
// into the original buffer passed to Parse — the tokenizer never
// allocates a substring of the input for anything a caller observes.
package htmljsparser

import (
	"github.com/seanpm2001/htmljs-parser/internal/handler"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
	"github.com/seanpm2001/htmljs-parser/internal/parser"
)

// Re-exported so callers never need to import the internal packages
// directly.
type (
	Range             = loc.Range
	ValueRange        = loc.ValueRange
	ErrorCode         = loc.ErrorCode
	ErrorWithRange    = loc.ErrorWithRange
	Handlers          = handler.Handlers
	ParseOptions      = handler.ParseOptions
	AttrStage         = handler.AttrStage
	Attr              = handler.Attr
	PlaceholderEvent  = handler.PlaceholderEvent
	OpenTagNameEvent  = handler.OpenTagNameEvent
	OpenTagEvent      = handler.OpenTagEvent
	CloseTagEvent     = handler.CloseTagEvent
	AttrArgsEvent     = handler.AttrArgsEvent
	AttrValueEvent    = handler.AttrValueEvent
	AttrSpreadEvent   = handler.AttrSpreadEvent
	AttrMethodEvent   = handler.AttrMethodEvent
	ValueEvent        = handler.ValueEvent
	ScriptletEvent    = handler.ScriptletEvent
	ErrorEvent        = handler.ErrorEvent
)

const (
	AttrStageUnknown  = handler.AttrStageUnknown
	AttrStageName     = handler.AttrStageName
	AttrStageValue    = handler.AttrStageValue
	AttrStageArgument = handler.AttrStageArgument
	AttrStageBlock    = handler.AttrStageBlock
)

const (
	MalformedOpenTag         = loc.MalformedOpenTag
	InvalidExpression        = loc.InvalidExpression
	IllegalAttributeArgument = loc.IllegalAttributeArgument
	IllegalAttributeValue    = loc.IllegalAttributeValue
	BadIndentation           = loc.BadIndentation
	InvalidBody              = loc.InvalidBody
	IllegalLineStart         = loc.IllegalLineStart
	InvalidCharacter         = loc.InvalidCharacter
	MalformedPlaceholder     = loc.MalformedPlaceholder
	MalformedCDATA           = loc.MalformedCDATA
	MalformedComment         = loc.MalformedComment
	MalformedDocumentType    = loc.MalformedDocumentType
	MalformedDeclaration     = loc.MalformedDeclaration
	MalformedScriptlet       = loc.MalformedScriptlet
)

// Option configures a Parse call.
type Option = parser.Option

// WithConcise selects the root content state: concise (indentation
// sensitive) syntax when true, the default, or verbose (angle-bracket)
// syntax when false.
func WithConcise(concise bool) Option {
	return parser.WithConcise(concise)
}

// Parse tokenizes source, invoking the handlers in h in strict source
// order. It returns once the input is exhausted or a single error has
// been reported; either way OnFinish, if set, fires exactly once at the
// end.
func Parse(source []byte, h Handlers, opts ...Option) {
	parser.Parse(source, h, opts...)
}

// AsRangedError recovers an *ErrorWithRange from a plain error value via
// errors.As. The OnError event's Code/Message/Range carry the same fields.
func AsRangedError(err error) (*ErrorWithRange, bool) {
	return handler.AsRangedError(err)
}
