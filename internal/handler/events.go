package handler

import "github.com/seanpm2001/htmljs-parser/internal/loc"

// ParseOptions is the argument to SetParseOptions (spec.md §6). State
// selects how the remainder of an open tag's body is lexed.
type ParseOptions struct {
	// State is "parsed-text", "static-text", or "" for the HTML default.
	State string
}

// AttrStage mirrors spec.md §3's Attr.stage enum, surfaced to handlers so a
// consumer building an AST doesn't need to re-derive it from which callback
// fired.
type AttrStage int

const (
	AttrStageUnknown AttrStage = iota
	AttrStageName
	AttrStageValue
	AttrStageArgument
	AttrStageBlock
)

// Attr summarizes one parsed attribute for the OpenTagEvent.Attributes list.
// Individual onAttr* callbacks fire as each piece is recognized; this is the
// rolled-up view the enclosing onOpenTag receives afterward (spec.md §4.1
// ordering: "attribute events precede the enclosing open-tag event").
type Attr struct {
	Range      loc.Range
	Name       loc.Range
	HasName    bool
	Default    bool
	Spread     bool
	Bound      bool
	Method     bool
	HasValue   bool
	Value      loc.Range
	HasArgs    bool
	Args       loc.Range
	MethodBody loc.Range
}

type PlaceholderEvent struct {
	Range  loc.Range
	Value  loc.Range
	Escape bool
}

type OpenTagNameEvent struct {
	Range               loc.Range
	TagName             loc.Range
	HasShorthandId      bool
	ShorthandId         loc.Range
	ShorthandClassNames []loc.Range
	Concise             bool
	SetParseOptions     func(ParseOptions)
}

type OpenTagEvent struct {
	Range               loc.Range
	TagName             loc.Range
	HasVar              bool
	Var                 loc.Range
	HasArgument         bool
	Argument            loc.Range
	HasParams           bool
	Params              loc.Range
	Attributes          []Attr
	Concise             bool
	OpenTagOnly         bool
	SelfClosed          bool
	HasShorthandId      bool
	ShorthandId         loc.Range
	ShorthandClassNames []loc.Range
}

type CloseTagEvent struct {
	Range   loc.Range
	TagName loc.Range
}

type AttrArgsEvent struct {
	Range loc.Range
	Value loc.Range
}

type AttrValueEvent struct {
	Range loc.Range
	Value loc.Range
	Bound bool
}

type AttrSpreadEvent struct {
	Range loc.Range
	Value loc.Range
}

type AttrMethodEvent struct {
	Range  loc.Range
	Params loc.Range
	Body   loc.Range
}

type ValueEvent struct {
	Range loc.Range
	Value loc.Range
}

type ScriptletEvent struct {
	Range loc.Range
	Value loc.Range
	Tag   bool
	Block bool
}

type ErrorEvent struct {
	Range loc.Range
	Code  loc.ErrorCode
	Message string
}
