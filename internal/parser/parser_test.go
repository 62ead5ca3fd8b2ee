package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seanpm2001/htmljs-parser/internal/handler"
	"github.com/seanpm2001/htmljs-parser/internal/loc"
	"github.com/seanpm2001/htmljs-parser/internal/test_utils"
)

// recorder captures every callback Parse can invoke, trimmed down to what
// each test actually inspects.
type recorder struct {
	texts     []string
	openTags  []string
	closeTags []string
	attrs     []handler.Attr
	errors    []handler.ErrorEvent
	finished  bool
}

func sub(buf []byte, r loc.Range) string {
	return string(buf[r.Start:r.End])
}

func handlersFor(buf []byte, rec *recorder) handler.Handlers {
	return handler.Handlers{
		OnText: func(r loc.Range) { rec.texts = append(rec.texts, sub(buf, r)) },
		OnOpenTag: func(ev handler.OpenTagEvent) {
			rec.openTags = append(rec.openTags, sub(buf, ev.TagName))
			rec.attrs = append(rec.attrs, ev.Attributes...)
		},
		OnCloseTag: func(ev handler.CloseTagEvent) {
			rec.closeTags = append(rec.closeTags, sub(buf, ev.TagName))
		},
		OnError:  func(ev handler.ErrorEvent) { rec.errors = append(rec.errors, ev) },
		OnFinish: func() { rec.finished = true },
	}
}

func TestVerboseTagWithTextChild(t *testing.T) {
	buf := []byte("<div>hello</div>")
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Equal(t, []string{"div"}, rec.openTags)
	assert.Equal(t, []string{"hello"}, rec.texts)
	assert.Equal(t, []string{"div"}, rec.closeTags)
	assert.Empty(t, rec.errors)
	assert.True(t, rec.finished)
}

func TestVoidTagNeedsNoCloseTag(t *testing.T) {
	buf := []byte("<img src=\"x.png\">after")
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec), WithConcise(false))

	assert.Equal(t, []string{"img"}, rec.openTags)
	assert.Empty(t, rec.closeTags)
	assert.Equal(t, []string{"after"}, rec.texts)
	assert.Empty(t, rec.errors)
}

func TestSelfClosingTag(t *testing.T) {
	buf := []byte("<custom-el/>")
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Equal(t, []string{"custom-el"}, rec.openTags)
	assert.Empty(t, rec.closeTags)
	assert.Empty(t, rec.errors)
}

func TestAttributeWithValue(t *testing.T) {
	buf := []byte(`<div class="box" data-count=1></div>`)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Len(t, rec.attrs, 2)
	assert.Equal(t, "class", sub(buf, rec.attrs[0].Name))
	assert.True(t, rec.attrs[0].HasValue)
	assert.Equal(t, `"box"`, sub(buf, rec.attrs[0].Value))
	assert.Equal(t, "data-count", sub(buf, rec.attrs[1].Name))
	assert.Equal(t, "1", sub(buf, rec.attrs[1].Value))
	assert.Empty(t, rec.errors)
}

func TestNestedVerboseTags(t *testing.T) {
	buf := []byte("<ul><li>one</li><li>two</li></ul>")
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Equal(t, []string{"ul", "li", "li"}, rec.openTags)
	assert.Equal(t, []string{"one", "two"}, rec.texts)
	assert.Equal(t, []string{"li", "li", "ul"}, rec.closeTags)
	assert.Empty(t, rec.errors)
}

func TestPlaceholderInText(t *testing.T) {
	var placeholders []string
	buf := []byte("<div>hi ${name}!</div>")
	rec := &recorder{}
	h := handlersFor(buf, rec)
	h.OnPlaceholder = func(ev handler.PlaceholderEvent) {
		placeholders = append(placeholders, sub(buf, ev.Value))
	}
	Parse(buf, h)

	assert.Equal(t, []string{"name"}, placeholders)
	assert.Equal(t, []string{"hi ", "!"}, rec.texts)
	assert.Empty(t, rec.errors)
}

func TestConciseNestedTagsByIndentation(t *testing.T) {
	buf := []byte("div\n  span\n    --text here\n  p\n")
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec), WithConcise(true))

	assert.Equal(t, []string{"div", "span", "p"}, rec.openTags)
	assert.Equal(t, []string{"text here"}, rec.texts)
	assert.Equal(t, []string{"span", "p", "div"}, rec.closeTags)
	assert.Empty(t, rec.errors)
}

func TestConciseBooleanAttribute(t *testing.T) {
	buf := []byte("div.box hidden\n")
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec), WithConcise(true))

	assert.Equal(t, []string{"div"}, rec.openTags)
	assert.Len(t, rec.attrs, 1)
	assert.Equal(t, "hidden", sub(buf, rec.attrs[0].Name))
	assert.False(t, rec.attrs[0].HasValue)
	assert.Equal(t, []string{"div"}, rec.closeTags)
	assert.Empty(t, rec.errors)
}

func TestUnterminatedOpenTagReportsMalformedOpenTag(t *testing.T) {
	buf := []byte(`<div attr`)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Len(t, rec.errors, 1)
	assert.Equal(t, loc.MalformedOpenTag, rec.errors[0].Code)
	assert.True(t, rec.finished)
}

func TestUnterminatedStringReportsInvalidExpression(t *testing.T) {
	buf := []byte(`<div data-x="abc</div>`)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Len(t, rec.errors, 1)
	assert.Equal(t, loc.InvalidExpression, rec.errors[0].Code)
}

func TestErrorLatchesOnlyFirstError(t *testing.T) {
	buf := []byte(`<div class="unterminated`)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Len(t, rec.errors, 1)
}

func TestSpreadAttribute(t *testing.T) {
	var spreads []string
	buf := []byte(`<div ...{a: 1}></div>`)
	rec := &recorder{}
	h := handlersFor(buf, rec)
	h.OnAttrSpread = func(ev handler.AttrSpreadEvent) {
		spreads = append(spreads, sub(buf, ev.Value))
	}
	Parse(buf, h)

	assert.Equal(t, []string{"{a: 1}"}, spreads)
	assert.Empty(t, rec.errors)
}

func TestAttrMethodShorthand(t *testing.T) {
	var methods []handler.AttrMethodEvent
	buf := []byte(`<a on-click() { doThing() }></a>`)
	rec := &recorder{}
	h := handlersFor(buf, rec)
	h.OnAttrMethod = func(ev handler.AttrMethodEvent) { methods = append(methods, ev) }
	Parse(buf, h)

	assert.Empty(t, rec.errors)
	assert.Len(t, methods, 1)
	assert.Equal(t, "", sub(buf, methods[0].Params))
	assert.Equal(t, " doThing() ", sub(buf, methods[0].Body))
	assert.Len(t, rec.attrs, 1)
	assert.Equal(t, "on-click", sub(buf, rec.attrs[0].Name))
	assert.True(t, rec.attrs[0].Method)
}

func TestSecondAttributeArgumentIsIllegal(t *testing.T) {
	buf := []byte(`<a b()()></a>`)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Len(t, rec.errors, 1)
	assert.Equal(t, loc.IllegalAttributeArgument, rec.errors[0].Code)
}

func TestEmptyAttributeValueIsIllegal(t *testing.T) {
	buf := []byte(`<a b=></a>`)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Len(t, rec.errors, 1)
	assert.Equal(t, loc.IllegalAttributeValue, rec.errors[0].Code)
}

func TestCommaTerminatesAttributeValue(t *testing.T) {
	buf := []byte(`<a b=1,c=2></a>`)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Empty(t, rec.errors)
	assert.Len(t, rec.attrs, 2)
	assert.Equal(t, "1", sub(buf, rec.attrs[0].Value))
	assert.Equal(t, "c", sub(buf, rec.attrs[1].Name))
	assert.Equal(t, "2", sub(buf, rec.attrs[1].Value))
}

func TestMismatchedBracketIsInvalidExpression(t *testing.T) {
	buf := []byte(`<a b=([)></a>`)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec))

	assert.Len(t, rec.errors, 1)
	assert.Equal(t, loc.InvalidExpression, rec.errors[0].Code)
}

func TestConciseSiblingIndentationMustMatchExactly(t *testing.T) {
	buf := []byte("div\n  span\n    --text\n   p\n")
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec), WithConcise(true))

	assert.Len(t, rec.errors, 1)
	assert.Equal(t, loc.BadIndentation, rec.errors[0].Code)
}

func TestConciseOpenOnlyTagRejectsNestedChild(t *testing.T) {
	buf := []byte("img;\n  span\n")
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec), WithConcise(true))

	assert.Len(t, rec.errors, 1)
	assert.Equal(t, loc.InvalidBody, rec.errors[0].Code)
}

func TestHTMLComment(t *testing.T) {
	var comments []string
	buf := []byte("<!-- note --><div></div>")
	rec := &recorder{}
	h := handlersFor(buf, rec)
	h.OnComment = func(ev handler.ValueEvent) { comments = append(comments, sub(buf, ev.Value)) }
	Parse(buf, h, WithConcise(false))

	assert.Equal(t, []string{" note "}, comments)
}

// dumpEvents renders a recorder's captured events as a flat, diffable trace
// for a snapshot test: every event type that matters to a reader deciding
// whether output changed in a meaningful way, one per line.
func dumpEvents(buf []byte, rec *recorder) string {
	var b strings.Builder
	for _, name := range rec.openTags {
		fmt.Fprintf(&b, "openTag %s\n", name)
	}
	for _, a := range rec.attrs {
		fmt.Fprintf(&b, "attr name=%q bound=%v hasValue=%v value=%q\n",
			sub(buf, a.Name), a.Bound, a.HasValue, sub(buf, a.Value))
	}
	for _, name := range rec.closeTags {
		fmt.Fprintf(&b, "closeTag %s\n", name)
	}
	for _, text := range rec.texts {
		fmt.Fprintf(&b, "text %q\n", text)
	}
	for _, e := range rec.errors {
		fmt.Fprintf(&b, "error %s\n", e.Code)
	}
	return b.String()
}

// TestShorthandClassAndBoundAttributeSnapshot pins the event trace for a
// shorthand id/class tag with a ":=" bound attribute, the two constructs
// charset.IsNameChar previously swallowed into the tag/attribute name scan.
// Uses the teacher's snapshot tooling (test_utils.MakeEventSnapshot, built
// on go-snaps/go-cmp/dedent the same way the teacher's own MakeSnapshot is)
// rather than another assert.Equal block, so a future regression shows up as
// a readable diff instead of a bare field mismatch.
func TestShorthandClassAndBoundAttributeSnapshot(t *testing.T) {
	input := "div.box.alt#main value:=count\n"
	buf := []byte(input)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec), WithConcise(true))

	assert.Empty(t, rec.errors)
	test_utils.MakeEventSnapshot(t, "ShorthandClassAndBoundAttribute", input, dumpEvents(buf, rec))
}

// TestConciseNestingSnapshot pins the event trace for a multi-level concise
// fixture written with Go-source indentation and unwound via
// test_utils.Dedent, the same "indented Go literal -> flush-left source"
// round trip the teacher relies on for its own multi-line fixtures.
func TestConciseNestingSnapshot(t *testing.T) {
	input := test_utils.Dedent(`
		ul
		  li.item#first hidden
		    --one
		  li.item
		    --two
	`) + "\n"
	buf := []byte(input)
	rec := &recorder{}
	Parse(buf, handlersFor(buf, rec), WithConcise(true))

	assert.Empty(t, rec.errors)
	test_utils.MakeEventSnapshot(t, "ConciseNesting", input, dumpEvents(buf, rec))
}

// TestParseIsDeterministic runs the same fixture twice and asserts the two
// event traces are byte-for-byte identical via test_utils.ANSIDiff, the
// teacher's go-cmp-backed diff renderer: an empty diff is the pass case,
// and a real mismatch would print as a readable colored diff instead of a
// wall of bytes.
func TestParseIsDeterministic(t *testing.T) {
	buf := []byte("div.box.alt#main value:=count\n")

	recA := &recorder{}
	Parse(buf, handlersFor(buf, recA), WithConcise(true))
	recB := &recorder{}
	Parse(buf, handlersFor(buf, recB), WithConcise(true))

	diff := test_utils.ANSIDiff(dumpEvents(buf, recA), dumpEvents(buf, recB))
	assert.Empty(t, diff)
}
