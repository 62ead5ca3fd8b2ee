// Package loc defines the zero-copy byte-range types shared by every layer
// of the parser. Ranges are half-open [Start, End) offsets into the caller's
// source buffer; nothing in this package ever copies or slices source text.
package loc

// Range is a half-open [Start, End) byte range into the source buffer.
type Range struct {
	Start int
	End   int
}

// Len reports the number of bytes spanned by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range spans zero bytes.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// ValueRange pairs an outer range with a nested Value range describing the
// semantic interior of a fragment whose delimiters differ from its content,
// e.g. a quoted attribute value `"abc"` (Range) whose Value is `abc`.
type ValueRange struct {
	Range
	Value Range
}

// Span is an alias of Range used internally by the parser core when talking
// about raw buffer positions rather than handler-facing events. Keeping it
// as a distinct name documents intent at call sites (spec.md StateFrame
// start/end bookkeeping) without introducing a second type.
type Span = Range
