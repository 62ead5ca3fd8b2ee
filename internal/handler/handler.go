// Package handler defines the parser's external callback surface (spec.md
// §6) and the single-shot error latch that governs it (spec.md §3 invariant
// 5, §7): after the first onError call every further callback becomes a
// no-op except the final onFinish.
package handler

import (
	"errors"

	"github.com/seanpm2001/htmljs-parser/internal/loc"
)

// Handlers is the callback table a caller supplies to Parse. Every field is
// optional; a nil field is simply never invoked.
type Handlers struct {
	OnText        func(loc.Range)
	OnPlaceholder func(PlaceholderEvent)
	OnOpenTagName func(OpenTagNameEvent)
	OnOpenTag     func(OpenTagEvent)
	OnCloseTag    func(CloseTagEvent)
	OnAttrName    func(loc.Range)
	OnAttrArgs    func(AttrArgsEvent)
	OnAttrValue   func(AttrValueEvent)
	OnAttrSpread  func(AttrSpreadEvent)
	OnAttrMethod  func(AttrMethodEvent)
	OnComment     func(ValueEvent)
	OnCDATA       func(ValueEvent)
	OnDoctype     func(ValueEvent)
	OnDeclaration func(ValueEvent)
	OnScriptlet   func(ScriptletEvent)
	OnError       func(ErrorEvent)
	OnFinish      func()
}

// Reporter wraps a Handlers table with the one-shot error latch described in
// spec.md §7. It is the sole path the parser core uses to reach user
// callbacks, the same way the teacher's Handler is the sole path token.go
// uses to reach diagnostics, generalized from "accumulate many" to "stop at
// one".
type Reporter struct {
	handlers Handlers
	errored  bool
}

func NewReporter(h Handlers) *Reporter {
	return &Reporter{handlers: h}
}

// HasError reports whether an error has already latched.
func (r *Reporter) HasError() bool {
	return r.errored
}

// Emit* methods are no-ops once HasError() is true, except EmitError itself
// (idempotent: only the first call is ever forwarded) and Finish.

func (r *Reporter) EmitText(rg loc.Range) {
	if r.errored || r.handlers.OnText == nil {
		return
	}
	r.handlers.OnText(rg)
}

func (r *Reporter) EmitPlaceholder(ev PlaceholderEvent) {
	if r.errored || r.handlers.OnPlaceholder == nil {
		return
	}
	r.handlers.OnPlaceholder(ev)
}

func (r *Reporter) EmitOpenTagName(ev OpenTagNameEvent) {
	if r.errored || r.handlers.OnOpenTagName == nil {
		return
	}
	r.handlers.OnOpenTagName(ev)
}

func (r *Reporter) EmitOpenTag(ev OpenTagEvent) {
	if r.errored || r.handlers.OnOpenTag == nil {
		return
	}
	r.handlers.OnOpenTag(ev)
}

func (r *Reporter) EmitCloseTag(ev CloseTagEvent) {
	if r.errored || r.handlers.OnCloseTag == nil {
		return
	}
	r.handlers.OnCloseTag(ev)
}

func (r *Reporter) EmitAttrName(rg loc.Range) {
	if r.errored || r.handlers.OnAttrName == nil {
		return
	}
	r.handlers.OnAttrName(rg)
}

func (r *Reporter) EmitAttrArgs(ev AttrArgsEvent) {
	if r.errored || r.handlers.OnAttrArgs == nil {
		return
	}
	r.handlers.OnAttrArgs(ev)
}

func (r *Reporter) EmitAttrValue(ev AttrValueEvent) {
	if r.errored || r.handlers.OnAttrValue == nil {
		return
	}
	r.handlers.OnAttrValue(ev)
}

func (r *Reporter) EmitAttrSpread(ev AttrSpreadEvent) {
	if r.errored || r.handlers.OnAttrSpread == nil {
		return
	}
	r.handlers.OnAttrSpread(ev)
}

func (r *Reporter) EmitAttrMethod(ev AttrMethodEvent) {
	if r.errored || r.handlers.OnAttrMethod == nil {
		return
	}
	r.handlers.OnAttrMethod(ev)
}

func (r *Reporter) EmitComment(ev ValueEvent) {
	if r.errored || r.handlers.OnComment == nil {
		return
	}
	r.handlers.OnComment(ev)
}

func (r *Reporter) EmitCDATA(ev ValueEvent) {
	if r.errored || r.handlers.OnCDATA == nil {
		return
	}
	r.handlers.OnCDATA(ev)
}

func (r *Reporter) EmitDoctype(ev ValueEvent) {
	if r.errored || r.handlers.OnDoctype == nil {
		return
	}
	r.handlers.OnDoctype(ev)
}

func (r *Reporter) EmitDeclaration(ev ValueEvent) {
	if r.errored || r.handlers.OnDeclaration == nil {
		return
	}
	r.handlers.OnDeclaration(ev)
}

func (r *Reporter) EmitScriptlet(ev ScriptletEvent) {
	if r.errored || r.handlers.OnScriptlet == nil {
		return
	}
	r.handlers.OnScriptlet(ev)
}

// EmitError latches the reporter. Only the first call is ever forwarded to
// OnError; subsequent calls are no-ops, matching spec.md §3 invariant 5.
func (r *Reporter) EmitError(err *loc.ErrorWithRange) {
	if r.errored {
		return
	}
	r.errored = true
	if r.handlers.OnError != nil {
		r.handlers.OnError(ErrorEvent{Range: err.Range, Code: err.Code, Message: err.Text})
	}
}

// Finish calls OnFinish unconditionally — it fires whether or not an error
// was reported, per spec.md §3 invariant 5 ("no further handler invocations
// occur" excludes the terminal onFinish signal).
func (r *Reporter) Finish() {
	if r.handlers.OnFinish != nil {
		r.handlers.OnFinish()
	}
}

// AsRangedError recovers the *loc.ErrorWithRange from a plain error, the
// same way the teacher's ErrorToMessage uses errors.As to recover a ranged
// diagnostic before rendering it.
func AsRangedError(err error) (*loc.ErrorWithRange, bool) {
	var rangedError *loc.ErrorWithRange
	if errors.As(err, &rangedError) {
		return rangedError, true
	}
	return nil, false
}
