package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seanpm2001/htmljs-parser/internal/loc"
)

func TestReporterStopsAfterFirstError(t *testing.T) {
	var texts []loc.Range
	var errors []ErrorEvent
	finished := false

	r := NewReporter(Handlers{
		OnText:  func(rg loc.Range) { texts = append(texts, rg) },
		OnError: func(ev ErrorEvent) { errors = append(errors, ev) },
		OnFinish: func() { finished = true },
	})

	r.EmitText(loc.Range{Start: 0, End: 1})
	assert.False(t, r.HasError())

	r.EmitError(&loc.ErrorWithRange{Code: loc.InvalidExpression, Text: "boom", Range: loc.Range{Start: 1, End: 2}})
	assert.True(t, r.HasError())

	// Every further emission, including a second error, is a no-op.
	r.EmitText(loc.Range{Start: 2, End: 3})
	r.EmitError(&loc.ErrorWithRange{Code: loc.InvalidExpression, Text: "second", Range: loc.Range{Start: 3, End: 4}})
	r.Finish()

	assert.Len(t, texts, 1)
	assert.Len(t, errors, 1)
	assert.Equal(t, "boom", errors[0].Message)
	assert.True(t, finished)
}

func TestReporterFinishFiresWithoutError(t *testing.T) {
	finished := false
	r := NewReporter(Handlers{OnFinish: func() { finished = true }})
	r.Finish()
	assert.True(t, finished)
	assert.False(t, r.HasError())
}

func TestReporterNilHandlersAreNoops(t *testing.T) {
	r := NewReporter(Handlers{})
	assert.NotPanics(t, func() {
		r.EmitText(loc.Range{})
		r.EmitOpenTag(OpenTagEvent{})
		r.EmitError(&loc.ErrorWithRange{Code: loc.InvalidBody, Text: "x"})
		r.Finish()
	})
}

func TestAsRangedError(t *testing.T) {
	err := &loc.ErrorWithRange{Code: loc.BadIndentation, Text: "bad indent"}
	got, ok := AsRangedError(err)
	assert.True(t, ok)
	assert.Equal(t, err, got)

	_, ok = AsRangedError(assertPlainError{})
	assert.False(t, ok)
}

type assertPlainError struct{}

func (assertPlainError) Error() string { return "plain" }
