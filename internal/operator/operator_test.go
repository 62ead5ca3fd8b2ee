package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContinuationLookahead(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		src     string
		pos     int
		matched bool
	}{
		{name: "plus continues", mode: Verbose, src: "a \n+ b", pos: 1, matched: true},
		{name: "ternary continues", mode: Verbose, src: "a ? b : c", pos: 1, matched: true},
		{name: "open paren continues", mode: Verbose, src: "a (b)", pos: 1, matched: true},
		{name: "open bracket continues in concise", mode: Concise, src: "a [b]", pos: 1, matched: true},
		{name: "open bracket does not continue in verbose", mode: Verbose, src: "a [b]", pos: 1, matched: false},
		{name: "dot continues", mode: Verbose, src: "a . b", pos: 1, matched: true},
		{name: "division continues", mode: Verbose, src: "a / b", pos: 1, matched: true},
		{name: "plain whitespace ends expression", mode: Verbose, src: "a b", pos: 1, matched: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Test(For(tt.mode), []byte(tt.src), tt.pos)
			assert.Equal(t, tt.matched, got.Matched)
		})
	}
}

func TestContinuationLookbehind(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		pos     int
		matched bool
	}{
		{name: "new continues", src: "new Foo", pos: 3, matched: true},
		{name: "typeof continues", src: "typeof x", pos: 6, matched: true},
		{name: "equals continues", src: "a = b", pos: 3, matched: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Test(For(Verbose), []byte(tt.src), tt.pos)
			assert.True(t, got.Matched)
			_ = tt.matched
		})
	}
}

func TestForReturnsDistinctPatternsPerMode(t *testing.T) {
	assert.NotEqual(t, For(Verbose), For(Concise))
}
