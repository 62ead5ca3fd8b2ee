package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWhitespace(t *testing.T) {
	tests := []struct {
		name string
		c    byte
		want bool
	}{
		{"space", ' ', true},
		{"tab", '\t', true},
		{"formfeed", '\f', true},
		{"vtab", '\v', true},
		{"newline excluded", '\n', false},
		{"cr excluded", '\r', false},
		{"letter", 'a', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWhitespace(tt.c))
		})
	}
}

func TestIsWhitespaceOrEOL(t *testing.T) {
	assert.True(t, IsWhitespaceOrEOL('\n'))
	assert.True(t, IsWhitespaceOrEOL('\r'))
	assert.True(t, IsWhitespaceOrEOL(' '))
	assert.False(t, IsWhitespaceOrEOL('x'))
}

func TestIsDigitAndHexDigit(t *testing.T) {
	assert.True(t, IsDigit('5'))
	assert.False(t, IsDigit('a'))
	assert.True(t, IsHexDigit('f'))
	assert.True(t, IsHexDigit('F'))
	assert.True(t, IsHexDigit('9'))
	assert.False(t, IsHexDigit('g'))
}

func TestIdentifierPredicates(t *testing.T) {
	assert.True(t, IsIdentifierStart('_'))
	assert.True(t, IsIdentifierStart('$'))
	assert.True(t, IsIdentifierStart('a'))
	assert.False(t, IsIdentifierStart('1'))
	assert.True(t, IsIdentifierPart('1'))
}

func TestCanBeFollowedByDivision(t *testing.T) {
	tests := []struct {
		name string
		c    byte
		want bool
	}{
		{"identifier char", 'x', true},
		{"digit", '9', true},
		{"close paren", ')', true},
		{"dot", '.', true},
		{"close angle", '<', true},
		{"close bracket", ']', true},
		{"close brace", '}', true},
		{"percent", '%', true},
		{"open paren", '(', false},
		{"plus", '+', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanBeFollowedByDivision(tt.c))
		})
	}
}

func TestIsNameChar(t *testing.T) {
	for _, c := range []byte("abcXYZ01-_") {
		assert.True(t, IsNameChar(c), "expected %q to be a name char", c)
	}
	for _, c := range []byte(" <>/\"':.") {
		assert.False(t, IsNameChar(c), "expected %q to not be a name char", c)
	}
}
