package loc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		len   int
		empty bool
	}{
		{name: "basic", r: Range{Start: 2, End: 5}, len: 3, empty: false},
		{name: "empty", r: Range{Start: 4, End: 4}, len: 0, empty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.len, tt.r.Len())
			assert.Equal(t, tt.empty, tt.r.Empty())
		})
	}
}

func TestValueRange(t *testing.T) {
	vr := ValueRange{
		Range: Range{Start: 0, End: 10},
		Value: Range{Start: 2, End: 8},
	}
	assert.Equal(t, 10, vr.Len())
	assert.Equal(t, 6, vr.Value.Len())
}

func TestErrorWithRangeMessage(t *testing.T) {
	err := &ErrorWithRange{Code: MalformedOpenTag, Text: "expected a tag name", Range: Range{Start: 1, End: 2}}
	assert.Equal(t, "MALFORMED_OPEN_TAG: expected a tag name", err.Error())
}
