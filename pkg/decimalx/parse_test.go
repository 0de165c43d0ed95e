package decimalx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		want   string
		wantOk bool
	}{
		{name: "int", input: "42", want: "42", wantOk: true},
		{name: "trailing zeros", input: "1.500", want: "1.5", wantOk: true},
		{name: "thousands separator", input: "1,234.5", want: "1234.5", wantOk: true},
		{name: "negative with spaces", input: "  -3.25 ", want: "-3.25", wantOk: true},
		{name: "empty", input: "", wantOk: false},
		{name: "text", input: "Paris", wantOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := Parse(tc.input)
			assert.Equal(t, tc.wantOk, ok)
			if ok {
				assert.Equal(t, tc.want, d.String())
			}
		})
	}
}
