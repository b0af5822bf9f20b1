package conv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsInt(t *testing.T) {
	seven := 7
	var testCases = []struct {
		description string
		input       interface{}
		expect      int
	}{
		{description: "int", input: 3, expect: 3},
		{description: "float", input: float64(12), expect: 12},
		{description: "int64", input: int64(5), expect: 5},
		{description: "number", input: json.Number("9"), expect: 9},
		{description: "string", input: "11", expect: 11},
		{description: "pointer", input: &seven, expect: 7},
		{description: "nil", input: nil, expect: 0},
		{description: "invalid string", input: "x", expect: 0},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, AsInt(testCase.input), testCase.description)
	}
}
