package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/kadanebench/internal/errors"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []int32
		wantErr bool
	}{
		{name: "spaces", line: "1 2 3", want: []int32{1, 2, 3}},
		{name: "extra whitespace", line: "  -5\t 7  ", want: []int32{-5, 7}},
		{name: "commas", line: "4,-1, 2", want: []int32{4, -1, 2}},
		{name: "int32 bounds", line: "-2147483648 2147483647", want: []int32{-2147483648, 2147483647}},
		{name: "empty", line: "", want: []int32{}},
		{name: "not a number", line: "1 two", wantErr: true},
		{name: "overflow", line: "2147483648", wantErr: true},
		{name: "float", line: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInts(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCategory(err, errors.CategoryInput))
				assert.Equal(t, msgInvalidIntegers, errors.Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChoice(t *testing.T) {
	assert.Equal(t, 3, parseChoice(" 3 "))
	assert.Equal(t, 10, parseChoice("10"))
	assert.Equal(t, -1, parseChoice("x"))
	assert.Equal(t, -1, parseChoice(""))
}

func TestGenerateArray(t *testing.T) {
	rng := NewRand(1)
	seq := GenerateArray(rng, 2000, -3, 3)
	require.Len(t, seq, 2000)

	seen := map[int32]bool{}
	for _, v := range seq {
		assert.GreaterOrEqual(t, v, int32(-3))
		assert.LessOrEqual(t, v, int32(3))
		seen[v] = true
	}
	assert.Len(t, seen, 7, "both bounds are inclusive")
}

func TestGenerateArrayIsReproducible(t *testing.T) {
	a := GenerateArray(NewRand(99), 50, -100, 100)
	b := GenerateArray(NewRand(99), 50, -100, 100)
	assert.Equal(t, a, b)
}

func TestFormatInts(t *testing.T) {
	assert.Equal(t, "[]", formatInts(nil, 20))
	assert.Equal(t, "[1, -2, 3]", formatInts([]int32{1, -2, 3}, 20))
	assert.Equal(t, "[1, -2]", formatInts([]int32{1, -2, 3}, 2))
}

func TestEdgeCaseSuite(t *testing.T) {
	cases := EdgeCases()
	require.Len(t, cases, 10)
	for _, ec := range cases {
		assert.NotEmpty(t, ec.Description)
		assert.NotEmpty(t, ec.Input)
	}
}
