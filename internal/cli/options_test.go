package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsOK(t *testing.T) {
	o, err := ParseArgs([]string{"in.fq", "out.fq", "20", "25"})
	require.NoError(t, err)
	assert.Equal(t, Options{Input: "in.fq", Output: "out.fq", MinQuality: 20, MinSize: 25}, o)
}

func TestParseArgsNegativeAndStdio(t *testing.T) {
	o, err := ParseArgs([]string{"-", "-", "-1", "0"})
	require.NoError(t, err)
	assert.Equal(t, -1, o.MinQuality)
	assert.Equal(t, 0, o.MinSize)
}

func TestParseArgsErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"none":              nil,
		"too few":           {"in.fq", "out.fq", "20"},
		"too many":          {"in.fq", "out.fq", "20", "25", "x"},
		"quality not int":   {"in.fq", "out.fq", "twenty", "25"},
		"size not int":      {"in.fq", "out.fq", "20", "2.5"},
		"empty input":       {"", "out.fq", "20", "25"},
		"same in and out":   {"a.fq", "a.fq", "20", "25"},
		"empty output path": {"in.fq", "", "20", "25"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(args)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}
