package cliutil

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func newFS() *pflag.FlagSet {
	fs := pflag.NewFlagSet("x", pflag.ContinueOnError)
	fs.BoolP("quiet", "q", false, "")
	fs.StringP("format", "f", "text", "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"--quiet", "pos1", "--", "pos2"})
	assert.Equal(t, []string{"--quiet"}, flagArgs)
	assert.Equal(t, []string{"pos1", "pos2"}, posArgs)
}

func TestSplitKeepsFlagValues(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"in.fq", "-f", "json", "out.fq", "--format=yaml", "-q", "20", "5"})
	assert.Equal(t, []string{"-f", "json", "--format=yaml", "-q"}, flagArgs)
	assert.Equal(t, []string{"in.fq", "out.fq", "20", "5"}, posArgs)
}

func TestSplitNegativeNumbersAndStdio(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"-", "-", "-1", "-20"})
	assert.Empty(t, flagArgs)
	assert.Equal(t, []string{"-", "-", "-1", "-20"}, posArgs)
}

func TestNormalizeArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"--quiet", "--", "in.fq", "out.fq", "-3", "0"},
		NormalizeArgs(newFS(), []string{"in.fq", "--quiet", "out.fq", "-3", "0"}))
	assert.Equal(t, []string{"--help"}, NormalizeArgs(newFS(), []string{"--help"}))
	got := NormalizeArgs(newFS(), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUnknownFlagDoesNotSwallowNext(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"--bogus", "in.fq"})
	assert.Equal(t, []string{"--bogus"}, flagArgs)
	assert.Equal(t, []string{"in.fq"}, posArgs)
}
