package appshell

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPassesArgsAndCode(t *testing.T) {
	var got []string
	code := run(func(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
		assert.NoError(t, ctx.Err())
		got = argv
		return 2
	}, []string{"a", "b"}, io.Discard, io.Discard)

	assert.Equal(t, 2, code)
	assert.Equal(t, []string{"a", "b"}, got)
}
