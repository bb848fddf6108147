package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fqtrim/pkg/api"
)

var sample = api.SummaryV1{
	Input: "in.fq", Output: "out.fq", MinQuality: 20, MinSize: 4,
	Reads: 3, Removed: 1, Trimmed: 1, Kept: 2, BasesIn: 24, BasesOut: 12,
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("text", &buf, sample))
	assert.Equal(t, "3 reads were found\n1 reads were removed\n1 reads were trimmed\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("json", &buf, sample))

	var got api.SummaryV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, buf.String(), `"min_quality": 20`)
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("yaml", &buf, sample))

	var got api.SummaryV1
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, buf.String(), "bases_out: 12")
}

func TestUnknownFormat(t *testing.T) {
	assert.False(t, Known("xml"))
	assert.Error(t, Write("xml", io.Discard, sample))
	assert.Equal(t, []string{"json", "text", "yaml"}, Formats())
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(fmt.Errorf("write stdout: %w", syscall.EPIPE)))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(io.EOF))
}
