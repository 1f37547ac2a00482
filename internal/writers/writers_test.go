package writers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"unitconv/internal/output"
	"unitconv/pkg/api"
)

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

var sample = []api.ConversionV1{
	{SourceFile: "a.tsv", Line: 1, Domain: "length", Input: "1", Value: 1, From: "mile", To: "km", Result: 1.609344, Formatted: "1.609344"},
	{SourceFile: "a.tsv", Line: 2, Domain: "length", Input: "1", Value: 1, From: "m", To: "parsec", Error: "unknown unit \"parsec\" in length"},
}

func run(t *testing.T, format string, header bool) string {
	t.Helper()
	var b bytes.Buffer
	in, done := StartResultWriter(&b, format, header, 1)
	for _, c := range sample {
		in <- c
	}
	close(in)
	require.NoError(t, <-done)
	return b.String()
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"json", "jsonl", "text", "yaml"}, Formats())
}

func TestTextWriter(t *testing.T) {
	got := run(t, output.FormatText, true)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, output.TSVHeader, lines[0])
	assert.True(t, strings.HasSuffix(lines[2], "unknown unit \"parsec\" in length"))

	got = run(t, output.FormatText, false)
	assert.NotContains(t, got, output.TSVHeader)
}

func TestJSONWriterRoundTrip(t *testing.T) {
	var back []api.ConversionV1
	require.NoError(t, json.Unmarshal([]byte(run(t, output.FormatJSON, true)), &back))
	if diff := cmp.Diff(sample, back); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONWriterEmptyIsArray(t *testing.T) {
	var b bytes.Buffer
	in, done := StartResultWriter(&b, output.FormatJSON, false, 0)
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "[]\n", b.String())
}

func TestJSONLWriter(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(run(t, output.FormatJSONL, false), "\n"), "\n")
	require.Len(t, lines, 2)
	var first api.ConversionV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, sample[0], first)
}

func TestYAMLWriter(t *testing.T) {
	dec := yaml.NewDecoder(strings.NewReader(run(t, output.FormatYAML, false)))
	var got []api.ConversionV1
	for {
		var c api.ConversionV1
		if err := dec.Decode(&c); err != nil {
			break
		}
		got = append(got, c)
	}
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartResultWriter(&b, "nope-format", false, 1)
	in <- sample[0]
	close(in)
	err := <-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown result format")
}

func TestIsBrokenPipe(t *testing.T) {
	assert.False(t, IsBrokenPipe(nil))
	assert.True(t, IsBrokenPipe(fmt.Errorf("write stdout: %w", syscall.EPIPE)))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(io.EOF))
}
