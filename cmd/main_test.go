package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partgen/pkg/partition"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_NoArgsMatchesGolden(t *testing.T) {
	want, err := os.ReadFile("../pkg/partition/testdata/default_clause.golden")
	require.NoError(t, err)

	out, _, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestRoot_CustomRange(t *testing.T) {
	out, _, err := run(t, "--start", "2023-01", "--end", "2023-03")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "    PARTITION pJan2023 VALUES LESS THAN (2678400),", lines[0])
	assert.Equal(t, "    PARTITION pFeb2023 VALUES LESS THAN (5097600),", lines[1])
	assert.Equal(t, partition.CatchAllLine, lines[2])
}

func TestRoot_InvalidRangeNoOutput(t *testing.T) {
	out, _, err := run(t, "--start", "2024-04-01", "--end", "2022-01-01")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	out, _, err := run(t, "extra")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRoot_MissingConfigReportsError(t *testing.T) {
	out, errOut, err := run(t, "--config", "/nonexistent/partgen.yaml")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "partgen:")
}

func TestRoot_VerboseKeepsStdoutClean(t *testing.T) {
	out, _, err := run(t, "-v", "--start", "2024-02-01", "--end", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "    PARTITION pFeb2024 VALUES LESS THAN (2505600),\n"+partition.CatchAllLine+"\n", out)
}
