package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/util/readers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the app with args and returns what it wrote
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app.Writer = &out
	t.Cleanup(func() { app.Writer = os.Stdout })

	err := app.Run(append([]string{"hashroll"}, args...))
	return out.String(), err
}

func writeTestData(t *testing.T, name string, data []byte) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, data, 0o644))
	return filename
}

func TestGenTestDataWritesSeededBytes(t *testing.T) {
	out, err := run(t, "gen-test-data", "7", "1")
	require.NoError(t, err)

	assert.Equal(t, readers.Bytes(7, 1024), []byte(out))
}

func TestGenTestDataDefaultsTo32KiB(t *testing.T) {
	out, err := run(t, "gen-test-data", "0")
	require.NoError(t, err)

	assert.Len(t, out, 32*1024)
}

func TestGenTestDataAcceptsWideSeeds(t *testing.T) {
	out, err := run(t, "gen-test-data", "18446744073709551621", "1")
	require.NoError(t, err)

	// 2^64 + 5
	expected := make([]byte, 1024)
	readers.NewPCG64Stream(1, 5, readers.DefaultStreamHi, readers.DefaultStreamLo).Read(expected)
	assert.Equal(t, expected, []byte(out))
	assert.NotEqual(t, readers.Bytes(5, 1024), []byte(out))
}

func TestParseSeed(t *testing.T) {
	hi, lo, err := parseSeed("340282366920938463463374607431768211455")
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), hi)
	assert.Equal(t, ^uint64(0), lo)

	for _, bad := range []string{"340282366920938463463374607431768211456", "-1", "0x10", ""} {
		_, _, err := parseSeed(bad)
		assert.Error(t, err, bad)
	}
}

func TestGenTestDataRequiresASeed(t *testing.T) {
	_, err := run(t, "gen-test-data")
	assert.Error(t, err)

	_, err = run(t, "gen-test-data", "seed")
	assert.Error(t, err)
}

func TestChunkPrintsOffsetsAndLengths(t *testing.T) {
	filename := writeTestData(t, "seed0", readers.Bytes(0, 32*1024))

	for _, view := range [][]string{nil, {"--incremental", "--buffer", "1000"}} {
		args := append([]string{"chunk", "--algorithm", "bup", "--strict"}, view...)
		out, err := run(t, append(args, filename)...)
		require.NoError(t, err)

		assert.Equal(t, "0\t2600\n2600\t6245\n", out, "%v", view)
	}
}

func TestChunkIncludesRemainderByDefault(t *testing.T) {
	filename := writeTestData(t, "seed0", readers.Bytes(0, 32*1024))

	out, err := run(t, "chunk", "--algorithm", "bup", filename)
	require.NoError(t, err)

	assert.Equal(t, "0\t2600\n2600\t6245\n8845\t23923\n", out)
}

func TestChunkMissingFile(t *testing.T) {
	_, err := run(t, "chunk", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestChunkUnknownAlgorithm(t *testing.T) {
	filename := writeTestData(t, "empty", nil)

	_, err := run(t, "chunk", "--algorithm", "nope", filename)
	assert.ErrorIs(t, err, chunks.ErrInvalidConfig)
}

func TestStatsReportsDistribution(t *testing.T) {
	filename := writeTestData(t, "seed0", readers.Bytes(0, 32*1024))

	out, err := run(t, "stats", "--algorithm", "pigz", "--strict", filename)
	require.NoError(t, err)

	for _, line := range []string{
		"chunks\t6\n",
		"min\t1191\n",
		"p50\t2939\n",
		"p90\t9069\n",
		"p99\t9069\n",
		"max\t9069\n",
		"mean\t4605.3\n",
	} {
		assert.Contains(t, out, line)
	}
}

func TestStatsOfEmptyInput(t *testing.T) {
	filename := writeTestData(t, "empty", nil)

	out, err := run(t, "stats", filename)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "chunks\t0\n"), out)
	assert.NotContains(t, out, "min")
}

func TestCompareIdenticalFiles(t *testing.T) {
	data := readers.Bytes(0, 32*1024)
	a := writeTestData(t, "a", data)
	b := writeTestData(t, "b", data)

	out, err := run(t, "compare", "--algorithm", "gzip", a, b)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "shared 8 of 8 chunks (100.0%)"), out)
}

func TestCompareRequiresTwoFiles(t *testing.T) {
	_, err := run(t, "compare", "a")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "gen-test-data", "0", "1")
	assert.Error(t, err)
}
