package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/countsort"
)

// run executes the root command against in-memory streams.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestSort_EveryAlgorithm(t *testing.T) {
	for _, algo := range sortAlgos {
		t.Run(algo, func(t *testing.T) {
			out, _, err := run(t, "5 3 9 1\n3 0 -2\n", "sort", "--algo", algo, "--seed", "7", "--check")
			require.NoError(t, err)
			assert.Equal(t, "-2 0 1 3 3 5 9\n", out)
		})
	}
}

func TestSort_Parallel(t *testing.T) {
	in := strings.Repeat("4 2 8 6 0 ", 200)
	for _, algo := range []string{algoQuick, algoMerge} {
		out, _, err := run(t, in, "sort", "--algo", algo, "--parallel", "16", "--check")
		require.NoError(t, err, algo)
		fields := strings.Fields(out)
		require.Len(t, fields, 1000)
		assert.Equal(t, "0", fields[0])
		assert.Equal(t, "8", fields[999])
	}
}

func TestSort_Errors(t *testing.T) {
	_, _, err := run(t, "1 2", "sort", "--algo", "bogo")
	require.Error(t, err)

	_, _, err = run(t, "1 x 3", "sort")
	require.ErrorContains(t, err, "token 2")

	for _, p := range []string{"1", "-3"} {
		out, _, err := run(t, "2 1", "sort", "--parallel="+p)
		require.ErrorContains(t, err, "--parallel", p)
		assert.Empty(t, out, p)
	}
}

func TestRank(t *testing.T) {
	out, _, err := run(t, "3 1 3 2", "rank", "--max", "3", "--check")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 3\n4 1 3 2\n", out)

	out, _, err = run(t, "3 1 3 2", "rank", "--stable")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 3\n3 1 4 2\n", out)

	_, _, err = run(t, "0 1", "rank", "--max", "3")
	require.ErrorIs(t, err, countsort.ErrOutOfRange)
}

func TestRadix_ClassicVector(t *testing.T) {
	out, _, err := run(t, "170 45 75 90 2 802 24 66", "radix", "--check")
	require.NoError(t, err)
	assert.Equal(t, "4 6 1 7 2 3 0 5\n2 24 45 66 75 90 170 802\n", out)

	out, _, err = run(t, "170 45 75 90 2 802 24 66", "radix", "--digits", "5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "4 6 1 7 2 3 0 5\n"))
}

func TestMatch(t *testing.T) {
	out, _, err := run(t, "abababacaba\n", "match", "--pattern", "aba", "--check")
	require.NoError(t, err)
	assert.Equal(t, "0 0 1\n2 4 6 10\n", out)

	out, _, err = run(t, "abababacaba\n", "match", "-p", "aba", "--starts")
	require.NoError(t, err)
	assert.Equal(t, "0 0 1\n0 2 4 8\n", out)

	out, _, err = run(t, "xyz", "match", "-p", "ab")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n\n", out)

	_, _, err = run(t, "abc", "match")
	require.Error(t, err)
}

func TestGen_Deterministic(t *testing.T) {
	args := []string{"gen", "--n", "25", "--min", "1", "--max", "6", "--seed", "42"}
	first, _, err := run(t, "", args...)
	require.NoError(t, err)
	second, _, err := run(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, strings.Fields(first), 25)

	s, _, err := run(t, "", "gen", "--n", "12", "--alphabet", "ab")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(s), 12)
	assert.Empty(t, strings.Trim(s, "ab\n"))

	_, _, err = run(t, "", "gen", "--n", "3", "--min", "5", "--max", "1")
	require.Error(t, err)
}

func TestGen_PipesIntoRank(t *testing.T) {
	gen, _, err := run(t, "", "gen", "--n", "50", "--min", "1", "--max", "9")
	require.NoError(t, err)
	out, _, err := run(t, gen, "rank", "--max", "9", "--check")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Fields(lines[1]), 50)
}

func TestInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("9 8 7\n"), 0o600))

	out, _, err := run(t, "ignored", "--input", path, "sort", "--algo", algoMergeBottomUp)
	require.NoError(t, err)
	assert.Equal(t, "7 8 9\n", out)

	_, _, err = run(t, "", "--input", filepath.Join(t.TempDir(), "missing"), "sort")
	require.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	_, logs, err := run(t, "3 2 1", "--log-level", "info", "sort", "--algo", algoMerge)
	require.NoError(t, err)
	assert.Contains(t, logs, "msg=sorted")
	assert.Contains(t, logs, "algo=merge")
	assert.Contains(t, logs, "n=3")

	_, logs, err = run(t, "3 2 1", "sort")
	require.NoError(t, err)
	assert.NotContains(t, logs, "msg=sorted")

	_, _, err = run(t, "3 2 1", "--log-level", "loud", "sort")
	require.Error(t, err)
}
