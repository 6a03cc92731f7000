package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districts/config"
	"github.com/katalvlaran/districts/partition"
	"github.com/katalvlaran/districts/world"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	wd, err := world.FromVotes([][]int{{1, 0, 2}, {0, 0, 1}}, nil)
	require.NoError(t, err)
	rm, err := partition.FromLabels(wd, []int{0, 0, 1, 0, 1, 1}, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, rm))
	want := "001\n" +
		"011\n" +
		"district 0: cells=3 population=1 frontier=2 contiguous=true\n" +
		"district 1: cells=3 population=3 frontier=2 contiguous=true\n"
	assert.Equal(t, want, buf.String())
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, byte('.'), glyph(partition.Unassigned))
	assert.Equal(t, byte('0'), glyph(0))
	assert.Equal(t, byte('a'), glyph(10))
	assert.Equal(t, byte('Z'), glyph(61))
	assert.Equal(t, byte('#'), glyph(62))
}

func TestBuildCommand(t *testing.T) {
	out, err := run(t, "build", "--width", "6", "--height", "4", "-n", "3", "--seed", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4+3)
	for _, l := range lines[:4] {
		assert.Len(t, l, 6)
	}
	assert.True(t, strings.HasPrefix(lines[4], "district 0:"))
	assert.Contains(t, out, "contiguous=true")
}

func TestBuildCommand_Deterministic(t *testing.T) {
	a, err := run(t, "build", "--width", "8", "--height", "8", "-n", "4", "--seed", "11")
	require.NoError(t, err)
	b, err := run(t, "build", "--width", "8", "--height", "8", "-n", "4", "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildCommand_TooManyDistricts(t *testing.T) {
	_, err := run(t, "build", "--width", "2", "--height", "2", "-n", "5")
	assert.ErrorIs(t, err, partition.ErrTooManyDistricts)
}

func TestWalkCommand(t *testing.T) {
	out, err := run(t, "walk", "--width", "6", "--height", "6", "-n", "2", "--steps", "40", "--strict", "--incremental")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "accepted "))
	assert.Contains(t, out, "of 40 attempts")
	assert.NotContains(t, out, "contiguous=false")
}

func TestWalkCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := "world: {width: 5, height: 5, probability: 0.5}\ndistricts: 2\nseed: 3\nwalk: {steps: 30, edits: 4}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := run(t, "walk", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "of 30 attempts")
}

func TestWalkCommand_BadConfig(t *testing.T) {
	_, err := run(t, "walk", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestWalkCommand_StepsKeepFileEdits overrides steps on the command line;
// edits from the file must still cap the accepted flips.
func TestWalkCommand_StepsKeepFileEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := "world: {width: 5, height: 5, probability: 0.5}\ndistricts: 2\nseed: 3\nwalk: {steps: 30, edits: 2}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := run(t, "walk", "--config", path, "--steps", "300")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "accepted 2 of 300 attempts"), out)
}

func TestBuildCommand_Tolerance(t *testing.T) {
	out, err := run(t, "build", "--width", "10", "--height", "10", "-n", "2",
		"--probability", "1", "--seed", "4", "--tolerance", "0.1")
	require.NoError(t, err)

	// 100 voters, ideal 50: both districts within [45,55].
	var pops []int
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		var d byte
		var cells, pop, frontier int
		var contiguous bool
		if n, _ := fmt.Sscanf(l, "district %c: cells=%d population=%d frontier=%d contiguous=%t",
			&d, &cells, &pop, &frontier, &contiguous); n == 5 {
			pops = append(pops, pop)
			assert.True(t, contiguous)
		}
	}
	require.Len(t, pops, 2)
	for _, p := range pops {
		assert.GreaterOrEqual(t, p, 45)
		assert.LessOrEqual(t, p, 55)
	}
}

func TestBuildCommand_DimensionsConflictWithVotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votes.yaml")
	doc := "world:\n  votes_a: [[1, 0], [0, 1]]\ndistricts: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := run(t, "build", "--config", path, "--width", "9")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "build", "--config", path)
	assert.NoError(t, err)
}
