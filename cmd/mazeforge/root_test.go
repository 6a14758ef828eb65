package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mazeforge/mazeforge/mazejson"
	"github.com/mazeforge/mazeforge/render"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_JSONOutput(t *testing.T) {
	out, err := execute(t, "-r", "2", "-c", "3", "--seed", "9", "-t", "json")
	require.NoError(t, err)

	m, paths, err := mazejson.Unmarshal([]byte(out))
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Nil(t, paths)
}

func TestRoot_TextWithSolution(t *testing.T) {
	out, err := execute(t,
		"-r", "3", "-c", "3", "--seed", "5", "-s",
		"--north-exit", "0", "--south-exit", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	require.Contains(t, out, "+")
}

func TestRoot_SolutionsNeedTwoExits(t *testing.T) {
	_, err := execute(t, "-r", "3", "-c", "3", "--seed", "5", "-s", "--north-exit", "0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "two exits")
}

func TestRoot_UnknownOutputType(t *testing.T) {
	_, err := execute(t, "-t", "gif")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"gif"`)
}

func TestRoot_BadColor(t *testing.T) {
	_, err := execute(t, "-t", "png", "--wall-color", "onyx")
	require.ErrorIs(t, err, render.ErrColor)
}

func TestRoot_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	out, err := execute(t, "-r", "2", "-c", "2", "--seed", "1", "-o", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "#")
}

func TestRoot_ImportJSON(t *testing.T) {
	exported, err := execute(t,
		"-r", "4", "-c", "4", "--seed", "3", "-t", "json",
		"--west-exit", "0", "--east-exit", "3")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "maze.json")
	require.NoError(t, os.WriteFile(path, []byte(exported), 0o644))

	reexported, err := execute(t, "-j", path, "-t", "json")
	require.NoError(t, err)
	require.JSONEq(t, exported, reexported)

	rendered, err := execute(t, "-j", path, "-t", "text", "-s")
	require.NoError(t, err)
	require.Contains(t, rendered, "+")
}

func TestRoot_SVGOutput(t *testing.T) {
	out, err := execute(t, "-r", "2", "-c", "2", "--seed", "1", "-t", "svg")
	require.NoError(t, err)
	require.Contains(t, out, "<svg")
	// 2 cells × 19 units + 3 walls × 1 unit.
	require.Contains(t, out, `width="41"`)
}
