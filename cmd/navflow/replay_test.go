package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReplayPrintsTranscript(t *testing.T) {
	stdout, _, err := execute(t, "replay", "testdata/tour.yaml")
	require.NoError(t, err)

	golden, err := os.ReadFile("testdata/tour.golden")
	require.NoError(t, err)
	assert.Equal(t, string(golden), stdout)
}

func TestReplayJSONLines(t *testing.T) {
	stdout, _, err := execute(t, "replay", "--json", "testdata/tour.yaml")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, lines[0], `"step":1`)
	assert.Contains(t, lines[0], `"presenter_depth":0`)
}

func TestReplayExpectMatches(t *testing.T) {
	stdout, stderr, err := execute(t, "replay", "testdata/tour.yaml", "--expect", "testdata/tour.golden")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "transcript matches")
}

func TestReplayExpectMismatchPrintsDiff(t *testing.T) {
	golden, err := os.ReadFile("testdata/tour.golden")
	require.NoError(t, err)
	lines := strings.SplitAfter(string(golden), "\n")
	lines[2] = "03  changed\n"
	expect := writeFile(t, "tour.golden", strings.Join(lines, ""))

	stdout, _, err := execute(t, "replay", "testdata/tour.yaml", "--expect", expect)
	require.ErrorIs(t, err, errTranscriptMismatch)
	assert.Contains(t, stdout, "-03  changed")
	assert.Contains(t, stdout, "+03  ")
	assert.Contains(t, stdout, "+++ tour")
}

func TestReplayFailsOnUnknownTarget(t *testing.T) {
	path := writeFile(t, "bad.yaml", `name: bad
steps:
  - {target: "route:3", action: push_second}
`)

	_, stderr, err := execute(t, "replay", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replay bad")
	assert.Contains(t, err.Error(), "step 1")
	assert.Contains(t, stderr, "replay failed")
}

func TestReplayRejectsInvalidScript(t *testing.T) {
	path := writeFile(t, "empty.yaml", "name: empty\nsteps: []\n")

	_, _, err := execute(t, "replay", path)
	require.Error(t, err)
}

func TestReplayHonoursConfigAndVerbose(t *testing.T) {
	cfg := writeFile(t, "navflow.toml", `
[log]
level = "warn"

[routing]
assertions = true
`)

	_, stderr, err := execute(t, "--config", cfg, "replay", "testdata/tour.yaml", "--expect", "testdata/tour.golden")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "transcript matches")

	_, stderr, err = execute(t, "--config", cfg, "-v", "replay", "testdata/tour.yaml")
	require.NoError(t, err)
	assert.Contains(t, stderr, "script loaded")
}

func TestReplayReportsMetricsWhenEnabled(t *testing.T) {
	cfg := writeFile(t, "navflow.yaml", "metrics:\n  enabled: true\n")

	_, stderr, err := execute(t, "--config", cfg, "replay", "testdata/tour.yaml")
	require.NoError(t, err)
	assert.Contains(t, stderr, "navigation metrics")
	assert.Contains(t, stderr, `"commands":`)

	_, stderr, err = execute(t, "replay", "testdata/tour.yaml")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "navigation metrics")
}

func TestReplayRejectsBadConfig(t *testing.T) {
	cfg := writeFile(t, "navflow.yaml", "log:\n  level: loud\n")

	_, _, err := execute(t, "--config", cfg, "replay", "testdata/tour.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestRootRefusesNonTerminal(t *testing.T) {
	original := termIsTerminal
	t.Cleanup(func() { termIsTerminal = original })
	termIsTerminal = func(int) bool { return false }

	_, _, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestReplayRequiresScriptArgument(t *testing.T) {
	_, _, err := execute(t, "replay")
	require.Error(t, err)
}

func TestReplayExampleScripts(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "scripts", "*"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			_, _, err := execute(t, "replay", path)
			require.NoError(t, err)
		})
	}
}

func TestExampleConfigsLoad(t *testing.T) {
	for _, name := range []string{"navflow.yaml", "navflow.toml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := loadConfig(&rootFlags{configPath: filepath.Join("..", "..", "examples", name)})
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.UI.Theme)
		})
	}
}
