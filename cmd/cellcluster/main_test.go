package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellcluster/archive"
	"github.com/katalvlaran/cellcluster/internal/config"
	"github.com/katalvlaran/cellcluster/summary"
	"github.com/katalvlaran/cellcluster/synth"
)

type cliTestEnv struct {
	configPath string
	archiveDir string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		configPath: filepath.Join(base, "config.toml"),
		archiveDir: filepath.Join(base, "runs"),
		baseDir:    base,
	}
	body := fmt.Sprintf("[archive]\ndir = %q\n\n[logging]\nlevel = \"error\"\n", env.archiveDir)
	require.NoError(t, os.WriteFile(env.configPath, []byte(body), 0o644))

	return env
}

func (e *cliTestEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func (e *cliTestEnv) writeEvent(t *testing.T, name string, seed int) string {
	t.Helper()

	path := filepath.Join(e.baseDir, name)
	_, err := e.run(t, "synth",
		"--samples", "1000",
		"--group", "5:0.15", "--group", "4:0.45", "--group", "3:0.30:-0.05",
		"--seed", fmt.Sprint(seed),
		"--out", path)
	require.NoError(t, err)
	return path
}

var savedRun = regexp.MustCompile(`Saved run ([0-9a-f-]{36})`)

func savedID(t *testing.T, out string) string {
	t.Helper()
	m := savedRun.FindStringSubmatch(out)
	require.NotNil(t, m, "no saved run in %q", out)
	return m[1]
}

func TestRunCommand_JSON(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeEvent(t, "event.csv", 42)

	out, err := env.run(t, "run", path, "--k", "3", "--json", "--highlight", "1,12")
	require.NoError(t, err)

	var payload struct {
		Input    string          `json:"input"`
		Channels int             `json:"channels"`
		Samples  int             `json:"samples"`
		Summary  summary.Summary `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(strings.NewReader(out)).Decode(&payload))
	assert.Equal(t, path, payload.Input)
	assert.Equal(t, 12, payload.Channels)
	assert.Equal(t, 650, payload.Samples)
	recs := payload.Summary.Records()
	require.Len(t, recs, 3)
	assert.Equal(t, []int{5, 4, 3}, []int{recs[0].Size, recs[1].Size, recs[2].Size})
	assert.Equal(t, "1", string(recs[0].Highlight[0]))
	assert.Equal(t, "12", string(recs[2].Highlight[0]))
}

func TestRunCommand_TableAndExtremes(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeEvent(t, "event.csv", 7)

	out, err := env.run(t, "run", path, "--k", "3", "--method", "average", "--extremes", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "12 channels, 650 samples, 3 clusters")
	assert.Contains(t, out, "Members")
	assert.Contains(t, out, "Lowest:")
	assert.Contains(t, out, "Highest:")
	assert.NotContains(t, out, "Saved run")
}

func TestRunCommand_Errors(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeEvent(t, "event.csv", 1)

	_, err := env.run(t, "run", path, "--method", "nearest")
	assert.Error(t, err)
	_, err = env.run(t, "run", path, "--k", "13")
	assert.Error(t, err)
	_, err = env.run(t, "run", filepath.Join(env.baseDir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = env.run(t, "run")
	assert.Error(t, err)
}

func TestArchiveWorkflow(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeEvent(t, "event.csv", 42)

	out, err := env.run(t, "run", path, "--k", "3", "--save", "single")
	require.NoError(t, err)
	idSingle := savedID(t, out)

	out, err = env.run(t, "run", path, "--k", "3", "--method", "ward", "--save", "ward")
	require.NoError(t, err)
	idWard := savedID(t, out)

	out, err = env.run(t, "runs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, idSingle)
	assert.Contains(t, out, idWard)
	assert.Less(t, strings.Index(out, idWard), strings.Index(out, idSingle), "newest first")

	out, err = env.run(t, "runs", "show", idWard)
	require.NoError(t, err)
	assert.Contains(t, out, "ward on euclidean, k=3")

	out, err = env.run(t, "runs", "show", idSingle, "--json")
	require.NoError(t, err)
	var run archive.Run
	require.NoError(t, json.Unmarshal([]byte(out), &run))
	assert.Equal(t, "single", run.Label)
	assert.Equal(t, 3, run.Summary.Len())

	out, err = env.run(t, "compare", idSingle, idWard)
	require.NoError(t, err)
	assert.Contains(t, out, "Best match")
	assert.Equal(t, 3, strings.Count(out, "1.000"), "both methods recover the same groups")

	out, err = env.run(t, "compare", idSingle, idWard, "--grid")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "1.000"), "grid diagonal plus best matches")

	_, err = env.run(t, "runs", "delete", idSingle)
	require.NoError(t, err)
	_, err = env.run(t, "runs", "show", idSingle)
	assert.ErrorIs(t, err, archive.ErrNotFound)
	_, err = env.run(t, "compare", idSingle, idWard)
	assert.ErrorIs(t, err, archive.ErrNotFound)
}

func TestRunCommand_BatchSave(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.writeEvent(t, "a.csv", 3)
	b := env.writeEvent(t, "b.csv", 4)

	out, err := env.run(t, "run", a, b, "--k", "3", "--save", "batch")
	require.NoError(t, err)
	assert.Equal(t, 2, len(savedRun.FindAllString(out, -1)))
	assert.Contains(t, out, "(batch:a.csv)")
	assert.Contains(t, out, "(batch:b.csv)")
}

func TestConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := env.run(t, "config", "init", "--print")
	require.NoError(t, err)
	assert.Equal(t, config.Sample(), out)

	target := filepath.Join(env.baseDir, "nested", "config.toml")
	_, err = env.run(t, "config", "init", "--path", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, config.Sample(), string(data))

	_, err = env.run(t, "config", "init", "--path", target)
	assert.ErrorContains(t, err, "already exists")
	_, err = env.run(t, "config", "init", "--path", target, "--overwrite")
	assert.NoError(t, err)

	out, err = env.run(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, env.archiveDir)
	assert.Contains(t, out, "Configuration valid")
}

func TestInvalidConfigFails(t *testing.T) {
	env := setupCLITestEnv(t)
	require.NoError(t, os.WriteFile(env.configPath, []byte("[cluster]\nmethod = \"nearest\"\n"), 0o644))

	_, err := env.run(t, "runs", "list")
	assert.Error(t, err)
	_, err = env.run(t, "config", "init", "--print")
	assert.NoError(t, err, "init skips config loading")
}

func TestParseGroups(t *testing.T) {
	groups, err := parseGroups([]string{"3:0.2", "2:0.4:-0.1:0.05"})
	require.NoError(t, err)
	assert.Equal(t, []synth.Group{
		{Size: 3, Depth: 0.2},
		{Size: 2, Depth: 0.4, Offset: -0.1, Delay: 0.05},
	}, groups)

	for _, bad := range []string{"3", "x:0.1", "3:y", "1:2:3:4:5"} {
		_, err := parseGroups([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"x"}, {"y", "z"}}, []columnAlignment{alignLeft, alignRight}, false)
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "z")
	assert.Empty(t, renderTable(nil, nil, nil, false))
	assert.False(t, shouldColorize(&bytes.Buffer{}))
}
