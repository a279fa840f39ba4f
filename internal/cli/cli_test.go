package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/factsphere/internal/app"
	"github.com/heartmarshall/factsphere/internal/client/render"
	"github.com/heartmarshall/factsphere/internal/domain"
)

// writeConfig creates a config file pointing at a fresh sqlite store.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("store:\n  backend: sqlite\nsqlite:\n  path: %q\nlog:\n  level: error\n",
		filepath.Join(dir, "facts.db"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func submitFact(t *testing.T, cfg, text, category string) domain.Fact {
	t.Helper()
	out, err := execute(t, "", "--config", cfg, "--format", "json",
		"submit", "--text", text, "--source", "https://example.com", "--category", category)
	require.NoError(t, err)
	var f domain.Fact
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	return f
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"list", "submit", "vote", "categories", "shell", "serve", "migrate", "version"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "format", "no-color", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "", "--format", "xml", "categories")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootCommand_MissingConfig(t *testing.T) {
	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "list")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCategories(t *testing.T) {
	out, err := execute(t, "", "--no-color", "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "technology")
	assert.Contains(t, out, "funny")

	out, err = execute(t, "", "--format", "json", "categories")
	require.NoError(t, err)
	var cats []categoryResult
	require.NoError(t, json.Unmarshal([]byte(out), &cats))
	require.Len(t, cats, len(domain.Categories()))
	assert.Equal(t, categoryResult{Name: "technology", Color: "#3b82f6"}, cats[0])
}

func TestList_EmptyStore(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "", "--config", cfg, "--no-color", "list")

	require.NoError(t, err)
	assert.Contains(t, out, render.MsgEmpty)
}

func TestList_UnknownCategory(t *testing.T) {
	cfg := writeConfig(t)

	_, err := execute(t, "", "--config", cfg, "list", "--category", "sports")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSubmitThenList(t *testing.T) {
	cfg := writeConfig(t)

	created := submitFact(t, cfg, "Water boils at 100C", "science")
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.CategoryScience, created.Category)

	out, err := execute(t, "", "--config", cfg, "--format", "json", "list")
	require.NoError(t, err)

	var res listResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, domain.CategoryAll, res.Category)
	require.Len(t, res.Facts, 1)
	f := res.Facts[0]
	assert.Equal(t, created.ID, f.ID)
	assert.Equal(t, "Water boils at 100C", f.Text)
	assert.Zero(t, f.VotesInteresting)
	assert.Zero(t, f.VotesMindblowing)
	assert.Zero(t, f.VotesFalse)

	out, err = execute(t, "", "--config", cfg, "--format", "json", "list", "--category", "history")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Facts)
}

func TestList_YAML(t *testing.T) {
	cfg := writeConfig(t)
	submitFact(t, cfg, "Octopuses have three hearts", "science")

	out, err := execute(t, "", "--config", cfg, "--format", "yaml", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "category: all")
	assert.Contains(t, out, "text: Octopuses have three hearts")
}

func TestSubmit_InvalidDraft(t *testing.T) {
	cfg := writeConfig(t)

	_, err := execute(t, "", "--config", cfg, "submit",
		"--text", "Water boils at 100C", "--source", "ftp://example.com", "--category", "science")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), render.MsgInvalidDraft)

	out, err := execute(t, "", "--config", cfg, "--no-color", "list")
	require.NoError(t, err)
	assert.Contains(t, out, render.MsgEmpty)
}

func TestVote(t *testing.T) {
	cfg := writeConfig(t)
	created := submitFact(t, cfg, "Bananas are berries", "science")

	out, err := execute(t, "", "--config", cfg, "--format", "json", "vote", fmt.Sprint(created.ID), "interesting")
	require.NoError(t, err)

	var updated domain.Fact
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, 1, updated.VotesInteresting)
	assert.Zero(t, updated.VotesMindblowing)
	assert.Equal(t, created.Text, updated.Text)

	_, err = execute(t, "", "--config", cfg, "vote", fmt.Sprint(created.ID), "votesInteresting")
	require.NoError(t, err)

	out, err = execute(t, "", "--config", cfg, "--format", "json", "list")
	require.NoError(t, err)
	var res listResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Facts, 1)
	assert.Equal(t, 2, res.Facts[0].VotesInteresting)
}

func TestVote_BadInput(t *testing.T) {
	cfg := writeConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"non-numeric id", []string{"vote", "abc", "interesting"}},
		{"zero id", []string{"vote", "0", "interesting"}},
		{"unknown kind", []string{"vote", "1", "boring"}},
		{"unknown fact", []string{"vote", "999", "false"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", append([]string{"--config", cfg}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestMigrate(t *testing.T) {
	cfg := writeConfig(t)

	_, err := execute(t, "", "--config", cfg, "migrate", "up")
	require.NoError(t, err)

	out, err := execute(t, "", "--config", cfg, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "00001_create_facts.sql")

	_, err = execute(t, "", "--config", cfg, "migrate", "sideways")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "factsphere dev")

	out, err = execute(t, "", "--format", "json", "version")
	require.NoError(t, err)
	var v app.Info
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "factsphere", v.Name)
	assert.Equal(t, "dev", v.Version)
}
