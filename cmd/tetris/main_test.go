package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/settings"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:22":       "22",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		assert.Equal(t, want, port(addr), addr)
	}
}

func TestListPrintsModes(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "tetris_5m")
	assert.Contains(t, out, "5m0s")
	assert.Contains(t, out, "none")
}

func TestSettingsSetAndGet(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tetris.db")

	_, err := execute(t, "settings", "set", "keys.rotate", "x, up", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "settings", "get", "keys.rotate", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "x,up\n", out)

	_, err = execute(t, "settings", "set", "keys.rotate", "q", "--db", db)
	assert.Error(t, err, "quit key cannot be rebound")

	_, err = execute(t, "settings", "get", "nope", "--db", db)
	assert.ErrorContains(t, err, "tetris settings")

	_, err = execute(t, "settings", "reset", "--db", db)
	require.NoError(t, err)
	out, err = execute(t, "settings", "get", "keys.rotate", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "up,w\n", out)
}

func TestSettingsResetRecoversUnreadableValue(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tetris.db")
	store, err := storage.Open(db)
	require.NoError(t, err)
	require.NoError(t, store.Write(settings.KeyShowGhost, "maybe"))
	require.NoError(t, store.Close())

	_, err = execute(t, "settings", "--db", db)
	require.Error(t, err)

	_, err = execute(t, "settings", "reset", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "settings", "get", settings.KeyShowGhost, "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestSettingsSwapSurvivesReload(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tetris.db")

	_, err := execute(t, "settings", "set", "keys.right", "l", "--db", db)
	require.NoError(t, err)
	_, err = execute(t, "settings", "set", "keys.left", "left,d", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "settings", "get", "keys.left", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "left,d\n", out)
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")

	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "board:")

	_, err = execute(t, "config", "init", path)
	assert.Error(t, err)
}

func TestConfigShowAppliesDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "config", "show", "--difficulty", "hard")
	require.NoError(t, err)
	assert.Contains(t, out, "start: 10")

	_, err = execute(t, "config", "show", "--difficulty", "brutal")
	assert.Error(t, err)
	flagDifficulty = ""
}

func TestScoresRejectsUnknownMode(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tetris.db")
	_, err := execute(t, "scores", "nope", "--db", db)
	assert.ErrorContains(t, err, "unknown mode")
}

func TestScoresSummary(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tetris.db")
	out, err := execute(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Tetris (5 min)")
	assert.Contains(t, out, "never")
}
