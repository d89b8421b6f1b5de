package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/mathspeak/internal/common"
	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv points every command at a fresh database through a config file.
type testEnv struct {
	t          *testing.T
	configPath string
	dbPath     string
}

func newTestEnv(t *testing.T, extra string) *testEnv {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "mathspeak.db")
	configPath := filepath.Join(dir, "config.yaml")

	content := fmt.Sprintf("database:\n  path: %s\nlogging:\n  level: error\n%s", dbPath, extra)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return &testEnv{t: t, configPath: configPath, dbPath: dbPath}
}

func (e *testEnv) run(stdin string, args ...string) (string, error) {
	e.t.Helper()
	viper.Reset()
	cfgFile = ""
	settings = nil

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestTranslateCommand(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("", "translate", "5", "less", "than", "x")

	require.NoError(t, err)
	assert.Contains(t, out, "x - 5")
	assert.Contains(t, out, "Try these")
}

func TestTranslateCommand_JSON(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("", "translate", "--json", "--practice", "2", "the sum of 5 and 3")
	require.NoError(t, err)

	var got translateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "5 + 3", got.Result.Plain)
	assert.Equal(t, model.PatternSum, got.Result.PatternID)
	assert.Len(t, got.Practice, 2)
}

func TestTranslateCommand_History(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run("", "translate", "--practice", "0", "twice x")
	require.NoError(t, err)
	_, err = env.run("", "translate", "--no-history", "--practice", "0", "triple y")
	require.NoError(t, err)

	out, err := env.run("", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "twice x")
	assert.NotContains(t, out, "triple y")

	_, err = env.run("", "history", "clear")
	require.NoError(t, err)
	out, err = env.run("", "history")
	require.NoError(t, err)
	assert.NotContains(t, out, "twice x")
}

func TestTranslateCommand_HistoryDisabledByConfig(t *testing.T) {
	env := newTestEnv(t, "history:\n  enabled: false\n")

	_, err := env.run("", "translate", "--practice", "0", "twice x")
	require.NoError(t, err)

	out, err := env.run("", "history")
	require.NoError(t, err)
	assert.NotContains(t, out, "twice x")
}

func TestTranslateCommand_BlankPhrase(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run("", "translate", "   ")

	require.ErrorIs(t, err, common.ErrEmptyPhrase)
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestInteractiveCommand(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("twice x\n\nquit\nthe sum of 1 and 2\n", "interactive")

	require.NoError(t, err)
	assert.Contains(t, out, "2 * x")
	assert.NotContains(t, out, "1 + 2")
}

func TestInteractiveCommand_EOF(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("twice x", "interactive")

	require.NoError(t, err)
	assert.Contains(t, out, "2 * x")
}

func TestPracticeCommand_RecordsAttempts(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("wrong\nskip\nquit\n", "practice", "twice", "--count", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Session complete")

	out, err = env.run("", "stats", "mistakes")
	require.NoError(t, err)
	assert.Contains(t, out, "wrong")

	_, err = env.run("", "stats", "reset")
	require.NoError(t, err)
	out, err = env.run("", "stats", "mistakes")
	require.NoError(t, err)
	assert.Contains(t, out, "No mistakes")
}

func TestPracticeCommand_UnknownPattern(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run("", "practice", "derivative")

	require.ErrorIs(t, err, common.ErrUnknownPattern)
}

func TestInvalidConfig(t *testing.T) {
	env := newTestEnv(t, "practice:\n  default_pattern: derivative\n")

	_, err := env.run("", "stats")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "drillable")
}

func TestPatternsCommands(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("", "patterns")
	require.NoError(t, err)
	assert.Contains(t, out, "less_than")

	out, err = env.run("", "patterns", "test", "the sum of 2 and 3 times 4")
	require.NoError(t, err)
	assert.Contains(t, out, "sum fires")
	assert.Contains(t, out, "times")

	out, err = env.run("", "patterns", "test", "hello world")
	require.NoError(t, err)
	assert.Contains(t, out, "No pattern matches")
}

func TestExamplesCommands(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("", "examples", "--difficulty", "elementary")
	require.NoError(t, err)
	assert.Contains(t, out, "elementary")
	assert.NotContains(t, out, "calculus")

	_, err = env.run("", "examples", "--difficulty", "graduate")
	require.Error(t, err)

	out, err = env.run("", "examples", "check", "--difficulty", "elementary")
	require.NoError(t, err)
	assert.Contains(t, out, "examples match")
}

func TestMigrateCommand(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 2")

	out, err = env.run("", "migrate", "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema version 2 of 2")
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "mathspeak dev")
}

func TestDrillPattern(t *testing.T) {
	assert.Equal(t, model.PatternLessThan,
		drillPattern(model.TranslationResult{PatternID: model.PatternLessThan}, model.PatternSum))
	assert.Equal(t, model.PatternSum,
		drillPattern(model.TranslationResult{PatternID: model.PatternDerivative}, model.PatternSum))
	assert.Equal(t, model.PatternSum,
		drillPattern(model.TranslationResult{PatternID: model.PatternUnknown}, model.PatternSum))
}
