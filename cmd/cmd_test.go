package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/umlstudy/internal/chapters"
)

// execute runs the root command with args in an isolated directory and
// returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithEnv(t, nil, args...)
}

// executeWithEnv is execute with extra environment variables, applied after
// the defaults so they can override them.
func executeWithEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("UMLSTUDY_LOG_LEVEL", "disabled")
	t.Setenv("UMLSTUDY_LANGUAGE", "en")
	for k, val := range env {
		t.Setenv(k, val)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := executeContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag of c and its children to its default.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestLogFileClosedWhenCommandFails(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "umlstudy.log")

	_, err := executeWithEnv(t, map[string]string{
		"UMLSTUDY_LOG_LEVEL": "info",
		"UMLSTUDY_LOG_FILE":  logFile,
	}, "chapters", "show", "no-such-chapter")
	require.Error(t, err)

	assert.FileExists(t, logFile)
	assert.Nil(t, logCloser)
}

func TestLogFileClosedAfterSuccess(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "umlstudy.log")

	_, err := executeWithEnv(t, map[string]string{
		"UMLSTUDY_LOG_LEVEL": "info",
		"UMLSTUDY_LOG_FILE":  logFile,
	}, "version")
	require.NoError(t, err)

	assert.FileExists(t, logFile)
	assert.Nil(t, logCloser)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "umlstudy "+version)
}

func TestChaptersList(t *testing.T) {
	out, err := execute(t, "chapters", "list")
	require.NoError(t, err)
	for _, id := range chapters.IDs() {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "7 chapters")
}

func TestChaptersShow(t *testing.T) {
	ch, err := chapters.ByID("sequence-diagrams")
	require.NoError(t, err)

	out, err := execute(t, "chapters", "show", "sequence-diagrams")
	require.NoError(t, err)
	assert.Contains(t, out, ch.Title.EN)
	assert.Contains(t, out, ch.Sections[0].Heading.EN)
}

func TestChaptersShowInFrench(t *testing.T) {
	ch, err := chapters.ByID("introduction")
	require.NoError(t, err)

	out, err := execute(t, "--lang", "fr", "chapters", "show", "introduction")
	require.NoError(t, err)
	assert.Contains(t, out, ch.Title.FR)
}

func TestChaptersShowUnknown(t *testing.T) {
	_, err := execute(t, "chapters", "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class-diagrams")
}

func TestBankListCategory(t *testing.T) {
	out, err := execute(t, "bank", "list", "--category", "class-diagrams")
	require.NoError(t, err)
	assert.Contains(t, out, "class-diagrams")
	assert.NotContains(t, out, "state-machine-diagrams")
}

func TestBankListUnknownCategory(t *testing.T) {
	_, err := execute(t, "bank", "list", "--category", "nope")
	assert.Error(t, err)
}

func TestBankValidateBundled(t *testing.T) {
	out, err := execute(t, "bank", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "ok    bundled:en")
	assert.Contains(t, out, "ok    bundled:fr")
}

func TestBankValidateFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`[
  {"id": 1, "category": "introduction", "prompt": "What does UML stand for?",
   "options": ["Unified Modeling Language", "Universal Markup Language", "Unified Method Library", "User Model Link"],
   "correctOptionIndex": 0, "explanation": "It is the Unified Modeling Language."}
]`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`[
  {"id": 1, "category": "introduction", "prompt": "Pick one",
   "options": ["a", "b", "c", "d"], "correctOptionIndex": 0, "explanation": "a"},
  {"id": 1, "category": "introduction", "prompt": "Pick another",
   "options": ["a", "b", "c", "d"], "correctOptionIndex": 1, "explanation": "b"}
]`), 0o644))

	out, err := execute(t, "bank", "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, "ok    "+good)
	assert.Contains(t, out, "FAIL  "+bad)
	assert.Contains(t, out, "duplicate id")
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestCheckCategory(t *testing.T) {
	assert.NoError(t, checkCategory(""))
	assert.NoError(t, checkCategory("activity-diagrams"))
	assert.Error(t, checkCategory("Activity"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
