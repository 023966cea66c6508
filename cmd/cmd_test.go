package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuiltinsCmd(t *testing.T) {
	stdout, _, err := execute(t, "builtins")
	require.NoError(t, err)
	assert.Equal(t, "cd\necho\neggxit\nexit\nhelp\nhistory\n", stdout)
}

func TestInitCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "eggshell")

	_, stderr, err := execute(t, "init", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, filepath.Join(dir, "config.yaml"))
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	_, _, err = execute(t, "init", "--config", dir)
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "--config", t.TempDir(), "extra")
	assert.Error(t, err)
}
