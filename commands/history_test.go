package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func runBuiltin(fn func(*Env) int, args []string, history []string) (int, string, string) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := fn(&Env{Args: args, History: history, Stdout: stdout, Stderr: stderr})
	return code, stdout.String(), stderr.String()
}

func TestRunHistory(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir(filepath.Join("testdata", "golden")))
	hist := []string{"ls -la", "cd /tmp", "echo hello world | wc -w", "history"}

	cases := map[string][]string{
		"history-all":    {"history"},
		"history-last-2": {"history", "-n", "2"},
		"history-over":   {"history", "-n", "10"},
		"history-long":   {"history", "--count=1"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := runBuiltin(RunHistory, args, hist)
			assert.Equal(t, 0, code)
			assert.Empty(t, stderr)
			g.Assert(t, name, []byte(stdout))
		})
	}
}

func TestRunHistory_Errors(t *testing.T) {
	code, stdout, stderr := runBuiltin(RunHistory, []string{"history", "--count=-1"}, []string{"ls"})
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "history: -1: invalid count\n", stderr)

	code, _, stderr = runBuiltin(RunHistory, []string{"history", "-x"}, nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "usage: history [-n COUNT]")
}

func TestRunHistory_Help(t *testing.T) {
	code, stdout, _ := runBuiltin(RunHistory, []string{"history", "--help"}, []string{"ls"})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Display the history list with line numbers.")
	assert.NotContains(t, stdout, "    1  ls")
}

func TestRunHelp(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir(filepath.Join("testdata", "golden")))

	code, stdout, _ := runBuiltin(RunHelp, []string{"help"}, nil)
	assert.Equal(t, 0, code)
	g.Assert(t, "help", []byte(stdout))
}
