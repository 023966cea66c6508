package core

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/josephlewis42/eggshell/core/config"
	"github.com/josephlewis42/eggshell/core/history"
	"github.com/josephlewis42/eggshell/core/lineedit"
	"github.com/josephlewis42/eggshell/core/pipeline"
	"github.com/stretchr/testify/assert"
)

type editResult struct {
	line string
	err  error
}

// scriptedEditor replays canned results, then reports EOF.
type scriptedEditor struct {
	results []editResult
	prompts []string
}

func (e *scriptedEditor) EditLine(prompt string, _ *history.Store) (string, error) {
	e.prompts = append(e.prompts, prompt)
	if len(e.results) == 0 {
		return "", io.EOF
	}
	next := e.results[0]
	e.results = e.results[1:]
	return next.line, next.err
}

func lines(ls ...string) []editResult {
	var out []editResult
	for _, l := range ls {
		out = append(out, editResult{line: l})
	}
	return out
}

type testShell struct {
	*Shell
	editor *scriptedEditor
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestShell(results []editResult) *testShell {
	cfg := config.Default()
	cfg.Welcome = "hello"
	cfg.Farewell = "bye"

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	editor := &scriptedEditor{results: results}
	hist := history.New()

	return &testShell{
		Shell: &Shell{
			Config:  cfg,
			Editor:  editor,
			History: hist,
			Engine: &pipeline.Engine{
				Stdout:  stdout,
				Stderr:  stderr,
				History: hist.Snapshot,
			},
			Stdout:      stdout,
			Stderr:      stderr,
			Color:       NewColorPrinter(false),
			Getwd:       func() (string, error) { return "/home/egg/src", nil },
			UserHomeDir: func() (string, error) { return "/home/egg", nil },
		},
		editor: editor,
		stdout: stdout,
		stderr: stderr,
	}
}

func TestShell_EOF(t *testing.T) {
	s := newTestShell(nil)

	assert.Equal(t, 0, s.Run())
	assert.Equal(t, "hello\nbye\n", s.stdout.String())
	assert.Equal(t, []string{"~/src>"}, s.editor.prompts)
}

func TestShell_Echo(t *testing.T) {
	s := newTestShell(lines("echo one", "", "echo two"))

	assert.Equal(t, 0, s.Run())
	assert.Equal(t, "hello\none\ntwo\nbye\n", s.stdout.String())
	assert.Empty(t, s.stderr.String())
	assert.Equal(t, []string{"echo one", "", "echo two"}, s.History.Snapshot())
}

func TestShell_Exit(t *testing.T) {
	for _, name := range []string{"exit", "eggxit"} {
		t.Run(name, func(t *testing.T) {
			s := newTestShell(lines("echo before", name+" 7", "echo after"))

			assert.Equal(t, 7, s.Run())
			assert.Equal(t, "hello\nbefore\nbye\n", s.stdout.String())
			assert.Equal(t, []string{"echo before", name + " 7"}, s.History.Snapshot())
			assert.Len(t, s.editor.results, 1)
		})
	}
}

func TestShell_Interrupt(t *testing.T) {
	s := newTestShell([]editResult{
		{line: "echo disc", err: lineedit.ErrInterrupt},
		{line: "echo kept"},
	})

	assert.Equal(t, 0, s.Run())
	assert.Equal(t, []string{"echo kept"}, s.History.Snapshot())
	assert.Equal(t, "hello\nkept\nbye\n", s.stdout.String())
}

func TestShell_SyntaxError(t *testing.T) {
	s := newTestShell(lines("echo a | | echo b", "echo fine"))

	assert.Equal(t, 0, s.Run())
	assert.Equal(t, "eggshell: syntax error: stage 2: empty command in pipeline\n", s.stderr.String())
	assert.Equal(t, "hello\nfine\nbye\n", s.stdout.String())
}

func TestShell_SpawnError(t *testing.T) {
	s := newTestShell(lines("eggshell-no-such-program | echo later"))

	assert.Equal(t, 0, s.Run())
	assert.Equal(t,
		"🥴 Error in pipeline: stage 1: failed to run 'eggshell-no-such-program': executable file not found in $PATH\n",
		s.stderr.String())
	assert.Equal(t, "hello\nbye\n", s.stdout.String())
	assert.Len(t, s.editor.prompts, 2)
}

func TestShell_InputError(t *testing.T) {
	s := newTestShell([]editResult{{err: errors.New("read key: broken")}})

	assert.Equal(t, 1, s.Run())
	assert.Equal(t, "eggshell: read key: broken\n", s.stderr.String())
	assert.Equal(t, "hello\n", s.stdout.String())
}

func TestShell_HistoryIncludesCurrentLine(t *testing.T) {
	s := newTestShell(lines("echo a", "history"))

	assert.Equal(t, 0, s.Run())
	assert.Equal(t, "hello\na\n    1  echo a\n    2  history\nbye\n", s.stdout.String())
}

func TestShell_NoBanner(t *testing.T) {
	s := newTestShell(nil)
	s.Config.Welcome = ""
	s.Config.Farewell = ""

	assert.Equal(t, 0, s.Run())
	assert.Empty(t, s.stdout.String())
}

func TestShell_PromptDepth(t *testing.T) {
	s := newTestShell(nil)
	s.Config.PromptDepth = 1
	s.Getwd = func() (string, error) { return "/srv/eggs/carton", nil }

	s.Run()
	assert.Equal(t, []string{"carton>"}, s.editor.prompts)
}
