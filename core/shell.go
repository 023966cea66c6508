package core

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/josephlewis42/eggshell/commands"
	"github.com/josephlewis42/eggshell/core/config"
	"github.com/josephlewis42/eggshell/core/history"
	"github.com/josephlewis42/eggshell/core/lineedit"
	"github.com/josephlewis42/eggshell/core/pipeline"
	"github.com/josephlewis42/eggshell/core/terminal"
	"golang.org/x/term"
)

// Shell is the interactive read-eval loop.
type Shell struct {
	Config  *config.Configuration
	Editor  lineedit.LineEditor
	Engine  *pipeline.Engine
	History *history.Store

	Stdout io.Writer
	Stderr io.Writer
	Color  *ColorPrinter

	// Getwd and UserHomeDir feed the prompt.
	Getwd       func() (string, error)
	UserHomeDir func() (string, error)

	Logger *log.Logger
}

// NewShell wires a shell to the process's standard streams. A stdin that
// isn't a terminal is read line by line without editing.
func NewShell(cfg *config.Configuration, stdin, stdout, stderr *os.File, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var editor lineedit.LineEditor
	if tty := terminal.NewTTY(stdin); tty.IsTerminal() {
		editor = lineedit.New(tty, terminal.NewKeyReader(stdin), stdout)
	} else {
		logger.Printf("stdin is not a terminal, line editing disabled")
		editor = lineedit.NewPlain(stdin, stdout)
	}

	hist := history.New()

	return &Shell{
		Config:  cfg,
		Editor:  editor,
		History: hist,
		Engine: &pipeline.Engine{
			Stdin:   stdin,
			Stdout:  stdout,
			Stderr:  stderr,
			History: hist.Snapshot,
			HomeDir: cfg.HomeDir,
			Logger:  logger,
		},
		Stdout:      stdout,
		Stderr:      stderr,
		Color:       NewColorPrinter(cfg.UseColor(term.IsTerminal(int(stderr.Fd())))),
		Getwd:       os.Getwd,
		UserHomeDir: os.UserHomeDir,
		Logger:      logger,
	}
}

// Run reads and executes lines until the user exits or input ends, and
// returns the process exit code.
func (s *Shell) Run() int {
	if s.Config.Welcome != "" {
		fmt.Fprintln(s.Stdout, s.Config.Welcome)
	}

	for {
		line, err := s.Editor.EditLine(s.prompt(), s.History)

		switch {
		case errors.Is(err, io.EOF):
			s.farewell()
			return 0

		case errors.Is(err, lineedit.ErrInterrupt):
			s.logf("interrupt")
			continue

		case err != nil:
			fmt.Fprintln(s.Stderr, s.Color.Errorf("eggshell: %v", err))
			return 1
		}

		s.History.Append(line)

		if code, exit := s.execute(line); exit {
			return code
		}
	}
}

// execute runs one line, it reports whether the shell should exit.
func (s *Shell) execute(line string) (int, bool) {
	p, err := pipeline.Parse(line)
	if err != nil {
		fmt.Fprintln(s.Stderr, s.Color.Errorf("eggshell: syntax error: %v", err))
		return 0, false
	}

	err = s.Engine.Run(p)

	var exitReq *commands.ExitRequest
	switch {
	case errors.As(err, &exitReq):
		s.farewell()
		return exitReq.Code, true

	case err != nil:
		fmt.Fprintln(s.Stderr, s.Color.Errorf("🥴 Error in pipeline: %v", err))
	}

	return 0, false
}

func (s *Shell) prompt() string {
	dir, err := s.Getwd()
	if err != nil {
		s.logf("getwd: %v", err)
	}
	home, _ := s.UserHomeDir()

	return s.Color.Prompt(Prompt(dir, home, s.Config.PromptDepth))
}

func (s *Shell) farewell() {
	if s.Config.Farewell != "" {
		fmt.Fprintln(s.Stdout, s.Config.Farewell)
	}
}

func (s *Shell) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
