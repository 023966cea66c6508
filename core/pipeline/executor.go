package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/josephlewis42/eggshell/commands"
)

// SpawnError reports an external stage that could not be started.
type SpawnError struct {
	Stage   int // 1-based position in the pipeline
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("stage %d: failed to run '%s': %v", e.Stage, e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Engine runs pipelines. The zero value runs stages with no input and
// discards all output.
type Engine struct {
	// Stdin is given to the first stage. Use an *os.File, usually os.Stdin,
	// so children inherit the terminal.
	Stdin io.Reader
	// Stdout receives the last stage's output.
	Stdout io.Writer
	// Stderr is shared by every stage.
	Stderr io.Writer

	// History returns the session history for the history builtin.
	History func() []string
	// Chdir and HomeDir are used by cd, see commands.Env.
	Chdir   func(dir string) error
	HomeDir func() (string, error)

	// Logger receives debug messages, may be nil.
	Logger *log.Logger
}

// stageIO holds the endpoints wired to one stage. in and pipeOut are owned by
// the stage being dispatched and must be released by it; pipeIn is handed to
// the next stage.
type stageIO struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	in      *os.File // read end of the previous stage's pipe, or nil
	pipeOut *os.File // write end of this stage's output pipe, or nil
	pipeIn  *os.File // read end of this stage's output pipe, or nil
}

func (s *stageIO) closeIn() {
	if s.in != nil {
		s.in.Close()
		s.in = nil
	}
}

func (s *stageIO) closeOut() {
	if s.pipeOut != nil {
		s.pipeOut.Close()
		s.pipeOut = nil
	}
}

func (s *stageIO) closeAll() {
	s.closeIn()
	s.closeOut()
	if s.pipeIn != nil {
		s.pipeIn.Close()
		s.pipeIn = nil
	}
}

// Run executes p and waits for every started stage. Exit statuses of the
// stages are logged but not returned.
//
// If a stage can't be dispatched the remaining stages are not started, the
// stages already running are killed and reaped, and the error is returned.
// Killed stages may be cut off part-way: in "tee log | nosuch", tee can be
// stopped before it has written everything to log.
// A *SpawnError is returned for programs that can't be started and an error
// matching commands.ErrExit when a stage is exit.
func (e *Engine) Run(p *Pipeline) error {
	if p.IsNoop() {
		return nil
	}

	stdout := e.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := e.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	if _, ok := stderr.(*os.File); !ok {
		stderr = &syncWriter{w: stderr}
	}

	var (
		started []Process
		next    *os.File
		runErr  error
	)

	for i, stage := range p.Stages {
		sio := &stageIO{
			stdin:  e.Stdin,
			stdout: stdout,
			stderr: stderr,
		}
		if next != nil {
			sio.stdin = next
			sio.in = next
			next = nil
		}

		if i < len(p.Stages)-1 {
			r, w, err := os.Pipe()
			if err != nil {
				sio.closeAll()
				runErr = fmt.Errorf("stage %d: pipe: %w", i+1, err)
				break
			}
			sio.stdout = w
			sio.pipeOut = w
			sio.pipeIn = r
		}

		proc, err := e.dispatch(i+1, stage, sio)
		if err != nil {
			sio.closeAll()
			runErr = err
			break
		}

		e.logf("stage %d started: %s", i+1, stage)
		started = append(started, proc)
		next = sio.pipeIn
	}

	if next != nil {
		next.Close()
	}

	if runErr != nil {
		e.logf("abandoning pipeline %q: %v", p, runErr)
		for _, proc := range started {
			if child, ok := proc.(*childProcess); ok {
				child.kill()
			}
		}
	}

	for i, proc := range started {
		if err := proc.Wait(); err != nil {
			e.logf("stage %d finished: %v", i+1, err)
		} else {
			e.logf("stage %d finished: ok", i+1)
		}
	}

	return runErr
}

// dispatch starts one stage. On success the stage has taken ownership of
// sio.in and sio.pipeOut.
func (e *Engine) dispatch(n int, stage Stage, sio *stageIO) (Process, error) {
	env := &commands.Env{
		Args:    stage.Tokens(),
		Stdout:  sio.stdout,
		Stderr:  sio.stderr,
		Chdir:   e.Chdir,
		HomeDir: e.HomeDir,
	}

	switch kind := commands.Resolve(stage.Name); kind {
	case commands.Exit:
		return nil, commands.RunExit(env)

	case commands.ChangeDirectory:
		sio.closeIn()
		if err := commands.RunCd(env); err != nil {
			return nil, err
		}
		sio.closeOut()
		return doneProcess{}, nil

	case commands.Echo, commands.History, commands.Help:
		sio.closeIn()
		payload := &bytes.Buffer{}
		env.Stdout = payload
		var status int
		switch kind {
		case commands.Echo:
			status = commands.RunEcho(env)
		case commands.History:
			if e.History != nil {
				env.History = e.History()
			}
			status = commands.RunHistory(env)
		case commands.Help:
			status = commands.RunHelp(env)
		}

		var closer io.Closer
		if sio.pipeOut != nil {
			closer = sio.pipeOut
			sio.pipeOut = nil
		}
		return startWriter(payload.Bytes(), status, sio.stdout, closer), nil

	case commands.External:
		return e.spawn(n, stage, sio)

	default:
		return nil, fmt.Errorf("stage %d: unhandled builtin %v", n, kind)
	}
}

func (e *Engine) spawn(n int, stage Stage, sio *stageIO) (Process, error) {
	cmd := exec.Command(stage.Name, stage.Args...)
	cmd.Stdin = sio.stdin
	cmd.Stdout = sio.stdout
	cmd.Stderr = sio.stderr

	if err := cmd.Start(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			err = execErr.Err
		}
		return nil, &SpawnError{Stage: n, Program: stage.Name, Err: err}
	}

	// The child holds its own copies of the pipe ends.
	sio.closeIn()
	sio.closeOut()
	return &childProcess{cmd: cmd}, nil
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}
