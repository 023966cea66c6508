package pipeline

import (
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// Process is a started pipeline stage. Wait blocks until it finishes and must
// be called exactly once.
type Process interface {
	Wait() error
}

// childProcess is an external program.
type childProcess struct {
	cmd *exec.Cmd
}

func (p *childProcess) Wait() error {
	return p.cmd.Wait()
}

// kill stops a child that is being abandoned. Errors are ignored because the
// child may already have exited.
func (p *childProcess) kill() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

// doneProcess stands in for a builtin that finished synchronously.
type doneProcess struct{}

func (doneProcess) Wait() error { return nil }

// ExitStatus is the non-zero status of a builtin that ran inside a
// pipeline, reported the way exec.ExitError reports a program's.
type ExitStatus int

func (s ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(s))
}

// writerProcess writes a payload from a goroutine, then closes its end of
// the pipe so the reader sees EOF. Writing in the background lets the reading
// stage be started while the payload is larger than the pipe buffer.
type writerProcess struct {
	done chan struct{}
	err  error
}

// startWriter writes payload, the output of a builtin that exited with
// status.
func startWriter(payload []byte, status int, w io.Writer, closer io.Closer) *writerProcess {
	p := &writerProcess{done: make(chan struct{})}
	if status != 0 {
		p.err = ExitStatus(status)
	}

	go func() {
		defer close(p.done)

		if _, err := w.Write(payload); err != nil && p.err == nil {
			p.err = fmt.Errorf("write: %w", err)
		}
		if closer != nil {
			if err := closer.Close(); err != nil && p.err == nil {
				p.err = err
			}
		}
	}()

	return p
}

func (p *writerProcess) Wait() error {
	<-p.done
	return p.err
}

// syncWriter serializes writes from several stages sharing one writer.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(b)
}
