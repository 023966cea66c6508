// Package terminal provides character-at-a-time access to the controlling
// terminal and decodes its input into key events.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal toggles a terminal between character mode and line mode.
//
// Every successful EnableCharacterMode must be paired with a RestoreLineMode.
type Terminal interface {
	EnableCharacterMode() error
	RestoreLineMode() error
}

// TTY is a Terminal backed by a file descriptor.
type TTY struct {
	fd    int
	saved *term.State
}

var _ Terminal = (*TTY)(nil)

// NewTTY creates a Terminal for f, which is usually os.Stdin.
func NewTTY(f *os.File) *TTY {
	return &TTY{fd: int(f.Fd())}
}

// IsTerminal reports whether the descriptor refers to a terminal.
func (t *TTY) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// EnableCharacterMode switches the terminal to raw mode, saving the previous
// state. Calling it again before RestoreLineMode is a no-op.
func (t *TTY) EnableCharacterMode() error {
	if t.saved != nil {
		return nil
	}

	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enable character mode: %w", err)
	}
	t.saved = state
	return nil
}

// RestoreLineMode puts back the state saved by EnableCharacterMode.
func (t *TTY) RestoreLineMode() error {
	if t.saved == nil {
		return nil
	}

	state := t.saved
	t.saved = nil
	if err := term.Restore(t.fd, state); err != nil {
		return fmt.Errorf("restore line mode: %w", err)
	}
	return nil
}

// Nop is a Terminal that does nothing, for input that isn't a terminal.
type Nop struct{}

func (Nop) EnableCharacterMode() error { return nil }
func (Nop) RestoreLineMode() error     { return nil }
