// Package lineedit implements a raw-mode line editor with history recall.
package lineedit

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/eggshell/core/history"
	"github.com/josephlewis42/eggshell/core/terminal"
)

// ErrInterrupt is returned when the user presses Ctrl-C. The partial line is
// discarded.
var ErrInterrupt = readline.ErrInterrupt

const (
	eraseLine = "\x1b[2K"
	newline   = "\r\n"
)

var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")

// LineEditor reads one line of input.
type LineEditor interface {
	EditLine(prompt string, hist *history.Store) (string, error)
}

// KeySource produces key events, see terminal.KeyReader.
type KeySource interface {
	ReadKey() (terminal.Key, error)
}

// Editor edits a line on a terminal in character mode.
type Editor struct {
	term terminal.Terminal
	keys KeySource
	out  io.Writer
}

var _ LineEditor = (*Editor)(nil)

// New creates an editor that reads keys from keys and renders to out. The
// terminal is switched to character mode for the duration of each EditLine.
func New(term terminal.Terminal, keys KeySource, out io.Writer) *Editor {
	return &Editor{term: term, keys: keys, out: out}
}

// EditLine shows prompt and edits a line until Enter or Escape, returning the
// buffer. Up and Down recall entries from hist.
//
// Ctrl-C returns ErrInterrupt and Ctrl-D on an empty line returns io.EOF.
// The terminal's line mode is restored before EditLine returns.
func (e *Editor) EditLine(prompt string, hist *history.Store) (line string, err error) {
	if err := e.term.EnableCharacterMode(); err != nil {
		return "", err
	}
	defer func() {
		if restoreErr := e.term.RestoreLineMode(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	if _, err := io.WriteString(e.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	buf := &Buffer{}
	rc := newRecall(hist.Snapshot())

	for {
		key, err := e.keys.ReadKey()
		if err != nil {
			return "", fmt.Errorf("read key: %w", err)
		}

		switch key.Kind {
		case terminal.KeyRune:
			r := key.Rune
			if key.Mod&terminal.ModShift != 0 {
				r = unicode.ToUpper(r)
			}
			buf.Insert(r)
			rc.reset()
		case terminal.KeyBackspace:
			buf.Backspace()
		case terminal.KeyLeft:
			buf.Left()
		case terminal.KeyRight:
			buf.Right()
		case terminal.KeyHome:
			buf.Home()
		case terminal.KeyEnd:
			buf.End()
		case terminal.KeyUp:
			if entry, ok := rc.up(buf.Runes()); ok {
				buf.Replace(entry)
			}
		case terminal.KeyDown:
			if entry, ok := rc.down(); ok {
				buf.Replace(entry)
			}
		case terminal.KeyEnter, terminal.KeyEscape:
			return buf.String(), e.finish()
		case terminal.KeyInterrupt:
			if err := e.finish(); err != nil {
				return "", err
			}
			return "", ErrInterrupt
		case terminal.KeyEOF:
			if buf.Len() == 0 {
				if err := e.finish(); err != nil {
					return "", err
				}
				return "", io.EOF
			}
		}

		if err := e.redraw(prompt, buf); err != nil {
			return "", err
		}
	}
}

// redraw repaints the whole line and puts the cursor back in place.
func (e *Editor) redraw(prompt string, buf *Buffer) error {
	_, err := io.WriteString(e.out, Render(prompt, buf))
	if err != nil {
		return fmt.Errorf("redraw: %w", err)
	}
	return nil
}

func (e *Editor) finish() error {
	if _, err := io.WriteString(e.out, newline); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

// Render returns the escape sequence that clears the current terminal line,
// prints prompt and the buffer, then moves the cursor to the buffer's cursor.
func Render(prompt string, buf *Buffer) string {
	var sb strings.Builder
	sb.WriteString("\r")
	sb.WriteString(eraseLine)
	sb.WriteString(prompt)
	sb.WriteString(buf.String())

	// Columns are 1-based in CHA.
	column := DisplayWidth(prompt) + readline.Runes{}.WidthAll(buf.Runes()[:buf.Cursor()]) + 1
	fmt.Fprintf(&sb, "\x1b[%dG", column)
	return sb.String()
}

// DisplayWidth returns the number of terminal cells s occupies, ignoring ANSI
// control sequences such as colors. Wide runes take two cells.
func DisplayWidth(s string) int {
	return readline.Runes{}.WidthAll([]rune(ansiSequence.ReplaceAllString(s, "")))
}

// Plain reads newline terminated lines, for input that isn't a terminal.
type Plain struct {
	in  *bufio.Reader
	out io.Writer
}

var _ LineEditor = (*Plain)(nil)

// NewPlain creates a line reader over in that writes prompts to out.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{in: bufio.NewReader(in), out: out}
}

// EditLine prints the prompt and returns the next line without its line
// ending. History is not used.
func (p *Plain) EditLine(prompt string, _ *history.Store) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
