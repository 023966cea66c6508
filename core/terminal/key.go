package terminal

import "fmt"

// KeyKind identifies a decoded key press.
type KeyKind int

const (
	// KeyOther is any key the line editor ignores.
	KeyOther KeyKind = iota
	// KeyRune is a printable character, stored in Key.Rune.
	KeyRune
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	// KeyInterrupt is Ctrl-C.
	KeyInterrupt
	// KeyEOF is Ctrl-D.
	KeyEOF
)

var keyNames = map[KeyKind]string{
	KeyOther:     "Other",
	KeyRune:      "Rune",
	KeyBackspace: "Backspace",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyInterrupt: "Interrupt",
	KeyEOF:       "EOF",
}

func (k KeyKind) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyKind(%d)", int(k))
}

// Mod is a set of modifier keys held during a key press.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// Key is a single key event read from the terminal.
type Key struct {
	Kind KeyKind
	Rune rune
	Mod  Mod
}

// Char builds a printable character event.
func Char(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// Shifted builds a printable character event with shift held.
func Shifted(r rune) Key {
	return Key{Kind: KeyRune, Rune: r, Mod: ModShift}
}

// Special builds a non-character event.
func Special(kind KeyKind) Key {
	return Key{Kind: kind}
}

func (k Key) String() string {
	if k.Kind == KeyRune {
		return fmt.Sprintf("Rune(%q)", k.Rune)
	}
	return k.Kind.String()
}
