package terminal

import (
	"errors"
	"io"
	"time"
	"unicode/utf8"

	"github.com/abiosoft/readline"
)

// SeqTimeout bounds the wait for the rest of an escape sequence. Terminals
// send a sequence in one burst, but the burst can be split across reads.
const SeqTimeout = 10 * time.Millisecond

// KeyReader decodes bytes from a terminal in character mode into key events.
type KeyReader struct {
	rd         byteReaderWithTimeout
	seqTimeout time.Duration
	pending    []byte
}

// NewKeyReader wraps r. The reader should be the terminal's input in
// character-at-a-time mode.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{rd: newByteReader(r), seqTimeout: SeqTimeout}
}

func (kr *KeyReader) readByte(timeout time.Duration) (byte, error) {
	if len(kr.pending) > 0 {
		b := kr.pending[0]
		kr.pending = kr.pending[1:]
		return b, nil
	}
	return kr.rd.ReadByteWithTimeout(timeout)
}

// readSeqByte reads the next byte of a sequence that has already started.
func (kr *KeyReader) readSeqByte() (byte, error) {
	return kr.readByte(kr.seqTimeout)
}

func (kr *KeyReader) unread(b ...byte) {
	kr.pending = append(append([]byte{}, b...), kr.pending...)
}

// ReadKey blocks until the next key event is available.
func (kr *KeyReader) ReadKey() (Key, error) {
	b, err := kr.readByte(-1)
	if err != nil {
		return Key{}, err
	}

	switch b {
	case readline.CharEnter, readline.CharCtrlJ:
		return Special(KeyEnter), nil
	case readline.CharBackspace, readline.CharCtrlH:
		return Special(KeyBackspace), nil
	case readline.CharInterrupt:
		return Special(KeyInterrupt), nil
	case readline.CharDelete:
		return Special(KeyEOF), nil
	case readline.CharLineStart:
		return Special(KeyHome), nil
	case readline.CharLineEnd:
		return Special(KeyEnd), nil
	case readline.CharBackward:
		return Special(KeyLeft), nil
	case readline.CharForward:
		return Special(KeyRight), nil
	case readline.CharPrev:
		return Special(KeyUp), nil
	case readline.CharNext:
		return Special(KeyDown), nil
	case readline.CharEsc:
		return kr.readEscape()
	}

	if b < 0x20 {
		return Special(KeyOther), nil
	}
	return kr.readRune(b), nil
}

// readRune completes the UTF-8 encoding that starts with lead.
func (kr *KeyReader) readRune(lead byte) Key {
	enc := []byte{lead}
	for !utf8.FullRune(enc) {
		b, err := kr.readSeqByte()
		if err != nil {
			break
		}
		enc = append(enc, b)
	}

	r, size := utf8.DecodeRune(enc)
	if size < len(enc) {
		kr.unread(enc[size:]...)
	}
	if r == utf8.RuneError && size <= 1 {
		return Special(KeyOther)
	}
	return Char(r)
}

// readEscape decodes the rest of a sequence that started with ESC. An ESC
// that isn't followed by another byte within the sequence timeout is a lone
// Escape press.
func (kr *KeyReader) readEscape() (Key, error) {
	next, err := kr.readSeqByte()
	if err != nil {
		return Special(KeyEscape), nil
	}

	switch next {
	case readline.CharEscapeEx:
		return kr.readCSI()
	case 'O':
		final, err := kr.readSeqByte()
		if err != nil {
			return seqError(err)
		}
		return finalKey(final, nil), nil
	default:
		kr.unread(next)
		return Special(KeyEscape), nil
	}
}

// seqError ends a sequence cut short. A sequence the terminal stopped
// sending is ignored, other errors are returned.
func seqError(err error) (Key, error) {
	if errors.Is(err, errTimeout) {
		return Special(KeyOther), nil
	}
	return Key{}, err
}

// readCSI reads the parameters and final byte of an ESC [ sequence.
func (kr *KeyReader) readCSI() (Key, error) {
	var params []int
	cur := -1
	for {
		b, err := kr.readSeqByte()
		if err != nil {
			return seqError(err)
		}

		switch {
		case '0' <= b && b <= '9':
			if cur < 0 {
				cur = 0
			}
			cur = cur*10 + int(b-'0')
		case b == ';':
			if cur < 0 {
				cur = 0
			}
			params = append(params, cur)
			cur = -1
		case 0x40 <= b && b <= 0x7e:
			if cur >= 0 {
				params = append(params, cur)
			}
			return finalKey(b, params), nil
		default:
			// Unknown intermediate byte, keep consuming until a final byte.
		}
	}
}

func finalKey(final byte, params []int) Key {
	var key Key
	switch final {
	case 'A':
		key = Special(KeyUp)
	case 'B':
		key = Special(KeyDown)
	case 'C':
		key = Special(KeyRight)
	case 'D':
		key = Special(KeyLeft)
	case 'H':
		key = Special(KeyHome)
	case 'F':
		key = Special(KeyEnd)
	case '~':
		if len(params) == 0 {
			return Special(KeyOther)
		}
		switch params[0] {
		case 1, 7:
			key = Special(KeyHome)
		case 4, 8:
			key = Special(KeyEnd)
		default:
			return Special(KeyOther)
		}
	default:
		return Special(KeyOther)
	}

	// xterm encodes modifiers as 1 + bitmask in the second parameter.
	if len(params) >= 2 && params[1] > 1 {
		mask := params[1] - 1
		if mask&1 != 0 {
			key.Mod |= ModShift
		}
		if mask&2 != 0 {
			key.Mod |= ModAlt
		}
		if mask&4 != 0 {
			key.Mod |= ModCtrl
		}
	}
	return key
}
