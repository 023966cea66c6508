package lineedit

// Buffer is the line under construction and the cursor within it.
//
// The cursor is always a valid insertion point: 0 <= cursor <= len(runes).
type Buffer struct {
	runes  []rune
	cursor int
}

// Insert puts r before the cursor and advances the cursor past it.
func (b *Buffer) Insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
}

// Backspace removes the rune before the cursor, if any.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.cursor--
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
}

func (b *Buffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *Buffer) Right() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

func (b *Buffer) Home() {
	b.cursor = 0
}

func (b *Buffer) End() {
	b.cursor = len(b.runes)
}

// Replace swaps the contents for a copy of runes and moves the cursor to the end.
func (b *Buffer) Replace(runes []rune) {
	b.runes = append([]rune(nil), runes...)
	b.cursor = len(b.runes)
}

// Runes returns a copy of the contents.
func (b *Buffer) Runes() []rune {
	return append([]rune(nil), b.runes...)
}

func (b *Buffer) Cursor() int {
	return b.cursor
}

func (b *Buffer) Len() int {
	return len(b.runes)
}

func (b *Buffer) String() string {
	return string(b.runes)
}
