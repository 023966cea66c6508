package lineedit

// recall walks a working copy of the history during one edit.
//
// The scratch slice has one slot per history line plus a trailing slot that
// holds the live buffer once navigation starts. pos == live means the user
// is editing the live buffer rather than a historical entry.
type recall struct {
	scratch [][]rune
	pos     int
	live    int
}

func newRecall(lines []string) *recall {
	scratch := make([][]rune, len(lines)+1)
	for i, line := range lines {
		scratch[i] = []rune(line)
	}

	return &recall{
		scratch: scratch,
		pos:     len(lines),
		live:    len(lines),
	}
}

// reset returns to the live slot without touching the scratch entries.
func (r *recall) reset() {
	r.pos = r.live
}

// up moves to the previous entry, saving buf into the live slot when leaving
// it. It returns the entry to show and false at the oldest entry.
func (r *recall) up(buf []rune) ([]rune, bool) {
	if r.pos == 0 {
		return nil, false
	}
	if r.pos == r.live {
		r.scratch[r.live] = buf
	}
	r.pos--
	return r.scratch[r.pos], true
}

// down moves to the next entry. It returns false when already on the live slot.
func (r *recall) down() ([]rune, bool) {
	if r.pos >= r.live {
		return nil, false
	}
	r.pos++
	return r.scratch[r.pos], true
}
