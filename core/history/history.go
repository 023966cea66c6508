// Package history holds the lines submitted during a shell session.
package history

// Store is an append-only, session scoped list of submitted lines.
//
// The store has no size cap; memory grows with every submitted line for the
// life of the session.
type Store struct {
	lines []string
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Append adds line to the end of the history. Duplicates are kept.
func (s *Store) Append(line string) {
	s.lines = append(s.lines, line)
}

// Len returns the number of stored lines.
func (s *Store) Len() int {
	return len(s.lines)
}

// Snapshot returns a copy of the stored lines, oldest first.
func (s *Store) Snapshot() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
