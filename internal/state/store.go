package state

import (
	"github.com/google/uuid"

	"lazytail/internal/core"
)

// Store holds the accumulated log sequence. It is owned by the UI goroutine;
// the ingestion side only ever reaches it through the hand-off queue, so the
// store itself needs no locking.
type Store struct {
	entries []core.LogEntry
}

// Append adds entries in arrival order.
func (s *Store) Append(entries ...core.LogEntry) {
	s.entries = append(s.entries, entries...)
}

// Len reports how many entries have accumulated.
func (s *Store) Len() int {
	return len(s.entries)
}

// All exposes the backing sequence. Callers must treat it as read-only.
func (s *Store) All() []core.LogEntry {
	return s.entries
}

// At returns the entry at index i.
func (s *Store) At(i int) core.LogEntry {
	return s.entries[i]
}

// Clear discards everything, e.g. on an explicit user clear.
func (s *Store) Clear() {
	s.entries = nil
}

// IndexOf locates an entry by its stable ID, or -1 when it is gone. Positions
// shift under filtering, so selection tracking always goes through IDs.
func (s *Store) IndexOf(id uuid.UUID) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}
