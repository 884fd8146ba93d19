package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Snapshot is one generation of the catalog cache. A fetch error keeps
// the previous generation; only a successful load replaces it.
type Snapshot struct {
	entries []Entry
	byID    map[uuid.UUID]Entry
}

func NewSnapshot(entries []Entry) *Snapshot {
	byID := make(map[uuid.UUID]Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	return &Snapshot{entries: entries, byID: byID}
}

func EmptySnapshot() *Snapshot {
	return NewSnapshot(nil)
}

func (s *Snapshot) Entries() []Entry {
	return s.entries
}

func (s *Snapshot) Len() int {
	return len(s.entries)
}

func (s *Snapshot) Find(id uuid.UUID) (Entry, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Filter is the local fallback for queries too short to send to the
// authority. Case-insensitive contains over name and category.
func (s *Snapshot) Filter(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.entries
	}

	var matched []Entry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Category), q) {
			matched = append(matched, e)
		}
	}
	return matched
}
