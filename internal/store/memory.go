package store

import (
	"errors"
	"sync"

	"github.com/sundial-app/sundial/internal/suncal"
)

var (
	// ErrNotFound is returned when a slot has no calendar yet.
	ErrNotFound = errors.New("no sun calendar for slot")
)

// Slot names one of the result positions a client renders.
type Slot string

const (
	SlotPrimary    Slot = "primary"
	SlotComparison Slot = "comparison"
)

// entry is a stored view tagged with the sequence number of the
// lookup that produced it.
type entry struct {
	seq  uint64
	view *suncal.CalendarView
}

// MemoryStore keeps the latest successful calendar view per slot.
// Views are replaced wholesale, never mutated. Each save carries a
// monotonic sequence number taken when its lookup started, so a slow
// response arriving after a newer one cannot overwrite it: last issued
// wins, not last arrived.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[Slot]entry
	seq   uint64
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[Slot]entry),
	}
}

// NextSeq reserves the sequence number for a lookup about to start.
func (s *MemoryStore) NextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Save stores view in slot unless a view with a higher sequence number
// is already there. It reports whether the view was applied.
func (s *MemoryStore) Save(slot Slot, seq uint64, view *suncal.CalendarView) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.slots[slot]; ok && cur.seq > seq {
		return false
	}
	s.slots[slot] = entry{seq: seq, view: view}
	return true
}

// Latest returns the most recent view stored in slot.
func (s *MemoryStore) Latest(slot Slot) (*suncal.CalendarView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur, ok := s.slots[slot]
	if !ok {
		return nil, ErrNotFound
	}
	return cur.view, nil
}
