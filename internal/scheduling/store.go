package scheduling

import (
	"sync"

	"github.com/harborhealth/scheduling-agent/internal/clinicdata"
)

// SlotStore owns the only mutable state in the scheduling core: the
// availability flag of every appointment slot. All reads return copies and
// TryBook flips availability atomically, so two sessions racing for the same
// slot cannot both win.
type SlotStore struct {
	mu    sync.RWMutex
	slots map[string]*clinicdata.AppointmentSlot
	order []string
}

// NewSlotStore indexes the generated slots. The input slice is copied; the
// caller may discard it.
func NewSlotStore(slots []clinicdata.AppointmentSlot) *SlotStore {
	s := &SlotStore{
		slots: make(map[string]*clinicdata.AppointmentSlot, len(slots)),
		order: make([]string, 0, len(slots)),
	}
	for i := range slots {
		slot := slots[i]
		s.slots[slot.SlotID] = &slot
		s.order = append(s.order, slot.SlotID)
	}
	return s
}

// Get returns a copy of the slot with the given id.
func (s *SlotStore) Get(slotID string) (clinicdata.AppointmentSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.slots[slotID]
	if !ok {
		return clinicdata.AppointmentSlot{}, false
	}
	return *slot, true
}

// Snapshot returns a copy of every slot in generation order. Callers filter
// and sort the copy freely.
func (s *SlotStore) Snapshot() []clinicdata.AppointmentSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]clinicdata.AppointmentSlot, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.slots[id])
	}
	return out
}

// TryBook atomically claims the slot: it succeeds only if the slot exists and
// is still available, and marks it unavailable in the same critical section.
// Exactly one of any set of concurrent callers wins.
func (s *SlotStore) TryBook(slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok {
		return ErrSlotNotFound
	}
	if !slot.Available {
		return ErrSlotUnavailable
	}
	slot.Available = false
	return nil
}

// Len returns the total slot count.
func (s *SlotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}
