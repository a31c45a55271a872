package announce

import "sync"

// Region is the live-region boundary: the sink assistive technology (or a
// UI strip standing in for it) monitors for delivered announcements.
type Region interface {
	// Announce delivers an entry to the region.
	Announce(a Announcement)
	// Clear removes a delivered entry by id. Unknown ids are ignored.
	Clear(id string)
}

// MemoryRegion is an in-process region holding delivered entries by id.
// It backs the default announcer and the UI live-region strip, and doubles
// as a test double.
type MemoryRegion struct {
	mu      sync.Mutex
	entries map[string]Announcement
	order   []string
	// latest delivered message per priority, kept after Clear so a UI can
	// keep showing the last thing said
	latest map[Priority]string
}

// NewMemoryRegion creates an empty in-process live region.
func NewMemoryRegion() *MemoryRegion {
	return &MemoryRegion{
		entries: make(map[string]Announcement),
		latest:  make(map[Priority]string),
	}
}

// Announce stores the entry, replacing any previous entry with the same id.
func (r *MemoryRegion) Announce(a Announcement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[a.ID]; !ok {
		r.order = append(r.order, a.ID)
	}
	r.entries[a.ID] = a
	r.latest[a.Priority] = a.Message
}

// Clear removes a delivered entry.
func (r *MemoryRegion) Clear(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Entries returns delivered, not-yet-cleared entries in delivery order.
func (r *MemoryRegion) Entries() []Announcement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Announcement, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// Latest returns the most recently delivered message for a priority, which
// survives Clear.
func (r *MemoryRegion) Latest(p Priority) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest[p]
}
