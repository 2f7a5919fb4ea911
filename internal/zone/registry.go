package zone

import "github.com/five82/tzboard/internal/clock"

// Registry is the ordered list of entries. It enforces id uniqueness and
// insertion order and nothing else.
type Registry struct {
	entries []Entry
	lastID  int
}

// NewRegistry restores a registry from previously saved entries. Entries
// with a duplicate id are dropped, keeping the first.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{}
	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		r.entries = append(r.entries, e)
		if e.ID > r.lastID {
			r.lastID = e.ID
		}
	}
	return r
}

// Add appends a new entry with the next id, a generated title, a zone from
// the picker and the 12-hour format.
func (r *Registry) Add(p Picker) Entry {
	r.lastID = max(r.lastID, r.maxID()) + 1
	e := Entry{
		ID:         r.lastID,
		Title:      DefaultTitle(r.lastID),
		Zone:       p.PickZone(),
		TimeFormat: clock.H12,
	}
	r.entries = append(r.entries, e)
	return e
}

// Remove deletes the first entry with id. It reports whether one was found.
func (r *Registry) Remove(id int) bool {
	idx := r.index(id)
	if idx < 0 {
		return false
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	return true
}

// Find returns the entry with id.
func (r *Registry) Find(id int) (Entry, bool) {
	idx := r.index(id)
	if idx < 0 {
		return Entry{}, false
	}
	return r.entries[idx], true
}

// Update applies fn to the stored entry with id. The id itself cannot be
// changed through fn.
func (r *Registry) Update(id int, fn func(*Entry)) bool {
	idx := r.index(id)
	if idx < 0 {
		return false
	}
	fn(&r.entries[idx])
	r.entries[idx].ID = id
	return true
}

// Entries returns a copy of the entries in display order.
func (r *Registry) Entries() []Entry {
	if len(r.entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(r.entries))
	copy(dup, r.entries)
	return dup
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) index(id int) int {
	for i, e := range r.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) maxID() int {
	highest := 0
	for _, e := range r.entries {
		highest = max(highest, e.ID)
	}
	return highest
}
