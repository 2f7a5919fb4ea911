package snapshot

import (
	"context"
	"sync"
)

// MemoryStore keeps the last saved record in memory. The zero value is ready
// to use.
type MemoryStore struct {
	mu     sync.Mutex
	record Record
	saves  int
}

// Save encodes s and keeps the resulting record.
func (m *MemoryStore) Save(_ context.Context, s Snapshot) error {
	rec, err := Encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = rec
	m.saves++
	return nil
}

// Load decodes the kept record.
func (m *MemoryStore) Load(_ context.Context) (Snapshot, bool, error) {
	m.mu.Lock()
	rec := m.record
	m.mu.Unlock()

	if rec == nil {
		return Snapshot{}, false, nil
	}
	s, err := Decode(rec)
	if err != nil {
		return Snapshot{}, true, err
	}
	return s, true, nil
}

// SetRecord replaces the kept record verbatim.
func (m *MemoryStore) SetRecord(r Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = make(Record, len(r))
	for k, v := range r {
		m.record[k] = v
	}
}

// Record returns a copy of the kept record, or nil.
func (m *MemoryStore) Record() Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.record == nil {
		return nil
	}
	dup := make(Record, len(m.record))
	for k, v := range m.record {
		dup[k] = v
	}
	return dup
}

// Saves returns how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
