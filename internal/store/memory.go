package store

import (
	"context"
	"sync"
)

// Memory is the volatile backing: records live in a map keyed by a counter
// the store maintains itself, starting at 1. Everything is lost on restart.
// A mutex guards the map because the HTTP server calls in concurrently.
type Memory[T any, P Pointer[T]] struct {
	mu      sync.Mutex
	records map[uint]T
	order   []uint
	nextID  uint
}

func NewMemory[T any, P Pointer[T]]() *Memory[T, P] {
	return &Memory[T, P]{
		records: make(map[uint]T),
		nextID:  1,
	}
}

// List returns all records in insertion order.
func (m *Memory[T, P]) List(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.records[id])
	}
	return out, nil
}

func (m *Memory[T, P]) Get(ctx context.Context, id uint) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// Create assigns the next counter value, ignoring any key the caller set,
// and fills rec with the stored state.
func (m *Memory[T, P]) Create(ctx context.Context, rec *T) error {
	if err := callSaveHook(rec); err != nil {
		return err
	}
	if err := callCreateHook(rec); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	P(rec).SetID(id)
	m.records[id] = *rec
	m.order = append(m.order, id)
	return nil
}

// Update replaces every non-key field of the record at id. Absent keys are
// a silent no-op; nothing is created.
func (m *Memory[T, P]) Update(ctx context.Context, id uint, rec *T) error {
	m.mu.Lock()
	_, ok := m.records[id]
	m.mu.Unlock()
	if !ok {
		return nil
	}

	if err := callSaveHook(rec); err != nil {
		return err
	}
	P(rec).SetID(id)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; ok {
		m.records[id] = *rec
	}
	return nil
}

// Delete removes the record at id; absent keys are a silent no-op.
func (m *Memory[T, P]) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return nil
	}
	delete(m.records, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
