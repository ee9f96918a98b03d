package docstore

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// SetCall records one Memory.Set invocation.
type SetCall struct {
	Collection string
	ID         string
	Fields     map[string]any
}

// Memory is an in-process Store for tests and local development.
type Memory struct {
	mu    sync.Mutex
	data  map[string]map[string]map[string]any
	sets  []SetCall
	fails map[string]error
}

func NewMemory() *Memory {
	return &Memory{
		data:  make(map[string]map[string]map[string]any),
		fails: make(map[string]error),
	}
}

// Put seeds a document without recording a Set call.
func (m *Memory) Put(collection, id string, fields map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(collection, id, fields)
}

// FailOn makes every operation on collection return err. A nil err clears it.
func (m *Memory) FailOn(collection string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fails, collection)
		return
	}
	m.fails[collection] = err
}

// Sets returns the Set calls made so far.
func (m *Memory) Sets() []SetCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.sets)
}

func (m *Memory) Get(_ context.Context, collection, id string) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fails[collection]; err != nil {
		return Document{}, err
	}
	fields, ok := m.data[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Fields: maps.Clone(fields)}, nil
}

func (m *Memory) Set(_ context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fails[collection]; err != nil {
		return err
	}
	m.put(collection, id, fields)
	m.sets = append(m.sets, SetCall{Collection: collection, ID: id, Fields: maps.Clone(fields)})
	return nil
}

func (m *Memory) List(_ context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fails[collection]; err != nil {
		return nil, err
	}
	ids := slices.Sorted(maps.Keys(m.data[collection]))
	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, Document{ID: id, Fields: maps.Clone(m.data[collection][id])})
	}
	return docs, nil
}

func (m *Memory) put(collection, id string, fields map[string]any) {
	if m.data[collection] == nil {
		m.data[collection] = make(map[string]map[string]any)
	}
	m.data[collection][id] = maps.Clone(fields)
}
