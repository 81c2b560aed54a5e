package store

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// Memory is an in-memory EntityStore used by the test suite and for local
// development without a database. Properties take a JSON round-trip on write
// so that stored value types match what the Postgres implementation yields.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	byID   map[string]map[int64]Properties
	byName map[string]map[string]Properties
}

func NewMemory() *Memory {
	return &Memory{
		nextID: 1,
		byID:   make(map[string]map[int64]Properties),
		byName: make(map[string]map[string]Properties),
	}
}

func (m *Memory) Get(ctx context.Context, kind, name string) (Properties, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	props, ok := m.byName[kind][name]
	if !ok {
		return nil, ErrNotFound
	}

	return copyProperties(props)
}

func (m *Memory) Put(ctx context.Context, kind, name string, props Properties) error {
	stored, err := copyProperties(props)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.byName[kind] == nil {
		m.byName[kind] = make(map[string]Properties)
	}
	m.byName[kind][name] = stored

	return nil
}

func (m *Memory) GetByID(ctx context.Context, kind string, id int64) (Properties, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	props, ok := m.byID[kind][id]
	if !ok {
		return nil, ErrNotFound
	}

	return copyProperties(props)
}

func (m *Memory) PutWithAutoID(ctx context.Context, kind string, props Properties) (int64, error) {
	stored, err := copyProperties(props)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.byID[kind] == nil {
		m.byID[kind] = make(map[int64]Properties)
	}

	id := m.nextID
	m.nextID++
	m.byID[kind][id] = stored

	return id, nil
}

func (m *Memory) UpdateByID(ctx context.Context, kind string, id int64, props Properties) error {
	stored, err := copyProperties(props)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[kind][id]; !ok {
		return ErrNotFound
	}
	m.byID[kind][id] = stored

	return nil
}

func (m *Memory) DeleteByID(ctx context.Context, kind string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[kind][id]; !ok {
		return ErrNotFound
	}
	delete(m.byID[kind], id)

	return nil
}

func (m *Memory) ListAll(ctx context.Context, kind string) ([]Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entities := make([]Entity, 0, len(m.byID[kind]))
	for id, props := range m.byID[kind] {
		copied, err := copyProperties(props)
		if err != nil {
			return nil, err
		}
		entities = append(entities, Entity{ID: id, Properties: copied})
	}

	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })

	return entities, nil
}

func (m *Memory) ListByProperty(ctx context.Context, kind, property string, value any) ([]Entity, error) {
	want, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	all, err := m.ListAll(ctx, kind)
	if err != nil {
		return nil, err
	}

	matched := make([]Entity, 0)
	for _, entity := range all {
		got, ok := entity.Properties[property]
		if !ok {
			continue
		}
		raw, err := json.Marshal(got)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(raw, want) {
			matched = append(matched, entity)
		}
	}

	return matched, nil
}

func copyProperties(props Properties) (Properties, error) {
	raw, err := json.Marshal(props)
	if err != nil {
		return nil, err
	}
	return unmarshalProperties(raw)
}
