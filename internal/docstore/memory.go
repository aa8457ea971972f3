package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps collections in-process. It backs the repository tests
// and the local run mode; filtering and ordering happen client-side, which
// matches what the adapter contract guarantees and nothing more.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]Document // collection -> id -> body
	seq  map[string][]string            // insertion order per collection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]Document),
		seq:  make(map[string][]string),
	}
}

func deepCopy(doc Document) Document {
	raw, _ := json.Marshal(doc)
	var out Document
	_ = json.Unmarshal(raw, &out)
	return out
}

// compareValues orders two JSON scalar values. Returns (cmp, ok).
func compareValues(a, b interface{}) (int, bool) {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case float64:
		bv, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func matches(doc Document, f Filter) bool {
	val, ok := doc[f.Field]
	if !ok {
		return false
	}
	switch f.Op {
	case OpEqual:
		return fmt.Sprint(val) == fmt.Sprint(f.Value)
	case OpGte:
		cmp, ok := compareValues(val, normalize(f.Value))
		return ok && cmp >= 0
	case OpLte:
		cmp, ok := compareValues(val, normalize(f.Value))
		return ok && cmp <= 0
	}
	return false
}

// normalize pushes filter values through the same representation documents
// use after a JSON round trip.
func normalize(v interface{}) interface{} {
	if f, ok := toFloat(v); ok {
		return f
	}
	return v
}

func (m *MemoryStore) List(ctx context.Context, collection string, q Query) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var records []Record
	for _, id := range m.seq[collection] {
		doc, ok := m.data[collection][id]
		if !ok {
			continue
		}
		keep := true
		for _, f := range q.Filters {
			if !matches(doc, f) {
				keep = false
				break
			}
		}
		if keep {
			records = append(records, Record{ID: id, Data: deepCopy(doc)})
		}
	}

	if q.OrderBy != nil {
		field, desc := q.OrderBy.Field, q.OrderBy.Desc
		sort.SliceStable(records, func(i, j int) bool {
			cmp, ok := compareValues(records[i].Data[field], records[j].Data[field])
			if !ok {
				return false
			}
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return records, nil
}

func (m *MemoryStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.data[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Record{ID: id, Data: deepCopy(doc)}, nil
}

func (m *MemoryStore) Create(ctx context.Context, collection string, data Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.put(collection, id, data)
	return id, nil
}

func (m *MemoryStore) Update(ctx context.Context, collection, id string, partial Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.data[collection][id]
	if !ok {
		return ErrNotFound
	}
	merged := deepCopy(doc)
	for k, v := range deepCopy(partial) {
		merged[k] = v
	}
	m.data[collection][id] = merged
	return nil
}

func (m *MemoryStore) Set(ctx context.Context, collection, id string, data Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.put(collection, id, data)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[collection][id]; !ok {
		return ErrNotFound
	}
	delete(m.data[collection], id)
	return nil
}

// put assumes the write lock is held.
func (m *MemoryStore) put(collection, id string, data Document) {
	if m.data[collection] == nil {
		m.data[collection] = make(map[string]Document)
	}
	if _, exists := m.data[collection][id]; !exists {
		m.seq[collection] = append(m.seq[collection], id)
	}
	m.data[collection][id] = deepCopy(data)
}
