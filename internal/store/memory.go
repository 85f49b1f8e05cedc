package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Store used by tests and by local runs without a
// Firestore project. Transactions take the store lock for their whole
// duration, so they serialize; writes are buffered and applied on commit.
type Memory struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]interface{}
	lastNow     time.Time
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]map[string]interface{})}
}

// now returns a strictly increasing timestamp so createdOn ordering is
// deterministic even for back-to-back writes.
func (m *Memory) now() time.Time {
	t := time.Now().UTC()
	if !t.After(m.lastNow) {
		t = m.lastNow.Add(time.Nanosecond)
	}
	m.lastNow = t
	return t
}

func (m *Memory) collection(name string) map[string]map[string]interface{} {
	col, ok := m.collections[name]
	if !ok {
		col = make(map[string]map[string]interface{})
		m.collections[name] = col
	}
	return col
}

func (m *Memory) Get(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.collection(collection)[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyFields(doc), nil
}

func (m *Memory) Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.collection(collection)[id] = m.materialize(fields)
	return id, nil
}

func (m *Memory) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.merge(collection, id, fields)
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.collection(collection), id)
	return nil
}

func (m *Memory) Query(ctx context.Context, collection, orderBy string, desc bool, limit int) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	col := m.collection(collection)
	docs := make([]Document, 0, len(col))
	for id, fields := range col {
		docs = append(docs, Document{ID: id, Fields: copyFields(fields)})
	}

	sort.Slice(docs, func(i, j int) bool {
		a, b := docs[i].Fields[orderBy], docs[j].Fields[orderBy]
		if desc {
			return fieldLess(b, a)
		}
		return fieldLess(a, b)
	})

	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (m *Memory) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryTx{store: m}
	if err := fn(tx); err != nil {
		return err
	}
	for _, w := range tx.writes {
		if err := m.merge(w.collection, w.id, w.fields); err != nil {
			return err
		}
	}
	return nil
}

// merge applies a partial update; caller must hold the lock.
func (m *Memory) merge(collection, id string, fields map[string]interface{}) error {
	doc, ok := m.collection(collection)[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range m.materialize(fields) {
		doc[k] = v
	}
	return nil
}

// materialize copies the fields, resolving ServerTimestamp sentinels.
func (m *Memory) materialize(fields map[string]interface{}) map[string]interface{} {
	out := copyFields(fields)
	for k, v := range out {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = m.now()
		}
	}
	return out
}

func copyFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if s, ok := v.([]string); ok {
			cp := make([]string, len(s))
			copy(cp, s)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}

func fieldLess(a, b interface{}) bool {
	switch av := a.(type) {
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Before(bv)
	case string:
		bv, _ := b.(string)
		return av < bv
	case int64:
		bv, _ := b.(int64)
		return av < bv
	case float64:
		bv, _ := b.(float64)
		return av < bv
	}
	return false
}

type write struct {
	collection string
	id         string
	fields     map[string]interface{}
}

type memoryTx struct {
	store  *Memory
	writes []write
}

func (t *memoryTx) Get(collection, id string) (map[string]interface{}, error) {
	doc, ok := t.store.collection(collection)[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyFields(doc), nil
}

func (t *memoryTx) Update(collection, id string, fields map[string]interface{}) error {
	t.writes = append(t.writes, write{collection: collection, id: id, fields: copyFields(fields)})
	return nil
}
