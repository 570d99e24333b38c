package fundtrack

import "sync"

// Memo caches normalized tables by fund identity. The pipeline stages are
// pure functions; avoiding their recomputation is a boundary concern, so the
// cache lives here and never inside the stages. Tables are immutable, so a
// cached table can be shared between concurrent pipeline invocations.
type Memo struct {
	mu     sync.Mutex
	tables map[string]*Table
}

// NewMemo returns an empty memoizer.
func NewMemo() *Memo {
	return &Memo{tables: make(map[string]*Table)}
}

// Table returns the cached table for key, building and storing it on a miss.
// A failed build caches nothing.
func (m *Memo) Table(key string, build func() (*Table, error)) (*Table, error) {
	m.mu.Lock()
	t, ok := m.tables[key]
	m.mu.Unlock()
	if ok {
		return t, nil
	}

	t, err := build()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.tables[key] = t
	m.mu.Unlock()
	return t, nil
}

// Forget drops the cached table for key.
func (m *Memo) Forget(key string) {
	m.mu.Lock()
	delete(m.tables, key)
	m.mu.Unlock()
}
