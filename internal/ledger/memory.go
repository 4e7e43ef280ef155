package ledger

import (
	"context"
	"fmt"
	"sync"

	"auction-ledger/internal/auctionerrors"
)

// MemoryStore is a concurrency-safe in-memory implementation of Store.
// Every committed write bumps the key's version; Commit re-validates the
// version of each key a txn read, so conflicting concurrent txns fail
// instead of silently interleaving.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string][]byte // key -> committed record bytes
	versions map[string]uint64 // key -> commit counter, 0 = never written
}

// NewMemoryStore creates a new in-memory ledger instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:  make(map[string][]byte),
		versions: make(map[string]uint64),
	}
}

// Begin opens a new transaction against the current committed state
func (s *MemoryStore) Begin(ctx context.Context) (Txn, error) {
	return &memoryTxn{
		store:  s,
		reads:  make(map[string]uint64),
		writes: make(map[string][]byte),
	}, nil
}

type memoryTxn struct {
	store    *MemoryStore
	reads    map[string]uint64 // key -> version observed by Get
	writes   map[string][]byte // staged writes
	order    []string          // staged write order
	finished bool
}

func (t *memoryTxn) Get(ctx context.Context, key string) ([]byte, error) {
	if t.finished {
		return nil, fmt.Errorf("get %s: transaction already finished", key)
	}

	// read-your-writes: staged values win over committed state
	if value, ok := t.writes[key]; ok {
		if len(value) == 0 {
			return nil, fmt.Errorf("get %s: %w", key, auctionerrors.ErrNotFound)
		}
		return append([]byte(nil), value...), nil
	}

	t.store.mu.RLock()
	value, ok := t.store.records[key]
	version := t.store.versions[key]
	t.store.mu.RUnlock()

	// record the observed version even for misses, so a record created
	// concurrently between Get and Commit still triggers a conflict
	t.reads[key] = version

	if !ok || len(value) == 0 {
		return nil, fmt.Errorf("get %s: %w", key, auctionerrors.ErrNotFound)
	}
	return append([]byte(nil), value...), nil
}

func (t *memoryTxn) Put(ctx context.Context, key string, value []byte) error {
	if t.finished {
		return fmt.Errorf("put %s: transaction already finished", key)
	}
	if _, staged := t.writes[key]; !staged {
		t.order = append(t.order, key)
	}
	t.writes[key] = append([]byte(nil), value...)
	return nil
}

func (t *memoryTxn) Commit(ctx context.Context) error {
	if t.finished {
		return fmt.Errorf("commit: transaction already finished")
	}
	t.finished = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	for key, observed := range t.reads {
		if t.store.versions[key] != observed {
			return fmt.Errorf("commit: key %s changed since read: %w", key, auctionerrors.ErrWriteConflict)
		}
	}

	for _, key := range t.order {
		t.store.records[key] = t.writes[key]
		t.store.versions[key]++
	}
	return nil
}

func (t *memoryTxn) Rollback(ctx context.Context) error {
	t.finished = true
	return nil
}
