package ledger

import "context"

// Store is a versioned key-value ledger. Each external call opens one Txn,
// performs its reads and writes through it, and commits once.
type Store interface {
	Begin(ctx context.Context) (Txn, error)
}

// Txn is a single call's view of the ledger. Reads observe a consistent
// snapshot plus the txn's own uncommitted writes; writes become visible to
// other txns only after Commit, which applies the whole write set
// atomically or not at all. A conflicting concurrent commit surfaces
// auctionerrors.ErrWriteConflict.
type Txn interface {
	// Get returns the stored bytes for key, or auctionerrors.ErrNotFound
	// when the key is absent or holds an empty value.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stages a write. It is not visible outside this txn until Commit.
	Put(ctx context.Context, key string, value []byte) error

	// Commit applies every staged write as one atomic batch.
	Commit(ctx context.Context) error

	// Rollback discards staged writes. Safe to call after Commit.
	Rollback(ctx context.Context) error
}
