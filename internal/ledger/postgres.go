package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"auction-ledger/internal/auctionerrors"
)

// Schema is the DDL for the ledger table. The version column counts commits
// per key; RepeatableRead isolation provides the optimistic conflict check.
const Schema = `
CREATE TABLE IF NOT EXISTS ledger_records (
    key     TEXT PRIMARY KEY,
    value   BYTEA NOT NULL,
    version BIGINT NOT NULL DEFAULT 1
);`

// PostgresStore is a Store backed by a Postgres ledger_records table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to Postgres and verifies the connection.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema creates the ledger table if it does not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure ledger schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Begin opens one database transaction per ledger call
func (s *PostgresStore) Begin(ctx context.Context) (Txn, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("begin ledger txn: %w", err)
	}
	return &postgresTxn{tx: tx}, nil
}

type postgresTxn struct {
	tx pgx.Tx
}

func (t *postgresTxn) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := t.tx.QueryRow(ctx,
		"SELECT value FROM ledger_records WHERE key = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", key, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("get %s: %w", key, auctionerrors.ErrNotFound)
	}
	return value, nil
}

func (t *postgresTxn) Put(ctx context.Context, key string, value []byte) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO ledger_records (key, value, version) VALUES ($1, $2, 1)
		 ON CONFLICT (key)
		 DO UPDATE SET value = EXCLUDED.value, version = ledger_records.version + 1`,
		key, value)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, translatePgError(err))
	}
	return nil
}

func (t *postgresTxn) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit ledger txn: %w", translatePgError(err))
	}
	return nil
}

func (t *postgresTxn) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback ledger txn: %w", err)
	}
	return nil
}

// translatePgError maps serialization failures onto the shared conflict
// sentinel so callers handle both backends uniformly.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "40001" {
		return fmt.Errorf("%v: %w", pgErr.Message, auctionerrors.ErrWriteConflict)
	}
	return err
}
