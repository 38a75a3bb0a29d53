package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend keeps records in the app_state table.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

func NewPostgresBackend(pool *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{pool: pool}
}

// ConnectPostgres opens a pool and checks it with a ping.
func ConnectPostgres(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("remote.ConnectPostgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("remote.ConnectPostgres: ping: %w", err)
	}
	return pool, nil
}

func (b *PostgresBackend) Get(ctx context.Context, id string) ([]byte, error) {
	var state []byte
	err := b.pool.QueryRow(ctx, `
		SELECT state
		FROM app_state
		WHERE id = $1
	`, id).Scan(&state)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return state, err
}

// Put upserts unconditionally. Last write wins.
func (b *PostgresBackend) Put(ctx context.Context, id string, state []byte) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO app_state (id, state)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = now()
	`, id, state)
	return err
}

// EnsureSchema creates app_state when it is missing. It matches
// migrations/001_create_app_state.up.sql.
func (b *PostgresBackend) EnsureSchema(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			id         TEXT PRIMARY KEY,
			state      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("remote.EnsureSchema: %w", err)
	}
	return nil
}
