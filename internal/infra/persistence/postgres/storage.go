package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domcart "example.com/rocketshoes-cart/internal/domain/cart"
)

const schema = `
CREATE TABLE IF NOT EXISTS storage_items (
	storage_key TEXT PRIMARY KEY,
	storage_value TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type Storage struct {
	pool *pgxpool.Pool
}

func NewStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

// Open connects a pool to dsn and makes sure the schema exists.
func Open(ctx context.Context, dsn string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	s := NewStorage(pool)
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Storage) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres schema: %w", err)
	}
	return nil
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is empty")
	}

	var value string
	err := s.pool.QueryRow(ctx, `SELECT storage_value FROM storage_items WHERE storage_key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domcart.ErrStorageItemNotFound
	}
	if err != nil {
		return "", fmt.Errorf("pool.QueryRow: %w", err)
	}
	return value, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO storage_items (storage_key, storage_value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (storage_key) DO UPDATE
		SET storage_value = EXCLUDED.storage_value, updated_at = now()
	`, key, value)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM storage_items WHERE storage_key = $1`, key); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() {
	s.pool.Close()
}
