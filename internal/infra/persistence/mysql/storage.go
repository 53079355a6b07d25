package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domcart "example.com/rocketshoes-cart/internal/domain/cart"
)

const schema = `CREATE TABLE IF NOT EXISTS storage_items (
	storage_key VARCHAR(191) NOT NULL PRIMARY KEY,
	storage_value MEDIUMTEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

type Storage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("mysql schema: %w", err)
	}
	return nil
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT storage_value FROM storage_items WHERE storage_key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domcart.ErrStorageItemNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO storage_items (storage_key, storage_value) VALUES (?, ?) ON DUPLICATE KEY UPDATE storage_value = VALUES(storage_value)`, key, value)
	return err
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM storage_items WHERE storage_key = ?`, key)
	return err
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
