package cart

import "context"

// Storage is a string key-value store holding cart snapshots.
// GetItem returns ErrStorageItemNotFound when the key was never set or was removed.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
