package product

import "context"

// Catalog is the remote, read-only source of products and stock.
type Catalog interface {
	GetProduct(ctx context.Context, id int64) (*Product, error)
	GetStock(ctx context.Context, id int64) (*Stock, error)
	ListProducts(ctx context.Context) ([]*Product, error)
}
