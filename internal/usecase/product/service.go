package product

import (
	"context"

	domcart "example.com/rocketshoes-cart/internal/domain/cart"
	dom "example.com/rocketshoes-cart/internal/domain/product"
)

type CartReader interface {
	GetCart(ctx context.Context, cartID string) (*domcart.Cart, error)
}

type Service struct {
	catalog dom.Catalog
	carts   CartReader
}

func NewService(catalog dom.Catalog, carts CartReader) *Service {
	return &Service{catalog: catalog, carts: carts}
}

// Listing is a product together with how many units of it the shopper
// already has in the cart.
type Listing struct {
	Product      *dom.Product
	AmountInCart int64
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.catalog.GetProduct(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*dom.Product, error) {
	return s.catalog.ListProducts(ctx)
}

// ListWithCart lists the catalog annotated with cart amounts. An empty
// cartID lists without annotations.
func (s *Service) ListWithCart(ctx context.Context, cartID string) ([]Listing, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	amounts := map[int64]int64{}
	if cartID != "" && s.carts != nil {
		c, err := s.carts.GetCart(ctx, cartID)
		if err != nil {
			return nil, err
		}
		amounts = c.Amounts()
	}

	listings := make([]Listing, 0, len(products))
	for _, p := range products {
		listings = append(listings, Listing{Product: p, AmountInCart: amounts[p.ID]})
	}
	return listings, nil
}
