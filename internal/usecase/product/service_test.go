package product

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domcart "example.com/rocketshoes-cart/internal/domain/cart"
	dom "example.com/rocketshoes-cart/internal/domain/product"
)

type stubCatalog struct {
	products []*dom.Product
	listErr  error
}

func (s *stubCatalog) GetProduct(ctx context.Context, id int64) (*dom.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, dom.ErrProductNotFound
}

func (s *stubCatalog) GetStock(ctx context.Context, id int64) (*dom.Stock, error) {
	return nil, dom.ErrStockNotFound
}

func (s *stubCatalog) ListProducts(ctx context.Context) ([]*dom.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.products, nil
}

type stubCarts struct {
	carts map[string]*domcart.Cart
}

func (s *stubCarts) GetCart(ctx context.Context, cartID string) (*domcart.Cart, error) {
	if c, ok := s.carts[cartID]; ok {
		return c, nil
	}
	return domcart.New(), nil
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{products: []*dom.Product{
		{ID: 1, Title: "Tênis de Caminhada Leve Confortável", Price: decimal.RequireFromString("179.9")},
		{ID: 2, Title: "Tênis VR Caminhada Confortável", Price: decimal.RequireFromString("139.9")},
	}}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newStubCatalog(), nil)

	p, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), p.ID)

	_, err = svc.GetByID(context.Background(), 9)
	require.ErrorIs(t, err, dom.ErrProductNotFound)
}

func TestListWithCart_AnnotatesAmounts(t *testing.T) {
	carts := &stubCarts{carts: map[string]*domcart.Cart{
		"c1": {Items: []domcart.Item{{ProductID: 2, Amount: 4}}},
	}}
	svc := NewService(newStubCatalog(), carts)

	listings, err := svc.ListWithCart(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, listings, 2)
	require.Equal(t, int64(0), listings[0].AmountInCart)
	require.Equal(t, int64(4), listings[1].AmountInCart)
}

func TestListWithCart_NoCart(t *testing.T) {
	svc := NewService(newStubCatalog(), nil)

	listings, err := svc.ListWithCart(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, listings, 2)
}

func TestListWithCart_CatalogError(t *testing.T) {
	catalog := newStubCatalog()
	catalog.listErr = errors.New("down")
	svc := NewService(catalog, nil)

	_, err := svc.ListWithCart(context.Background(), "")

	require.Error(t, err)
}
