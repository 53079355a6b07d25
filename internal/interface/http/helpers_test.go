package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domproduct "example.com/rocketshoes-cart/internal/domain/product"
	"example.com/rocketshoes-cart/internal/infra/money"
	"example.com/rocketshoes-cart/internal/infra/persistence/memory"
	"example.com/rocketshoes-cart/internal/infra/security"
	authuc "example.com/rocketshoes-cart/internal/usecase/auth"
	cartuc "example.com/rocketshoes-cart/internal/usecase/cart"
	productuc "example.com/rocketshoes-cart/internal/usecase/product"
)

type fakeCatalog struct {
	products map[int64]*domproduct.Product
	stock    map[int64]int64
	down     bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: map[int64]*domproduct.Product{
			1: {ID: 1, Title: "Tênis de Caminhada Leve Confortável", Price: decimal.RequireFromString("179.9"), Image: "https://img/1.jpg"},
			2: {ID: 2, Title: "Tênis VR Caminhada Confortável", Price: decimal.RequireFromString("139.9"), Image: "https://img/2.jpg"},
			3: {ID: 3, Title: "Tênis Adidas Duramo Lite 2.0", Price: decimal.RequireFromString("219.9"), Image: "https://img/3.jpg"},
		},
		stock: map[int64]int64{1: 3, 2: 5, 3: 0},
	}
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id int64) (*domproduct.Product, error) {
	if f.down {
		return nil, domproduct.ErrCatalogUnavailable
	}
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (f *fakeCatalog) GetStock(ctx context.Context, id int64) (*domproduct.Stock, error) {
	if f.down {
		return nil, domproduct.ErrCatalogUnavailable
	}
	if amount, ok := f.stock[id]; ok {
		return &domproduct.Stock{ProductID: id, Amount: amount}, nil
	}
	return nil, domproduct.ErrStockNotFound
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]*domproduct.Product, error) {
	if f.down {
		return nil, domproduct.ErrCatalogUnavailable
	}
	return []*domproduct.Product{f.products[1], f.products[2], f.products[3]}, nil
}

type testEnv struct {
	router   chi.Router
	catalog  *fakeCatalog
	storage  *memory.Storage
	tokenSvc *security.JWTService
}

func setupAPI(t *testing.T) *testEnv {
	t.Helper()
	catalog := newFakeCatalog()
	storage := memory.NewStorage()
	tokenSvc := security.NewJWTService("test-secret", time.Hour)
	formatter, err := money.NewFormatter("BRL", "pt-BR")
	require.NoError(t, err)

	cartSvc := cartuc.NewService(storage, catalog, nil)
	api := NewAPI(Dependencies{
		AuthService:    authuc.NewService(tokenSvc),
		CartService:    cartSvc,
		ProductService: productuc.NewService(catalog, cartSvc),
		Health:         storage,
		Money:          formatter,
	})

	return &testEnv{
		router:   api.Router(),
		catalog:  catalog,
		storage:  storage,
		tokenSvc: tokenSvc,
	}
}

func (e *testEnv) token(t *testing.T, cartID string) string {
	t.Helper()
	token, err := e.tokenSvc.GenerateToken(cartID)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response), rec.Body.String())
	return response
}
