package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domproduct "example.com/rocketshoes-cart/internal/domain/product"
)

// Client reads products and stock from the storefront REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type productPayload struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

func (p productPayload) toDomain() *domproduct.Product {
	return &domproduct.Product{ID: p.ID, Title: p.Title, Price: p.Price, Image: p.Image}
}

type stockPayload struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domproduct.Product, error) {
	var payload productPayload
	if err := c.get(ctx, "/products/"+strconv.FormatInt(id, 10), domproduct.ErrProductNotFound, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

func (c *Client) GetStock(ctx context.Context, id int64) (*domproduct.Stock, error) {
	var payload stockPayload
	if err := c.get(ctx, "/stock/"+strconv.FormatInt(id, 10), domproduct.ErrStockNotFound, &payload); err != nil {
		return nil, err
	}
	return &domproduct.Stock{ProductID: id, Amount: payload.Amount}, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]*domproduct.Product, error) {
	var payload []productPayload
	if err := c.get(ctx, "/products", domproduct.ErrCatalogUnavailable, &payload); err != nil {
		return nil, err
	}
	products := make([]*domproduct.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, p.toDomain())
	}
	return products, nil
}

func (c *Client) get(ctx context.Context, path string, notFound error, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalog request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", domproduct.ErrCatalogUnavailable, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: GET %s", notFound, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: GET %s: status %d", domproduct.ErrCatalogUnavailable, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domproduct.ErrCatalogUnavailable, path, err)
	}
	return nil
}
