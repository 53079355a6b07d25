package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProducts_ListAnonymous(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/products", "", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 3)
	first := data[0].(map[string]any)
	require.Equal(t, float64(1), first["id"])
	require.Equal(t, float64(0), first["amount_in_cart"])
}

func TestProducts_ListShowsAmountInCart(t *testing.T) {
	env := setupAPI(t)
	token := env.token(t, "cart-100")
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/cart/items", token, map[string]any{"product_id": 2}).Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/cart/items", token, map[string]any{"product_id": 2}).Code)

	rec := env.do(t, http.MethodGet, "/api/v1/products", token, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeBody(t, rec)["data"].([]any)
	require.Equal(t, float64(2), data[1].(map[string]any)["amount_in_cart"])
}

func TestProducts_ListIgnoresInvalidToken(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/products", "garbage", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestProducts_CatalogDownReturns502(t *testing.T) {
	env := setupAPI(t)
	env.catalog.down = true

	rec := env.do(t, http.MethodGet, "/api/v1/products", "", nil)

	require.Equal(t, http.StatusBadGateway, rec.Code, rec.Body.String())
}

func TestProducts_Get(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/products/3", "", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	response := decodeBody(t, rec)
	require.Equal(t, "Tênis Adidas Duramo Lite 2.0", response["title"])
	require.Equal(t, 219.9, response["price"])
}

func TestProducts_GetNotFound(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/products/42", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}
