package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/rocketshoes-cart/internal/domain/cart"
	domproduct "example.com/rocketshoes-cart/internal/domain/product"
	cartuc "example.com/rocketshoes-cart/internal/usecase/cart"
)

type failingPinger struct{}

func (failingPinger) Ping(ctx context.Context) error { return errors.New("connection refused") }

func TestHealth(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestHealth_StorageDown(t *testing.T) {
	api := NewAPI(Dependencies{Health: failingPinger{}})

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"out of stock", &cartuc.OperationError{Op: cartuc.OpAdd, Message: cartuc.MsgOutOfStock, Err: domproduct.ErrOutOfStock}, http.StatusUnprocessableEntity},
		{"not in cart", domcart.ErrProductNotInCart, http.StatusNotFound},
		{"catalog down", domproduct.ErrCatalogUnavailable, http.StatusBadGateway},
		{"corrupt snapshot", domcart.ErrCorruptSnapshot, http.StatusInternalServerError},
		{"empty cart id", domcart.ErrEmptyCartID, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleDomainError(rec, tt.err)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
