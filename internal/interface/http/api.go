package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/rocketshoes-cart/internal/domain/cart"
	domproduct "example.com/rocketshoes-cart/internal/domain/product"
	"example.com/rocketshoes-cart/internal/infra/money"
	authuc "example.com/rocketshoes-cart/internal/usecase/auth"
	cartuc "example.com/rocketshoes-cart/internal/usecase/cart"
	productuc "example.com/rocketshoes-cart/internal/usecase/product"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	authSvc    *authuc.Service
	cartSvc    *cartuc.Service
	productSvc *productuc.Service
	health     HealthChecker
	money      *money.Formatter
	validator  *validator.Validate
}

type Dependencies struct {
	AuthService    *authuc.Service
	CartService    *cartuc.Service
	ProductService *productuc.Service
	Health         HealthChecker
	Money          *money.Formatter
}

func NewAPI(deps Dependencies) *API {
	validate := validator.New()
	return &API{
		authSvc:    deps.AuthService,
		cartSvc:    deps.CartService,
		productSvc: deps.ProductService,
		health:     deps.Health,
		money:      deps.Money,
		validator:  validate,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", a.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", a.handleStartSession)

		r.Group(func(pr chi.Router) {
			pr.Use(a.optionalAuthMiddleware)
			pr.Get("/products", a.handleListProducts)
		})
		r.Get("/products/{id}", a.handleGetProduct)

		r.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Post("/sessions/refresh", a.handleRefreshSession)

			pr.Get("/cart", a.handleGetCart)
			pr.Delete("/cart", a.handleClearCart)
			pr.Post("/cart/items", a.handleAddCartItem)
			pr.Put("/cart/items/{id}", a.handleUpdateCartItem)
			pr.Delete("/cart/items/{id}", a.handleRemoveCartItem)
		})
	})

	return r
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if a.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := a.health.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "storage unavailable", Details: err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func (a *API) mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":              p.ID,
		"title":           p.Title,
		"image":           p.Image,
		"price":           p.Price.InexactFloat64(),
		"price_formatted": a.money.Format(p.Price),
	}
}

func (a *API) mapCart(cartID string, c *domcart.Cart) map[string]any {
	items := make([]map[string]any, 0, len(c.Items))
	for _, item := range c.Items {
		subtotal := item.Subtotal()
		items = append(items, map[string]any{
			"id":                 item.ProductID,
			"title":              item.Title,
			"image":              item.Image,
			"price":              item.Price.InexactFloat64(),
			"price_formatted":    a.money.Format(item.Price),
			"amount":             item.Amount,
			"subtotal":           subtotal.InexactFloat64(),
			"subtotal_formatted": a.money.Format(subtotal),
		})
	}
	total := c.Total()
	return map[string]any{
		"cart_id":         cartID,
		"size":            c.Size(),
		"items":           items,
		"total":           total.InexactFloat64(),
		"total_formatted": a.money.Format(total),
		"currency":        a.money.Currency(),
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domproduct.ErrOutOfStock):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domcart.ErrProductNotInCart),
		errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domproduct.ErrStockNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domproduct.ErrCatalogUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, domcart.ErrEmptyCartID),
		errors.Is(err, authuc.ErrUnauthenticated):
		status = http.StatusUnauthorized
	}

	// failed cart mutations carry the text the storefront shows the shopper
	var opErr *cartuc.OperationError
	if errors.As(err, &opErr) {
		writeJSON(w, status, errorResponse{Error: opErr.Message, Details: opErr.Err.Error()})
		return
	}
	respondError(w, status, err)
}
