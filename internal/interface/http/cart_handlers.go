package http

import (
	"net/http"

	authuc "example.com/rocketshoes-cart/internal/usecase/auth"
	cartuc "example.com/rocketshoes-cart/internal/usecase/cart"
)

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	// Amounts of zero or less are accepted and leave the cart unchanged.
	Amount *int64 `json:"amount" validate:"required"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	session := getSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, authuc.ErrUnauthenticated)
		return
	}

	cart, err := a.cartSvc.GetCart(r.Context(), session.CartID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapCart(session.CartID, cart))
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	session := getSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, authuc.ErrUnauthenticated)
		return
	}

	if err := a.cartSvc.Clear(r.Context(), session.CartID); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	session := getSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, authuc.ErrUnauthenticated)
		return
	}

	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	cart, err := a.cartSvc.AddProduct(r.Context(), session.CartID, req.ProductID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a.mapCart(session.CartID, cart))
}

func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	session := getSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, authuc.ErrUnauthenticated)
		return
	}

	productID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	cart, err := a.cartSvc.UpdateProductAmount(r.Context(), session.CartID, cartuc.UpdateProductAmountInput{
		ProductID: productID,
		Amount:    *req.Amount,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapCart(session.CartID, cart))
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	session := getSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, authuc.ErrUnauthenticated)
		return
	}

	productID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	cart, err := a.cartSvc.RemoveProduct(r.Context(), session.CartID, productID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapCart(session.CartID, cart))
}
