package http

import (
	"net/http"

	authuc "example.com/rocketshoes-cart/internal/usecase/auth"
)

func (a *API) handleStartSession(w http.ResponseWriter, r *http.Request) {
	result, err := a.authSvc.StartSession(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"token":   result.Token,
		"cart_id": result.CartID,
	})
}

func (a *API) handleRefreshSession(w http.ResponseWriter, r *http.Request) {
	session := getSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, authuc.ErrUnauthenticated)
		return
	}

	result, err := a.authSvc.RefreshSession(r.Context(), session.Token)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":   result.Token,
		"cart_id": result.CartID,
	})
}
