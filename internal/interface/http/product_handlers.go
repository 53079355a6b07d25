package http

import (
	"net/http"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	cartID := ""
	if session := getSession(r.Context()); session != nil {
		cartID = session.CartID
	}

	listings, err := a.productSvc.ListWithCart(r.Context(), cartID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(listings))
	for _, l := range listings {
		p := a.mapProduct(l.Product)
		p["amount_in_cart"] = l.AmountInCart
		resp = append(resp, p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapProduct(p))
}
