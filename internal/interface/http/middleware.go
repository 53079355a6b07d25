package http

import (
	"context"
	"net/http"
	"strings"

	authuc "example.com/rocketshoes-cart/internal/usecase/auth"
)

type ctxKey struct{}

var ctxSessionKey = ctxKey{}

type cartSession struct {
	CartID string
	Token  string
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), true
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, authuc.ErrUnauthenticated)
			return
		}

		claims, err := a.authSvc.Authenticate(r.Context(), token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, authuc.ErrUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), ctxSessionKey, &cartSession{CartID: claims.CartID, Token: token})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuthMiddleware attaches the session when a valid token is sent and
// lets anonymous requests through otherwise.
func (a *API) optionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if ok {
			if claims, err := a.authSvc.Authenticate(r.Context(), token); err == nil {
				ctx := context.WithValue(r.Context(), ctxSessionKey, &cartSession{CartID: claims.CartID, Token: token})
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func getSession(ctx context.Context) *cartSession {
	val := ctx.Value(ctxSessionKey)
	if s, ok := val.(*cartSession); ok {
		return s
	}
	return nil
}
