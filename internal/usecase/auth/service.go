package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Claims identify the anonymous shopper a token was issued to.
type Claims struct {
	CartID string
}

type TokenService interface {
	GenerateToken(cartID string) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	tokens TokenService
	newID  func() string
}

func NewService(tokens TokenService) *Service {
	return &Service{
		tokens: tokens,
		newID:  uuid.NewString,
	}
}

type SessionResult struct {
	Token  string
	CartID string
}

// StartSession opens a fresh cart and returns the token that owns it.
func (s *Service) StartSession(ctx context.Context) (*SessionResult, error) {
	cartID := s.newID()
	token, err := s.tokens.GenerateToken(cartID)
	if err != nil {
		return nil, err
	}
	return &SessionResult{Token: token, CartID: cartID}, nil
}

// RefreshSession re-signs a still valid token for the same cart.
func (s *Service) RefreshSession(ctx context.Context, token string) (*SessionResult, error) {
	claims, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	fresh, err := s.tokens.GenerateToken(claims.CartID)
	if err != nil {
		return nil, err
	}
	return &SessionResult{Token: fresh, CartID: claims.CartID}, nil
}

func (s *Service) Authenticate(ctx context.Context, token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := s.tokens.ParseToken(token)
	if err != nil || claims == nil || claims.CartID == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
