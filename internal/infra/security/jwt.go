package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authuc "example.com/rocketshoes-cart/internal/usecase/auth"
)

var errInvalidToken = errors.New("invalid token")

type JWTService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewJWTService(secret string, expiration time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

type jwtClaims struct {
	CartID string `json:"cid"`
	jwt.RegisteredClaims
}

func (s *JWTService) GenerateToken(cartID string) (string, error) {
	now := s.now()
	claims := jwtClaims{
		CartID: cartID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cartID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(token string) (*authuc.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid || claims.CartID == "" {
		return nil, errInvalidToken
	}

	return &authuc.Claims{CartID: claims.CartID}, nil
}
