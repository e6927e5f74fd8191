package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Payload is what a session token carries besides the registered claims.
type Payload struct {
	UserID string
	Email  *string
	Name   *string
}

type Claims struct {
	UserID string  `json:"userId"`
	Email  *string `json:"email,omitempty"`
	Name   *string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 session tokens. It holds no state besides
// its key material.
type Service struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

func NewService(secret string, expiry time.Duration, issuer string) *Service {
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

func (s *Service) Issue(p Payload) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: p.UserID,
		Email:  p.Email,
		Name:   p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify returns the claims of a well-signed, unexpired token. Any failure is
// reported as ErrInvalidToken; callers treat it as "not logged in".
func (s *Service) Verify(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
