package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/codewise-hub/identity-service/internal/identity/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Issue(accountID string) (string, time.Time, error)
	Verify(tokenString string) (*SessionClaims, error)
	Lifetime() time.Duration
}

// TokenService signs and verifies the bearer tokens both login paths
// hand out. Verification is pure computation; the session record
// cross-check lives in the resolver, not here.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

type SessionClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

func (ts *TokenService) Issue(accountID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.lifetime)

	claims := SessionClaims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (ts *TokenService) Lifetime() time.Duration {
	return ts.lifetime
}

// Verify parses and validates the given token string. Any alteration of
// the token invalidates the signature; an expired embedded claim fails
// here too.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
