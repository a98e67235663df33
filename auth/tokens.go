package auth

import (
	"errors"
	"time"

	"tabu/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries only the user identifier. The role is deliberately not
// embedded: it is re-read from storage on every request, so role changes
// apply without re-login.
type Claims struct {
	jwt.RegisteredClaims
}

// Tokens issues and verifies the signed bearer credentials.
type Tokens struct {
	secret []byte
	expiry time.Duration
}

func NewTokens(cfg *config.Config) *Tokens {
	return &Tokens{secret: cfg.JWTSecret, expiry: cfg.TokenExpiry}
}

// Issue signs a credential for the given user id.
func (t *Tokens) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses the credential and returns the embedded user id. Expired,
// malformed, and foreign-signed tokens all fail.
func (t *Tokens) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}
