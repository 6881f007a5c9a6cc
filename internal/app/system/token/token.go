// internal/app/system/token/token.go

// Package token signs and verifies the bearer tokens issued by login.
//
// Tokens are HS256 JWTs carrying the user's ObjectID hex. Verification
// failures are deliberately indistinguishable: a missing, malformed,
// tampered, or expired token all come back as ErrInvalid, and the gate
// turns every one of them into the same 401.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid covers every verification failure. Callers must not surface
// which check failed.
var ErrInvalid = errors.New("invalid token")

// Claims binds the authenticated user's identifier into the JWT alongside
// the registered expiry/issued-at claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Manager issues and verifies signed tokens with a single shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a Manager. Config validation guarantees the
// secret is non-empty before the server starts; a zero ttl falls back
// to seven days.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token binding userID, expiring after the configured TTL.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and checks a signed token, returning the bound user id.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Pinning the method stops an attacker swapping in "none" or an
		// asymmetric algorithm with a public-key "secret".
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalid
	}
	if claims.UserID == "" {
		return "", ErrInvalid
	}
	return claims.UserID, nil
}
