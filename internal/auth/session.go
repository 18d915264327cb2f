// Package auth is the minimal session gate for admin mutations.
//
// A token is valid when it is present and exactly tokenLength characters long.
// There is no server-side token registry, so any string of the right length
// passes verification. That is a deliberate simplification for a low-stakes
// personal site, kept as-is and not to be copied into anything
// security-sensitive.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// CookieName is the session cookie carrying the bearer token.
const CookieName = "admin_session"

// TokenTTL is the cookie lifetime.
const TokenTTL = 24 * time.Hour

const tokenLength = 64

// ErrUnauthorized is returned on a failed password check.
var ErrUnauthorized = errors.New("unauthorized")

// Gate checks the admin password and issues opaque session tokens.
type Gate struct {
	password string
}

func NewGate(password string) *Gate {
	return &Gate{password: password}
}

// Login compares the supplied password against the configured secret and
// issues a fresh token on a match.
func (g *Gate) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return "", ErrUnauthorized
	}
	return newToken()
}

// Verify accepts any token of the expected length.
func (g *Gate) Verify(token string) bool {
	return len(token) == tokenLength
}

func newToken() (string, error) {
	bytes := make([]byte, tokenLength/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
