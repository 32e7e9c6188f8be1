// Package auth issues and verifies the stateless signed tokens that carry
// a user's identity. Validity is purely a function of signature and expiry;
// nothing is persisted server-side.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "inkwell-api"
	audience = "inkwell-client"

	// DefaultTTL is the token lifetime when none is specified.
	DefaultTTL = time.Hour
)

// Identity is the acting user embedded in a verified token.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// claims carries the identity alongside the registered JWT claims.
type claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager signing with secret. A non-positive ttl
// falls back to DefaultTTL.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// IssueToken produces a signed, self-contained credential for the identity.
func (m *Manager) IssueToken(identity Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})
	return token.SignedString(m.secret)
}

// VerifyToken checks signature and expiry. It returns the embedded identity
// and true on success, or a zero identity and false on any failure; it
// never returns an error to callers.
func (m *Manager) VerifyToken(tokenString string) (Identity, bool) {
	if tokenString == "" {
		return Identity{}, false
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience))
	if err != nil || !parsed.Valid {
		return Identity{}, false
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" {
		return Identity{}, false
	}
	return Identity{ID: c.Subject, Email: c.Email, Name: c.Name}, true
}

// ResolveRequestIdentity resolves the acting identity from the request's
// credentials: a Bearer value in the Authorization header wins, with the
// cookie-carried token as fallback.
func (m *Manager) ResolveRequestIdentity(authHeader, cookie string) (Identity, bool) {
	if token := bearerToken(authHeader); token != "" {
		if identity, ok := m.VerifyToken(token); ok {
			return identity, true
		}
	}
	if cookie != "" {
		return m.VerifyToken(cookie)
	}
	return Identity{}, false
}

// bearerToken extracts the token from a "Bearer <token>" header value.
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
