package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Roles carried in session tokens.
const (
	RoleCompany    = "company"
	RoleSuperAdmin = "super_admin"
)

const tokenTTL = 24 * time.Hour

// TokenIssuer signs the session token handed out after a login code is
// verified.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret string, now func() time.Time) *TokenIssuer {
	if now == nil {
		now = time.Now
	}
	return &TokenIssuer{secret: []byte(secret), now: now}
}

func (t *TokenIssuer) Issue(id uint, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"role":  role,
		"exp":   t.now().Add(tokenTTL).Unix(), // 24 hour expiration
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}
