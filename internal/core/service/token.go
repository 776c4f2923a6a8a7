package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(u *domain.User) (string, error)
}

// JWTIssuer issues HS256 tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    domain.Clock
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: domain.SystemClock}
}

func (j *JWTIssuer) Issue(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  u.Role,
		"exp":   j.now().Add(j.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}
