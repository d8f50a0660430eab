package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token: the subject
// user ID plus the registered issued-at and expiry claims.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// time-limited session tokens. Tokens are stateless: validity is purely a
// function of signature and expiry, with no revocation list.
type TokenService interface {
	// Issue creates a token binding the subject user ID, valid for the
	// configured duration.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the claims. Failures
	// are classified domain errors: expired, malformed, or bad signature.
	Verify(tokenString string) (*Claims, error)
}
