// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cardmatch/config"
	domainerrors "cardmatch/internal/domain/errors"
	"cardmatch/internal/domain/service"
	"cardmatch/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Process-wide signing secret.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService. A missing signing secret
// is a fatal configuration error: the constructor fails and the process never
// starts serving traffic.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.JWT,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token binding the subject user ID.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token string and returns its
// claims. Failures are classified into the domain's token error taxonomy.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if !token.Valid {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("token rejected")
	}
	if claims.UserID == uuid.Nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("token missing subject")
	}

	return claims, nil
}

// classifyTokenError maps jwt library failures onto the domain taxonomy:
// expired, tampered signature, or anything else as malformed.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WrapMessage("token verification failed")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return domainerrors.ErrTokenSignatureInvalid.WrapMessage("token verification failed")
	default:
		return domainerrors.ErrTokenMalformed.WrapMessage("token verification failed")
	}
}
