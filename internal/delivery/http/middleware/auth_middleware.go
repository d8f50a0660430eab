package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cardmatch/internal/domain/entity"
	domainerrors "cardmatch/internal/domain/errors"
	"cardmatch/internal/domain/repository"
	"cardmatch/internal/domain/service"
)

// userContextKey is where Authenticate stores the resolved user on the
// Echo context.
const userContextKey = "authenticatedUser"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the account behind
// it. A token whose account no longer exists is rejected the same way as a
// missing token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header must carry a bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthorized.WrapMessage("account for token no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "failed to resolve authenticated user")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// UserFromContext returns the user resolved by Authenticate. Handlers behind
// the middleware can rely on it being present.
func UserFromContext(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(userContextKey).(*entity.User)
	if !ok || user == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("no authenticated user on request")
	}
	return user, nil
}
