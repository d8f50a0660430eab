package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cardmatch/internal/delivery/http/middleware"
	"cardmatch/internal/usecase"
)

// UserHandler holds dependencies for profile and credit score handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type simulationResponse struct {
	Message string    `json:"message"`
	User    *userView `json:"user"`
}

// GetProfile returns the authenticated user's full profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toUserView(profile))
}

// SimulateScore applies one simulated credit score change to the
// authenticated user and returns the refreshed profile.
func (h *UserHandler) SimulateScore(c echo.Context) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return err
	}

	output, err := h.uc.SimulateScoreUpdate(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, simulationResponse{
		Message: output.Message,
		User:    toUserView(output.User),
	})
}
