package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cardmatch/internal/delivery/http/middleware"
	"cardmatch/internal/usecase"
)

// OfferHandler holds dependencies for credit card offer handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{uc: uc, logger: logger}
}

// List returns the whole offer catalog. No authentication required.
func (h *OfferHandler) List(c echo.Context) error {
	offers, err := h.uc.ListOffers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toOfferViews(offers))
}

// Recommended returns the offers the authenticated user's current credit
// score qualifies for.
func (h *OfferHandler) Recommended(c echo.Context) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return err
	}

	offers, err := h.uc.RecommendedOffers(c.Request().Context(), user.CreditScore)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toOfferViews(offers))
}
