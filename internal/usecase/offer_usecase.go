package usecase

import (
	"context"

	"cardmatch/internal/domain/entity"
)

// OfferUsecase defines the interface for browsing and matching credit card offers.
type OfferUsecase interface {
	// ListOffers returns the whole catalog, sorted by issuer then card name.
	ListOffers(ctx context.Context) ([]*entity.CreditCardOffer, error)

	// RecommendedOffers returns the offers a given credit score qualifies
	// for, best match first.
	RecommendedOffers(ctx context.Context, score int) ([]*entity.CreditCardOffer, error)
}
