package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"cardmatch/internal/domain/entity"
	domainerrors "cardmatch/internal/domain/errors"
	"cardmatch/internal/domain/repository"
	"cardmatch/internal/usecase"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	offerRepo repository.OfferRepository
	logger    *slog.Logger
}

// OfferServiceParams holds dependencies for offerService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	OfferRepo repository.OfferRepository
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		offerRepo: params.OfferRepo,
		logger:    params.Logger,
	}
}

// ListOffers returns the whole catalog sorted by issuer, then card name.
func (srv *offerService) ListOffers(ctx context.Context) ([]*entity.CreditCardOffer, error) {
	offers, err := srv.offerRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	slices.SortFunc(offers, func(a, b *entity.CreditCardOffer) int {
		if c := strings.Compare(a.Issuer, b.Issuer); c != 0 {
			return c
		}
		return strings.Compare(a.CardName, b.CardName)
	})
	return offers, nil
}

// RecommendedOffers returns the offers a given score qualifies for, ordered
// by descending minimum score so the hardest cards to get come first.
func (srv *offerService) RecommendedOffers(ctx context.Context, score int) ([]*entity.CreditCardOffer, error) {
	if !entity.ValidScore(score) {
		return nil, domainerrors.ErrInvalidCreditScore
	}

	offers, err := srv.offerRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers for recommendation")
	}

	matched := matchOffers(offers, score)
	srv.logger.Debug("Recommendation computed",
		slog.Int("score", score),
		slog.Int("catalogSize", len(offers)),
		slog.Int("matched", len(matched)),
	)
	return matched, nil
}

// matchOffers filters the catalog down to the offers the score is eligible
// for and sorts them best match first.
func matchOffers(offers []*entity.CreditCardOffer, score int) []*entity.CreditCardOffer {
	matched := make([]*entity.CreditCardOffer, 0, len(offers))
	for _, offer := range offers {
		if offer.EligibleFor(score) {
			matched = append(matched, offer)
		}
	}

	slices.SortFunc(matched, func(a, b *entity.CreditCardOffer) int {
		if a.MinCreditScore != b.MinCreditScore {
			return b.MinCreditScore - a.MinCreditScore
		}
		return strings.Compare(a.CardName, b.CardName)
	})
	return matched
}
