// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cardmatch/internal/domain/entity"
	domainerrors "cardmatch/internal/domain/errors"
	"cardmatch/internal/domain/repository"
	"cardmatch/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface using GORM.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// ListAll retrieves every offer in the catalog, in no particular order.
// Ordering rules belong to the recommendation engine, which sorts in memory.
func (repo *offerRepository) ListAll(ctx context.Context) ([]*entity.CreditCardOffer, error) {
	var offerModels []model.CreditCardOfferModel
	if err := repo.db.WithContext(ctx).Find(&offerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list offers")
	}

	offers := make([]*entity.CreditCardOffer, 0, len(offerModels))
	for i := range offerModels {
		offers = append(offers, toOfferDomain(&offerModels[i]))
	}

	return offers, nil
}

// toOfferDomain converts a GORM CreditCardOfferModel to a domain entity.
func toOfferDomain(data *model.CreditCardOfferModel) *entity.CreditCardOffer {
	if data == nil {
		return nil
	}

	return &entity.CreditCardOffer{
		ID:             data.ID,
		CardName:       data.CardName,
		Issuer:         data.Issuer,
		MinCreditScore: data.MinCreditScore,
		MaxCreditScore: data.MaxCreditScore,
		AnnualFee:      data.AnnualFee,
		APR:            data.APR,
		Rewards:        data.Rewards,
		CardType:       data.CardType,
		Details:        data.Details,
		ImageURL:       data.ImageURL,
		ApplyURL:       data.ApplyURL,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
