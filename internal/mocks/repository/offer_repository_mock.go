package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cardmatch/internal/domain/entity"
)

// OfferRepository is a testify mock for the domain offer repository.
type OfferRepository struct {
	mock.Mock
}

func (m *OfferRepository) ListAll(ctx context.Context) ([]*entity.CreditCardOffer, error) {
	args := m.Called(ctx)
	if offers, ok := args.Get(0).([]*entity.CreditCardOffer); ok {
		return offers, args.Error(1)
	}
	return nil, args.Error(1)
}
