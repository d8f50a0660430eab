// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cardmatch/internal/domain/entity"
)

// OfferRepository is the read-only catalog of credit-card offers. Catalog
// contents are maintained offline by the seeding utility; the service itself
// never mutates offers.
type OfferRepository interface {
	// ListAll retrieves every offer in the catalog. No ordering is
	// guaranteed; callers sort according to their own rules.
	ListAll(ctx context.Context) ([]*entity.CreditCardOffer, error)
}
