// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CreditCardOffer is a single card product in the catalog. Offers are
// immutable within the service; the catalog is maintained by the offline
// seeding utility.
type CreditCardOffer struct {
	ID             uuid.UUID // The unique identifier for the offer.
	CardName       string    // Product name, e.g. "Sapphire Preferred".
	Issuer         string    // Issuing bank, e.g. "Chase".
	MinCreditScore int       // Lowest score eligible for this card.
	MaxCreditScore *int      // Highest eligible score; nil means unbounded above.
	AnnualFee      *float64  // Annual fee in dollars, nil if not published.
	APR            *float64  // Representative APR, nil if not published.
	Rewards        string    // Free-text rewards description.
	CardType       string    // e.g. "Cash Back", "Travel", "Balance Transfer".
	Details        string    // Longer marketing description.
	ImageURL       string    // Optional card art URL.
	ApplyURL       string    // Optional application URL.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EligibleFor reports whether a user with the given score falls inside the
// offer's eligibility window [MinCreditScore, MaxCreditScore].
func (o *CreditCardOffer) EligibleFor(score int) bool {
	if score < o.MinCreditScore {
		return false
	}
	if o.MaxCreditScore != nil && score > *o.MaxCreditScore {
		return false
	}

	return true
}
