package model

import (
	"time"

	"github.com/google/uuid"
)

// CreditCardOfferModel mirrors the 'credit_card_offers' table. The index on
// min_credit_score supports score-band reporting in the seeding utility.
type CreditCardOfferModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CardName       string    `gorm:"type:varchar(255);not null"`
	Issuer         string    `gorm:"type:varchar(255);not null"`
	MinCreditScore int       `gorm:"not null;index"`
	MaxCreditScore *int
	AnnualFee      *float64
	APR            *float64 `gorm:"column:apr"`
	Rewards        string   `gorm:"type:text"`
	CardType       string   `gorm:"type:varchar(100)"`
	Details        string   `gorm:"type:text"`
	ImageURL       string   `gorm:"type:varchar(512)"`
	ApplyURL       string   `gorm:"type:varchar(512)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CreditCardOfferModel) TableName() string {
	return "credit_card_offers"
}
