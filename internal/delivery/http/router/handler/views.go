// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"cardmatch/internal/domain/entity"
)

// View DTOs keep persistence concerns out of the JSON contract. Sensitive
// fields such as the password hash never reach this layer.

type addressView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type creditHistoryView struct {
	RecordedAt time.Time `json:"recordedAt"`
	Score      int       `json:"score"`
	Note       string    `json:"note"`
}

type userView struct {
	ID            string              `json:"id"`
	Email         string              `json:"email"`
	FirstName     string              `json:"firstName"`
	LastName      string              `json:"lastName"`
	DateOfBirth   *time.Time          `json:"dateOfBirth,omitempty"`
	Address       *addressView        `json:"address,omitempty"`
	CreditScore   int                 `json:"creditScore"`
	CreditHistory []creditHistoryView `json:"creditHistory"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type offerView struct {
	ID             string   `json:"id"`
	CardName       string   `json:"cardName"`
	Issuer         string   `json:"issuer"`
	MinCreditScore int      `json:"minCreditScore"`
	MaxCreditScore *int     `json:"maxCreditScore,omitempty"`
	AnnualFee      *float64 `json:"annualFee,omitempty"`
	APR            *float64 `json:"apr,omitempty"`
	Rewards        string   `json:"rewards,omitempty"`
	CardType       string   `json:"cardType,omitempty"`
	Details        string   `json:"details,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	ApplyURL       string   `json:"applyUrl,omitempty"`
}

func toUserView(user *entity.User) *userView {
	view := &userView{
		ID:            user.ID.String(),
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		DateOfBirth:   user.DateOfBirth,
		CreditScore:   user.CreditScore,
		CreditHistory: make([]creditHistoryView, 0, len(user.CreditHistory)),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
	if user.Address != nil {
		view.Address = &addressView{
			Street:  user.Address.Street,
			City:    user.Address.City,
			State:   user.Address.State,
			ZipCode: user.Address.ZipCode,
		}
	}
	for _, entry := range user.CreditHistory {
		view.CreditHistory = append(view.CreditHistory, creditHistoryView{
			RecordedAt: entry.RecordedAt,
			Score:      entry.Score,
			Note:       entry.Note,
		})
	}
	return view
}

func toOfferViews(offers []*entity.CreditCardOffer) []*offerView {
	views := make([]*offerView, 0, len(offers))
	for _, offer := range offers {
		views = append(views, &offerView{
			ID:             offer.ID.String(),
			CardName:       offer.CardName,
			Issuer:         offer.Issuer,
			MinCreditScore: offer.MinCreditScore,
			MaxCreditScore: offer.MaxCreditScore,
			AnnualFee:      offer.AnnualFee,
			APR:            offer.APR,
			Rewards:        offer.Rewards,
			CardType:       offer.CardType,
			Details:        offer.Details,
			ImageURL:       offer.ImageURL,
			ApplyURL:       offer.ApplyURL,
		})
	}
	return views
}
