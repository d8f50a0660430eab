// Seeds the credit card offer catalog from the embedded JSON fixture.
// Existing offers are replaced, so the command is safe to re-run.
package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	pgLib "github.com/slighter12/go-lib/database/postgres"

	"cardmatch/config"
	"cardmatch/internal/infra/persistence/model"
)

//go:embed offers.json
var offersJSON []byte

type offerSeed struct {
	CardName       string   `json:"cardName"`
	Issuer         string   `json:"issuer"`
	MinCreditScore int      `json:"minCreditScore"`
	MaxCreditScore *int     `json:"maxCreditScore"`
	AnnualFee      *float64 `json:"annualFee"`
	APR            *float64 `json:"apr"`
	Rewards        string   `json:"rewards"`
	CardType       string   `json:"cardType"`
	Details        string   `json:"details"`
	ImageURL       string   `json:"imageUrl"`
	ApplyURL       string   `json:"applyUrl"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}

	var seeds []offerSeed
	if err := json.Unmarshal(offersJSON, &seeds); err != nil {
		log.Fatalf("could not parse embedded offers: %v", err)
	}

	fmt.Println("Clearing existing credit card offers...")
	if err := db.Exec("DELETE FROM credit_card_offers").Error; err != nil {
		log.Fatalf("could not clear offers: %v", err)
	}

	rows := make([]model.CreditCardOfferModel, 0, len(seeds))
	for _, seed := range seeds {
		rows = append(rows, model.CreditCardOfferModel{
			CardName:       seed.CardName,
			Issuer:         seed.Issuer,
			MinCreditScore: seed.MinCreditScore,
			MaxCreditScore: seed.MaxCreditScore,
			AnnualFee:      seed.AnnualFee,
			APR:            seed.APR,
			Rewards:        seed.Rewards,
			CardType:       seed.CardType,
			Details:        seed.Details,
			ImageURL:       seed.ImageURL,
			ApplyURL:       seed.ApplyURL,
		})
	}

	if err := db.Create(&rows).Error; err != nil {
		log.Fatalf("could not insert offers: %v", err)
	}
	fmt.Printf("Successfully inserted %d credit card offers\n", len(rows))

	var excellent, good, fair, poor int
	for _, row := range rows {
		switch {
		case row.MinCreditScore >= 740:
			excellent++
		case row.MinCreditScore >= 670:
			good++
		case row.MinCreditScore >= 580:
			fair++
		default:
			poor++
		}
	}

	fmt.Println("\nOffers by credit score range:")
	fmt.Println("Excellent (740+):", excellent)
	fmt.Println("Good (670-739):", good)
	fmt.Println("Fair (580-669):", fair)
	fmt.Println("Poor (300-579):", poor)
	fmt.Println("\nDatabase seeding completed successfully")
}
