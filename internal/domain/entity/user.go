// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credit score bounds used across the whole system. Every stored score and
// every score accepted by the recommendation engine lies inside this range.
const (
	MinCreditScore = 300
	MaxCreditScore = 850

	// StartingCreditScore is assigned to every newly registered user.
	StartingCreditScore = MinCreditScore
)

// ClampScore forces a score into the valid [MinCreditScore, MaxCreditScore] range.
func ClampScore(score int) int {
	if score < MinCreditScore {
		return MinCreditScore
	}
	if score > MaxCreditScore {
		return MaxCreditScore
	}

	return score
}

// ValidScore reports whether a score lies inside the valid range.
func ValidScore(score int) bool {
	return score >= MinCreditScore && score <= MaxCreditScore
}

// User is the core entity of the system, representing a registered account.
// The password hash is deliberately NOT part of this entity; it lives on the
// Credential record and never travels with profile data.
type User struct {
	ID            uuid.UUID            // The unique identifier for the user.
	Email         string               // Lower-cased email, the login identifier.
	FirstName     string               // The user's given name.
	LastName      string               // The user's family name.
	DateOfBirth   *time.Time           // Optional date of birth.
	Address       *Address             // Optional postal address.
	CreditScore   int                  // Current simulated credit score, always within [300, 850].
	CreditHistory []CreditHistoryEntry // Append-only score history, ordered by insertion time.
	CreatedAt     time.Time            // Timestamp of account creation.
	UpdatedAt     time.Time            // Timestamp of the last modification.
}

// Address is a plain value object embedded in the User aggregate.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// CreditHistoryEntry records one simulated score change. Entries are only ever
// appended, never reordered or pruned.
type CreditHistoryEntry struct {
	RecordedAt time.Time // When the change was applied.
	Score      int       // The score after the change.
	Note       string    // Human-readable description of the signed delta.
}

// Credential is the email/password login record for a user. It is the only
// place a password hash appears in the domain, and it is never serialized into
// any API response.
type Credential struct {
	UserID       uuid.UUID // The user this credential belongs to.
	Email        string    // Lower-cased email, unique across credentials.
	PasswordHash string    // bcrypt digest of the password, salt embedded.
	CreatedAt    time.Time
}
