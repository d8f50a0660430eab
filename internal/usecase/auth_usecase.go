// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"cardmatch/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Address     *entity.Address
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns a session token together with the authenticated user.
// The user carries no password material.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for the credential lifecycle.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account with the default starting score and an
	// empty history, then issues a session token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a session token. Unknown email
	// and wrong password fail identically, to prevent account enumeration.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
