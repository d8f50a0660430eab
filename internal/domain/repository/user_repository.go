// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cardmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence. The application layer handles
// these without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrCredentialNotFound is returned when no credential exists for an email.
	ErrCredentialNotFound = errors.New("credential not found")
)

// UserRepository is the credential store: it owns user records together with
// their login credentials and score history.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, history included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// CredentialByEmail retrieves the login credential for a lower-cased
	// email. This is the only read that exposes the password hash.
	CredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// Create persists a new user together with their password hash.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// UpdateScore sets the user's current score and appends one history
	// entry. Both writes must land atomically; run it inside a transaction.
	UpdateScore(ctx context.Context, id uuid.UUID, score int, entry entity.CreditHistoryEntry) error
}
