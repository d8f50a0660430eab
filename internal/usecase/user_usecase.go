package usecase

import (
	"context"

	"github.com/google/uuid"

	"cardmatch/internal/domain/entity"
)

// SimulationOutput returns the refreshed user together with a short
// human-readable description of the score change.
type SimulationOutput struct {
	Message string
	User    *entity.User
}

// UserUsecase defines the interface for user profile and credit score operations.
type UserUsecase interface {
	// GetProfile loads the full profile for a user, including the ordered
	// credit history.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// SimulateScoreUpdate applies one step of the random-walk score
	// simulation, records it in the history, and returns the updated user.
	SimulateScoreUpdate(ctx context.Context, userID uuid.UUID) (*SimulationOutput, error)
}
