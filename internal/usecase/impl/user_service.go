package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"cardmatch/internal/domain/entity"
	domainerrors "cardmatch/internal/domain/errors"
	"cardmatch/internal/domain/repository"
	"cardmatch/internal/usecase"
)

// scoreDeltaSpread bounds one simulation step to [-25, +25].
const scoreDeltaSpread = 25

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger

	// deltaFn produces one random-walk step. Overridable in tests.
	deltaFn func() int
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
		deltaFn: func() int {
			return rand.IntN(2*scoreDeltaSpread+1) - scoreDeltaSpread
		},
	}
}

// GetProfile loads the full profile, including the ordered credit history.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user profile")
	}
	return user, nil
}

// SimulateScoreUpdate applies one random-walk step to the user's credit
// score, clamped to the valid range, and appends a history entry. The score
// update and the history insert commit together.
func (srv *userService) SimulateScoreUpdate(ctx context.Context, userID uuid.UUID) (*usecase.SimulationOutput, error) {
	current, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for simulation")
	}

	delta := srv.deltaFn()
	newScore := entity.ClampScore(current.CreditScore + delta)
	note := fmt.Sprintf("Simulated score update. Change: %+d", delta)

	entry := entity.CreditHistoryEntry{
		RecordedAt: time.Now(),
		Score:      newScore,
		Note:       note,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().UpdateScore(ctx, userID, newScore, entry)
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist score update")
	}

	srv.logger.Info("Credit score updated",
		slog.String("userID", userID.String()),
		slog.Int("previousScore", current.CreditScore),
		slog.Int("newScore", newScore),
	)

	updated, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user after simulation")
	}

	return &usecase.SimulationOutput{Message: note, User: updated}, nil
}
