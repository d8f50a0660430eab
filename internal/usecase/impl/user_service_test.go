package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardmatch/internal/domain/entity"
	domainerrors "cardmatch/internal/domain/errors"
	"cardmatch/internal/domain/repository"
	mockRepo "cardmatch/internal/mocks/repository"
)

type userServiceFixtures struct {
	service  *userService
	userRepo *mockRepo.UserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := new(mockRepo.UserRepository)
	txManager := &stubTransactionManager{
		factory: &stubRepositoryFactory{userRepo: userRepo},
	}

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	}).(*userService)

	return userServiceFixtures{service: service, userRepo: userRepo}
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com", CreditScore: 650}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)

	require.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_SimulateScoreUpdate_AppliesDelta(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.service.deltaFn = func() int { return 10 }

	before := &entity.User{ID: userID, CreditScore: 650}
	after := &entity.User{ID: userID, CreditScore: 660}

	fx.userRepo.On("FindByID", ctx, userID).Return(before, nil).Once()
	fx.userRepo.On("UpdateScore", ctx, userID, 660, mock.AnythingOfType("entity.CreditHistoryEntry")).
		Run(func(args mock.Arguments) {
			entry := args.Get(3).(entity.CreditHistoryEntry)
			assert.Equal(t, 660, entry.Score)
			assert.Equal(t, "Simulated score update. Change: +10", entry.Note)
		}).
		Return(nil).Once()
	fx.userRepo.On("FindByID", ctx, userID).Return(after, nil).Once()

	output, err := fx.service.SimulateScoreUpdate(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Simulated score update. Change: +10", output.Message)
	assert.Equal(t, 660, output.User.CreditScore)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_SimulateScoreUpdate_ClampsAtUpperBound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.service.deltaFn = func() int { return 25 }

	before := &entity.User{ID: userID, CreditScore: 840}
	after := &entity.User{ID: userID, CreditScore: entity.MaxCreditScore}

	fx.userRepo.On("FindByID", ctx, userID).Return(before, nil).Once()
	fx.userRepo.On("UpdateScore", ctx, userID, entity.MaxCreditScore, mock.AnythingOfType("entity.CreditHistoryEntry")).
		Return(nil).Once()
	fx.userRepo.On("FindByID", ctx, userID).Return(after, nil).Once()

	output, err := fx.service.SimulateScoreUpdate(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.MaxCreditScore, output.User.CreditScore)
	// The note reports the raw delta even when the score hits the cap.
	assert.Equal(t, "Simulated score update. Change: +25", output.Message)
}

func TestUserService_SimulateScoreUpdate_ClampsAtLowerBound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.service.deltaFn = func() int { return -25 }

	before := &entity.User{ID: userID, CreditScore: 310}
	after := &entity.User{ID: userID, CreditScore: entity.MinCreditScore}

	fx.userRepo.On("FindByID", ctx, userID).Return(before, nil).Once()
	fx.userRepo.On("UpdateScore", ctx, userID, entity.MinCreditScore, mock.AnythingOfType("entity.CreditHistoryEntry")).
		Return(nil).Once()
	fx.userRepo.On("FindByID", ctx, userID).Return(after, nil).Once()

	output, err := fx.service.SimulateScoreUpdate(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.MinCreditScore, output.User.CreditScore)
	assert.Equal(t, "Simulated score update. Change: -25", output.Message)
}

func TestUserService_SimulateScoreUpdate_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.SimulateScoreUpdate(ctx, userID)

	require.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.userRepo.AssertNotCalled(t, "UpdateScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_DefaultDeltaStaysInSpread(t *testing.T) {
	fx := createTestUserService(t)

	for range 1000 {
		delta := fx.service.deltaFn()
		assert.GreaterOrEqual(t, delta, -scoreDeltaSpread)
		assert.LessOrEqual(t, delta, scoreDeltaSpread)
	}
}
