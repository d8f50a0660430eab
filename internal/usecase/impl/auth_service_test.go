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
	mockSvc "cardmatch/internal/mocks/service"
	"cardmatch/internal/usecase"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.UserRepository
	hasher       *mockSvc.PasswordHasher
	tokenService *mockSvc.TokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := new(mockRepo.UserRepository)
	hasher := new(mockSvc.PasswordHasher)
	tokenService := new(mockSvc.TokenService)
	txManager := &stubTransactionManager{
		factory: &stubRepositoryFactory{userRepo: userRepo},
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.On("Hash", "Password123!").Return("hashed-password", nil)
	fx.userRepo.On("CredentialByEmail", ctx, "alice@example.com").
		Return(nil, repository.ErrCredentialNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = userID
		}).
		Return(nil)
	fx.tokenService.On("Issue", userID).Return("session-token", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:     "Alice@Example.com",
		Password:  "Password123!",
		FirstName: "Alice",
		LastName:  "Smith",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, entity.StartingCreditScore, output.User.CreditScore)
	assert.Empty(t, output.User.CreditHistory)
	fx.userRepo.AssertExpectations(t)
	fx.tokenService.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "Password123!").Return("hashed-password", nil)
	fx.userRepo.On("CredentialByEmail", ctx, "alice@example.com").
		Return(&entity.Credential{UserID: uuid.New(), Email: "alice@example.com"}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:     "alice@example.com",
		Password:  "Password123!",
		FirstName: "Alice",
		LastName:  "Smith",
	})

	require.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{"missing email", &usecase.RegisterInput{Password: "pw", FirstName: "A", LastName: "B"}},
		{"missing password", &usecase.RegisterInput{Email: "a@b.com", FirstName: "A", LastName: "B"}},
		{"missing first name", &usecase.RegisterInput{Email: "a@b.com", Password: "pw", LastName: "B"}},
		{"missing last name", &usecase.RegisterInput{Email: "a@b.com", Password: "pw", FirstName: "A"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := fx.service.Register(ctx, tc.input)
			require.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com", CreditScore: 650}

	fx.userRepo.On("CredentialByEmail", ctx, "alice@example.com").
		Return(&entity.Credential{UserID: userID, Email: "alice@example.com", PasswordHash: "stored-hash"}, nil)
	fx.hasher.On("Check", "Password123!", "stored-hash").Return(true)
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.tokenService.On("Issue", userID).Return("session-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Alice@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, userID, output.User.ID)
	fx.userRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	ctx := context.Background()

	unknownFx := createTestAuthService(t)
	unknownFx.userRepo.On("CredentialByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrCredentialNotFound)

	_, unknownErr := unknownFx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	wrongPwFx := createTestAuthService(t)
	wrongPwFx.userRepo.On("CredentialByEmail", ctx, "alice@example.com").
		Return(&entity.Credential{UserID: uuid.New(), PasswordHash: "stored-hash"}, nil)
	wrongPwFx.hasher.On("Check", "bad-guess", "stored-hash").Return(false)

	_, wrongPwErr := wrongPwFx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "bad-guess",
	})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}
