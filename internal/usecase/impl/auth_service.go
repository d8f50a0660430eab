// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"cardmatch/internal/domain/entity"
	domainerrors "cardmatch/internal/domain/errors"
	"cardmatch/internal/domain/repository"
	"cardmatch/internal/domain/service"
	"cardmatch/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register orchestrates the complete registration process: required-field
// checks, hashing, uniqueness enforcement and token issuance.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("email, password, firstName and lastName are required")
	}

	srv.logger.Info("Starting registration", slog.String("email", email))

	// Hashing is CPU-bound, keep it outside the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Email:       email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Address:     input.Address,
		CreditScore: entity.StartingCreditScore,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.CredentialByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to check existing credential")
		}

		return userRepo.Create(ctx, newUser, passwordHash)
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.logger.Info("Registration completed", slog.String("userID", newUser.ID.String()))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login verifies the supplied credentials and issues a session token. An
// unknown email and a wrong password return the same error so callers cannot
// probe which addresses are registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("email and password are required")
	}

	var authenticatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		credential, err := userRepo.CredentialByEmail(ctx, email)
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		if err != nil {
			return errors.Wrap(err, "failed to load credential")
		}

		if !srv.hasher.Check(input.Password, credential.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		authenticatedUser, err = userRepo.FindByID(ctx, credential.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for credential")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(authenticatedUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.logger.Info("Login succeeded", slog.String("userID", authenticatedUser.ID.String()))

	return &usecase.AuthOutput{Token: token, User: authenticatedUser}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
