// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cardmatch/internal/domain/entity"
	domainerrors "cardmatch/internal/domain/errors"
	"cardmatch/internal/domain/repository"
	"cardmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// preloadHistory loads the score history in insertion order. The secondary
// id ordering keeps entries stable when several land in the same instant.
func preloadHistory(db *gorm.DB) *gorm.DB {
	return db.Order("recorded_at ASC, id ASC")
}

// FindByID retrieves a single user by their unique ID, history included.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CreditHistory", preloadHistory).
		First(&userM, "id = ?", id).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their lower-cased email, history included.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CreditHistory", preloadHistory).
		First(&userM, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// CredentialByEmail retrieves only the login credential columns for an email.
// The hash never rides along on profile reads.
func (repo *userRepository) CredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Select("id", "email", "password_hash", "created_at").
		First(&userM, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return &entity.Credential{
		UserID:       userM.ID,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		CreatedAt:    userM.CreatedAt,
	}, nil
}

// Create persists a new user entity together with their password hash.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateScore sets the current score and appends one history row. The two
// statements rely on the surrounding transaction for atomicity.
func (repo *userRepository) UpdateScore(ctx context.Context, id uuid.UUID, score int, entry entity.CreditHistoryEntry) error {
	res := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("credit_score", score)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update credit score")
	}
	if res.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	historyM := &model.CreditHistoryModel{
		UserID:     id,
		RecordedAt: entry.RecordedAt,
		Score:      entry.Score,
		Note:       entry.Note,
	}
	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append credit history")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity. The
// password hash is intentionally dropped here.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	history := make([]entity.CreditHistoryEntry, 0, len(data.CreditHistory))
	for _, h := range data.CreditHistory {
		history = append(history, entity.CreditHistoryEntry{
			RecordedAt: h.RecordedAt,
			Score:      h.Score,
			Note:       h.Note,
		})
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		DateOfBirth:   data.DateOfBirth,
		Address:       toAddressDomain(data),
		CreditScore:   data.CreditScore,
		CreditHistory: history,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toAddressDomain(data *model.UserModel) *entity.Address {
	if data.Street == "" && data.City == "" && data.State == "" && data.ZipCode == "" {
		return nil
	}

	return &entity.Address{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		ZipCode: data.ZipCode,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:          data.ID,
		Email:       data.Email,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		DateOfBirth: data.DateOfBirth,
		CreditScore: data.CreditScore,
	}
	if data.Address != nil {
		userM.Street = data.Address.Street
		userM.City = data.Address.City
		userM.State = data.Address.State
		userM.ZipCode = data.Address.ZipCode
	}

	return userM
}
