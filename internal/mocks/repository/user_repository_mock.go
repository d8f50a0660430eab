// Package repository provides test doubles for the domain repository ports.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cardmatch/internal/domain/entity"
)

// UserRepository is a testify mock for the domain user repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) CredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	args := m.Called(ctx, email)
	if credential, ok := args.Get(0).(*entity.Credential); ok {
		return credential, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *UserRepository) UpdateScore(ctx context.Context, id uuid.UUID, score int, entry entity.CreditHistoryEntry) error {
	args := m.Called(ctx, id, score, entry)
	return args.Error(0)
}
