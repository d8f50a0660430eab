// Package service provides test doubles for the domain service ports.
package service

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cardmatch/internal/domain/service"
)

// PasswordHasher is a testify mock for the password hashing port.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

// TokenService is a testify mock for the session token port.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}
