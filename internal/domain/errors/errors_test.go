package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_Taxonomy(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrInvalidInput.HTTPCode())
	assert.Equal(t, CategoryOperational, ErrInvalidInput.Category())

	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, ErrTokenExpired.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, ErrTokenMalformed.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, ErrTokenSignatureInvalid.HTTPCode())

	assert.Equal(t, http.StatusNotFound, ErrUserNotFound.HTTPCode())

	assert.Equal(t, http.StatusInternalServerError, ErrInternalError.HTTPCode())
	assert.Equal(t, CategoryProgramming, ErrInternalError.Category())
}

func TestBaseError_WrapMessagePreservesIdentity(t *testing.T) {
	err := ErrUnauthorized.WrapMessage("authorization header is missing")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "authorization header is missing")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestBaseError_WithMessageOverridesMessage(t *testing.T) {
	err := ErrInvalidInput.WithMessage("email is required")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "email is required", err.Message())
	// The original instance is untouched.
	assert.NotEqual(t, err.Message(), ErrInvalidInput.Message())
}

func TestDatabaseExecuteError_HidesDetail(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "insert offer")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, CategoryProgramming, err.Category())
	// Clients see a generic message, the cause stays internal.
	assert.NotContains(t, err.Message(), "connection refused")
	assert.ErrorIs(t, err, cause)
}
