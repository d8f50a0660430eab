package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardmatch/config"
	domainerrors "cardmatch/internal/domain/errors"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.JWT = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	require.Error(t, err)

	_, err = NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenSignatureInvalid)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := &jwtService{secret: "test-secret", ttl: -time.Minute}

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}
