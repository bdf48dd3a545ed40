package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
	"bazaar/internal/domain/entity"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: ttl},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", time.Hour))

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_ValidateToken_UniformFailures(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	otherSvc, err := NewJWTService(newTestConfig("other-secret", time.Hour))
	require.NoError(t, err)

	expiredSvc, err := NewJWTService(newTestConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	forged, err := otherSvc.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)
	expired, err := expiredSvc.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	cases := map[string]string{
		"malformed":       "not-a-token",
		"wrong signature": forged,
		"expired":         expired,
		"empty":           "",
	}

	var messages []string
	for name, token := range cases {
		claims, err := svc.ValidateToken(token)
		require.Error(t, err, name)
		assert.Nil(t, claims, name)
		messages = append(messages, err.Error())
	}

	// Every failure reads identically so a caller cannot probe for the cause.
	for _, msg := range messages {
		assert.Equal(t, messages[0], msg)
	}
}

func TestJWTService_ValidateToken_RejectsUnknownRole(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), entity.Role("superuser"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", 90*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 90*time.Minute, svc.AccessTokenDuration())
}
