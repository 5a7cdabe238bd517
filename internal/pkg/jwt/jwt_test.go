package jwt

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("uid-1", "hr@example.com", user.RoleHR)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "hr", role)

	userID, ok := decoded.Get("user_id")
	require.True(t, ok)
	assert.Equal(t, "uid-1", userID)
}

func TestGenerateAccessToken_BadDuration(t *testing.T) {
	svc := NewJWTService("secret", "forever")
	_, _, err := svc.GenerateAccessToken("uid-1", "a@example.com", user.RoleAdmin)
	assert.Error(t, err)
}

func TestRevokeAndPurge(t *testing.T) {
	svc := NewJWTService("secret", "1h")
	now := time.Now()

	svc.RevokeToken("old", now.Add(-time.Minute).Unix())
	svc.RevokeToken("fresh", now.Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("old"))
	assert.True(t, svc.IsTokenRevoked("fresh"))
	assert.False(t, svc.IsTokenRevoked("other"))

	assert.Equal(t, 1, svc.PurgeRevoked(now))
	assert.False(t, svc.IsTokenRevoked("old"))
	assert.True(t, svc.IsTokenRevoked("fresh"))
}
