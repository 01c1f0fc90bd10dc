package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	SetJWTKey("test-secret")

	access, refresh := GenerateTokens("user@example.com", "uid-123")
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	SetJWTKey("key-one")
	access, _ := GenerateTokens("user@example.com", "uid-123")

	SetJWTKey("key-two")
	_, err := ValidateToken(access)
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	pwd := "hunter22"
	hashed := HashPassword(&pwd)
	require.NotNil(t, hashed)
	assert.NotEqual(t, pwd, *hashed)

	ok, _ := VerifyPassword(*hashed, pwd)
	assert.True(t, ok)
	ok, _ = VerifyPassword(*hashed, "wrong")
	assert.False(t, ok)
}
