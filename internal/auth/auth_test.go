package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	details, err := GenerateJWT("user-1", "John Smith", "john@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, details.Token)
	assert.Equal(t, "Bearer", details.TokenType)

	claims, err := ValidateJWT(details.Token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "John Smith", claims.FullName)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	details, err := GenerateJWT("user-1", "John Smith", "john@example.com", "secret")
	require.NoError(t, err)

	_, err = ValidateJWT(details.Token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateJWTRequiresInputs(t *testing.T) {
	_, err := GenerateJWT("user-1", "John Smith", "john@example.com", "")
	assert.Error(t, err)

	_, err = GenerateJWT("", "John Smith", "john@example.com", "secret")
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token", "secret")
	assert.Error(t, err)

	_, err = ValidateJWT("", "secret")
	assert.Error(t, err)
}
