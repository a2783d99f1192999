package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService("test-secret", "faena", 60)

	token, expiresIn, err := service.GenerateToken(42, "ana@faena.cl", "ADMIN")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ana@faena.cl", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("test-secret", "faena", 60)
	verifier := NewJWTService("other-secret", "faena", 60)

	token, _, err := issuer.GenerateToken(42, "ana@faena.cl", "VIEWER")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret", "faena", -1)

	token, _, err := service.GenerateToken(42, "ana@faena.cl", "VIEWER")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret", "faena", 60)

	claims, err := service.ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
