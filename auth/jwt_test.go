package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", "skillswap", time.Hour)

	token, err := svc.GenerateToken("user-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "skillswap", claims.Issuer)
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	svc := NewJWTService("test-secret", "skillswap", time.Hour)
	_, err := svc.GenerateToken("", "user")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "skillswap", time.Hour)
	verifier := NewJWTService("secret-b", "skillswap", time.Hour)

	token, err := issuer.GenerateToken("user-1", "user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	issuer := NewJWTService("test-secret", "someone-else", time.Hour)
	verifier := NewJWTService("test-secret", "skillswap", time.Hour)

	token, err := issuer.GenerateToken("user-1", "user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "skillswap", -time.Minute)

	token, err := svc.GenerateToken("user-1", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsEmpty(t *testing.T) {
	svc := NewJWTService("test-secret", "skillswap", time.Hour)
	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}
