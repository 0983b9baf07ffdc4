package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseToken(t *testing.T, token, secret string) (*Claims, error) {
	t.Helper()
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	return claims, err
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "admin", "secreto", time.Hour)
	require.NoError(t, err)

	claims, err := parseToken(t, token, "secreto")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestGenerateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(7, "admin", "secreto", time.Hour)
	require.NoError(t, err)

	_, err = parseToken(t, token, "otro")
	assert.Error(t, err)
}

func TestGenerateTokenExpired(t *testing.T) {
	token, err := GenerateToken(7, "admin", "secreto", -time.Minute)
	require.NoError(t, err)

	_, err = parseToken(t, token, "secreto")
	assert.Error(t, err)
}
