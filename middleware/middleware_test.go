package middleware

import (
	"testing"
	"time"

	"travelstar/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return s
}

func TestValidateJWT(t *testing.T) {
	claims := &Claims{
		Username: "asha",
		UserID:   "u1234567890",
		Role:     []string{"user"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	got, err := ValidateJWT("Bearer " + signed(t, claims))
	require.NoError(t, err)
	assert.Equal(t, "asha", got.Username)
	assert.Equal(t, "u1234567890", got.UserID)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("")
	assert.Error(t, err)

	_, err = ValidateJWT("Bearer not.a.token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	claims := &Claims{
		UserID: "u1234567890",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	_, err := ValidateJWT("Bearer " + signed(t, claims))
	assert.Error(t, err)
}
