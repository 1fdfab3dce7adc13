//go:build unit

package jwt_test

import (
	"testing"
	"time"

	pkgjwt "mine-dine/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, secret string, mutate func(*pkgjwt.Claims)) string {
	t.Helper()

	claims := &pkgjwt.Claims{
		UserID: uuid.New(),
		Role:   "guest",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	if mutate != nil {
		mutate(claims)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	verifier := pkgjwt.NewVerifier(testSecret)

	t.Run("valid token round-trips the claims", func(t *testing.T) {
		userID := uuid.New()
		tokenString := signToken(t, testSecret, func(c *pkgjwt.Claims) {
			c.UserID = userID
			c.Role = "host"
		})

		claims, err := verifier.ValidateToken(tokenString)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "host", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString := signToken(t, testSecret, func(c *pkgjwt.Claims) {
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		})

		_, err := verifier.ValidateToken(tokenString)
		assert.ErrorIs(t, err, pkgjwt.ErrExpiredToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		tokenString := signToken(t, "other-secret", nil)

		_, err := verifier.ValidateToken(tokenString)
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
	})
}
