package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "birim-test-sirri"

func TestSignAndParseRoundTrip(t *testing.T) {
	signed, err := Sign(testSecret, 42, "kisi@test.local")
	require.NoError(t, err)

	userID, email, err := Parse(testSecret, signed)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.Equal(t, "kisi@test.local", email)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := Sign(testSecret, 42, "kisi@test.local")
	require.NoError(t, err)

	_, _, err = Parse("baska-sir", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, _, err := Parse(testSecret, "bu-bir-jwt-degil")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	past := time.Now().UTC().Add(-2 * time.Hour)
	claims := Claims{
		Email: "kisi@test.local",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, _, err = Parse(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsNonNumericSubject(t *testing.T) {
	now := time.Now().UTC()
	claims := Claims{
		Email: "kisi@test.local",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, _, err = Parse(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
