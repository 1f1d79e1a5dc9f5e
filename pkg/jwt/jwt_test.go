package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager(&Config{
		Secret:      "test-secret",
		Issuer:      "tunewave",
		TokenExpiry: time.Hour,
	})

	token, err := m.GenerateToken(42, "alice@example.com", "NormalUser")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "NormalUser", claims.Role)
	assert.Equal(t, "tunewave", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	m1 := NewManager(&Config{Secret: "secret-one"})
	m2 := NewManager(&Config{Secret: "secret-two"})

	token, err := m1.GenerateToken(1, "a@example.com", "Admin")
	require.NoError(t, err)

	_, err = m2.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewManager(&Config{
		Secret:      "test-secret",
		TokenExpiry: -time.Minute,
	})

	token, err := m.GenerateToken(1, "a@example.com", "Admin")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	m := NewManager(&Config{Secret: "test-secret"})

	_, err := m.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateShortLivedToken(t *testing.T) {
	m := NewManager(&Config{
		Secret:           "test-secret",
		TokenExpiry:      time.Hour,
		ShortTokenExpiry: 15 * time.Minute,
	})

	token, err := m.GenerateShortLivedToken(7, "b@example.com", "PremiumUser")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Minute)
}
