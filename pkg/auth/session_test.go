package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	accountID := uuid.New()

	token, err := m.Issue(accountID, "Maria Gonzales")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "Maria Gonzales", claims.FullName)
	assert.Equal(t, "sosfido", claims.Issuer)
}

func TestSessionWrongSecret(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	token, err := m.Issue(uuid.New(), "Maria Gonzales")
	require.NoError(t, err)

	other := NewSessionManager("another-secret", time.Hour)
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestSessionExpired(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute)
	token, err := m.Issue(uuid.New(), "Maria Gonzales")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken(20)
	require.NoError(t, err)
	b, err := GenerateToken(20)
	require.NoError(t, err)

	assert.Len(t, a, 40) // hex doubles the byte count
	assert.NotEqual(t, a, b)
}
