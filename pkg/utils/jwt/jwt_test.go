package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.GenerateToken(7, "owner")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.BusinessID)
	assert.Equal(t, "owner", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Rejects(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, err := m.GenerateToken(7, "owner")
	require.NoError(t, err)

	_, err = NewManager("other-secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// NewManager replaces a non-positive ttl with the default.
	m.ttl = -time.Minute
	expired, err := m.GenerateToken(7, "owner")
	require.NoError(t, err)
	_, err = m.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensAreUnique(t *testing.T) {
	m := NewManager("secret", time.Hour)
	a, err := m.GenerateToken(1, "owner")
	require.NoError(t, err)
	b, err := m.GenerateToken(1, "owner")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
