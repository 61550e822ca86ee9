package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret", time.Minute, "event-planner")
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "orga@example.com", "Orga")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "orga@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("secret", -time.Minute, "event-planner")
	token, err := m.GenerateAccessToken(uuid.New(), "orga@example.com", "")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, ErrExpired))
}

func TestValidate_WrongSecretOrIssuer(t *testing.T) {
	token, err := NewManager("secret", time.Minute, "event-planner").GenerateAccessToken(uuid.New(), "", "")
	require.NoError(t, err)

	_, err = NewManager("other", time.Minute, "event-planner").ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = NewManager("secret", time.Minute, "someone-else").ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = NewManager("secret", time.Minute, "event-planner").ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}
