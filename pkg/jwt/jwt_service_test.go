package jwt

import (
	"canteen-queue-optimizer/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndResolveToken(t *testing.T) {
	svc := NewJWTService()

	token := svc.GenerateTokenUser(7, "budi@student.ac.id")
	require.NotEmpty(t, token)

	userID, email, err := svc.GetUserByToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, "budi@student.ac.id", email)
}

func TestMalformedTokenRejected(t *testing.T) {
	svc := NewJWTService()

	_, _, err := svc.GetUserByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := NewJWTService()

	token := svc.GenerateTokenUser(7, "budi@student.ac.id")
	require.NotEmpty(t, token)

	_, _, err := svc.GetUserByToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
