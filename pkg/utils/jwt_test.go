package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "round-trip-secret")

	userID := uuid.New()
	token, err := CreateToken(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

// The secret is read per call, so one set after package init (as godotenv
// does) is picked up, and a rotated secret invalidates old tokens.
func TestTokenSecretReadAtCallTime(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
