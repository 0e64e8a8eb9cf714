package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	passwordHash, err := HashPassword("sr")
	require.NoError(t, err)
	assert.NotEmpty(t, passwordHash)
	assert.NotEqual(t, "sr", passwordHash)
	assert.True(t, CheckPasswordHash("sr", passwordHash))
	assert.False(t, CheckPasswordHash("rs", passwordHash))

	cost, err := bcrypt.Cost([]byte(passwordHash))
	require.NoError(t, err)
	assert.Equal(t, PasswordHashCost, cost)

	// salted: same input, different hashes
	otherHash, err := HashPassword("sr")
	require.NoError(t, err)
	assert.NotEqual(t, passwordHash, otherHash)
	assert.True(t, CheckPasswordHash("sr", otherHash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("sr", "not-a-hash"))
	assert.False(t, CheckPasswordHash("sr", ""))
}
