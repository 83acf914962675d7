package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret123", DefaultCost)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	require.NotEqual(t, "secret123", hashed)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	require.Equal(t, DefaultCost, cost)
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret123", DefaultCost)
	require.NoError(t, err)

	require.True(t, CheckPassword(hashed, "secret123"))
	require.False(t, CheckPassword(hashed, "secret124"))
	require.False(t, CheckPassword("not-a-hash", "secret123"))
}
