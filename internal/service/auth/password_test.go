package auth_test

import (
	"testing"

	"github.com/aimun-naharr/food-donation-app-server/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher()
	verifier := auth.NewBcryptVerifier()

	hashed, err := hasher.Hash("pw1")
	require.NoError(t, err)

	// The stored credential never equals the plaintext.
	assert.NotEqual(t, "pw1", hashed)

	// The documented work factor is baked into the hash.
	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, auth.BcryptCost, cost)

	assert.NoError(t, verifier.Compare(hashed, "pw1"))
	assert.Error(t, verifier.Compare(hashed, "wrong"))
}

func TestBcryptHashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher()

	first, err := hasher.Hash("pw1")
	require.NoError(t, err)
	second, err := hasher.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
