package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)

	assert.True(t, CheckPasswordHash(hash, "Passw0rd!"))
	assert.False(t, CheckPasswordHash(hash, "passw0rd!"))
	assert.False(t, CheckPasswordHash("not-a-hash", "Passw0rd!"))
}
