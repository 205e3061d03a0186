package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("testpass", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "testpass", hash)

	assert.True(t, VerifyPassword(hash, "testpass"))
}

func TestHashPasswordSalted(t *testing.T) {
	// Same input must hash differently on each call.
	h1, err := HashPassword("testpass", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("testpass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword(h1, "testpass"))
	assert.True(t, VerifyPassword(h2, "testpass"))
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, VerifyPassword(hash, "battery staple"))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	// A broken hash reports false instead of erroring out.
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "whatever"))
	assert.False(t, VerifyPassword("", "whatever"))
}
