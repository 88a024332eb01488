package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInstallerPasswordPlaintext(t *testing.T) {
	// Legacy installer rows store the password as-is.
	assert.True(t, CheckInstallerPassword("secret", "secret"))
	assert.False(t, CheckInstallerPassword("secret", "wrong"))
	assert.False(t, CheckInstallerPassword("secret", ""))
}

func TestCheckInstallerPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, CheckInstallerPassword(hash, "secret"))
	assert.False(t, CheckInstallerPassword(hash, "wrong"))
}

func TestCheckInstallerPasswordHashIsNotAccepted(t *testing.T) {
	// Submitting the stored hash itself must not authenticate.
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.False(t, CheckInstallerPassword(hash, hash))
}
