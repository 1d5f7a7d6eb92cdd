package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Sup3rSecret!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	ok, err := Verify("Sup3rSecret!", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same-input")
	require.NoError(t, err)
	second, err := Hash("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	for _, h := range []string{first, second} {
		ok, err := Verify("same-input", h)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerifyCorruptHash(t *testing.T) {
	for _, h := range []string{"", "not-a-bcrypt-hash", "$2a$xx"} {
		ok, err := Verify("anything", h)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrCorruptHash)
	}
}
