package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(4)

	hash, err := h.Hash("pw1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Verify("pw1", hash))
	assert.False(t, h.Verify("wrong", hash))
}

func TestHasher_SaltsEachHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(4)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestHasher_VerifyMalformedHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(4)
	assert.False(t, h.Verify("pw1", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("pw1", ""))
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	// Out-of-range costs must still produce a working hasher.
	h := NewHasher(-1)
	hash, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.True(t, h.Verify("pw1", hash))
}
