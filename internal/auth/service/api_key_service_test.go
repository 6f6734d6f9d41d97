package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIKeyService(t *testing.T) {
	service := NewAPIKeyService()
	assert.NotNil(t, service)
	assert.IsType(t, &apiKeyService{}, service)
}

func TestAPIKeyService_GenerateAPIKey(t *testing.T) {
	service := NewAPIKeyService()

	t.Run("Success_GeneratesHexKey", func(t *testing.T) {
		key, err := service.GenerateAPIKey()
		require.NoError(t, err)
		assert.Len(t, key, APIKeySize*2)

		decoded, err := hex.DecodeString(key)
		require.NoError(t, err)
		assert.Len(t, decoded, APIKeySize)
	})

	t.Run("Success_GeneratesUniqueKeys", func(t *testing.T) {
		key1, err := service.GenerateAPIKey()
		require.NoError(t, err)
		key2, err := service.GenerateAPIKey()
		require.NoError(t, err)

		assert.NotEqual(t, key1, key2)
	})
}

func TestAPIKeyService_HashAndCompare(t *testing.T) {
	service := NewAPIKeyService()

	hashedKey, err := service.HashAPIKey("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	t.Run("Success_HashIsArgon2id", func(t *testing.T) {
		assert.Contains(t, hashedKey, "$argon2id$")
		assert.NotContains(t, hashedKey, "0123456789abcdef0123456789abcdef")
	})

	t.Run("Success_SameKeyHashesDifferently", func(t *testing.T) {
		other, err := service.HashAPIKey("0123456789abcdef0123456789abcdef")
		require.NoError(t, err)
		assert.NotEqual(t, hashedKey, other)
	})

	t.Run("Success_MatchingKey", func(t *testing.T) {
		assert.True(t, service.CompareAPIKey("0123456789abcdef0123456789abcdef", hashedKey))
	})

	t.Run("Failure_WrongKey", func(t *testing.T) {
		assert.False(t, service.CompareAPIKey("fedcba9876543210fedcba9876543210", hashedKey))
	})

	t.Run("Failure_EmptyKey", func(t *testing.T) {
		assert.False(t, service.CompareAPIKey("", hashedKey))
	})

	t.Run("Failure_MalformedHash", func(t *testing.T) {
		assert.False(t, service.CompareAPIKey("0123456789abcdef0123456789abcdef", "not-a-hash"))
	})
}
