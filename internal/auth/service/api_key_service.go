package service

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/sesame/internal/errors"
)

// APIKeySize is the number of random bytes in a generated API key.
const APIKeySize = 16

// apiKeyService implements APIKeyService using Argon2id for hashing.
type apiKeyService struct {
	hasher *pwdhash.PasswordHasher
}

// GenerateAPIKey creates a new hex-encoded random API key.
func (s *apiKeyService) GenerateAPIKey() (string, error) {
	randomBytes := make([]byte, APIKeySize)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate API key")
	}
	return hex.EncodeToString(randomBytes), nil
}

// HashAPIKey hashes a plain API key using Argon2id.
func (s *apiKeyService) HashAPIKey(plainKey string) (string, error) {
	hashedKey, err := s.hasher.Hash([]byte(plainKey))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash API key")
	}
	return hashedKey, nil
}

// CompareAPIKey performs a constant-time comparison between a plain key and its hash.
func (s *apiKeyService) CompareAPIKey(plainKey string, hashedKey string) bool {
	ok, err := s.hasher.Verify([]byte(plainKey), hashedKey)
	if err != nil {
		return false
	}
	return ok
}

// NewAPIKeyService creates a new APIKeyService using the Moderate Argon2id policy.
func NewAPIKeyService() APIKeyService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &apiKeyService{
		hasher: hasher,
	}
}
