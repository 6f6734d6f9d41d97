// Package service provides technical services for API key handling.
package service

// APIKeyService defines operations for API key generation and validation.
type APIKeyService interface {
	// GenerateAPIKey creates a new random API key as 32 hexadecimal characters.
	GenerateAPIKey() (string, error)

	// HashAPIKey hashes a plain API key with Argon2id.
	HashAPIKey(plainKey string) (string, error)

	// CompareAPIKey reports whether plainKey matches hashedKey. Malformed hashes never match.
	CompareAPIKey(plainKey string, hashedKey string) bool
}
