package domain

import (
	"github.com/allisson/sesame/internal/errors"
)

// Cryptographic and key configuration errors.
//
// None of these errors carry key material or plaintext in their messages; callers
// add the key id at most.
var (
	// ErrNoEncryptionKeys indicates the key registry is empty. The process must
	// refuse to start without at least one key.
	ErrNoEncryptionKeys = errors.Wrap(errors.ErrConfiguration, "no encryption keys configured")

	// ErrInvalidEncryptionKeysFormat indicates ENCRYPTION_KEYS could not be parsed.
	ErrInvalidEncryptionKeysFormat = errors.Wrap(errors.ErrConfiguration, "invalid ENCRYPTION_KEYS format")

	// ErrDuplicateKeyID indicates two configured keys share the same id.
	ErrDuplicateKeyID = errors.Wrap(errors.ErrConfiguration, "duplicate encryption key id")

	// ErrInvalidIterations indicates the key derivation iteration count is below the floor.
	ErrInvalidIterations = errors.Wrap(errors.ErrConfiguration, "invalid key derivation iterations")

	// ErrKeyNotFound indicates a record references a key id that is not in the registry.
	// Reads surface this as not-found; rotation treats it as fatal.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "encryption key not found")

	// ErrInvalidKeyMaterial indicates empty key material was handed to the cipher.
	ErrInvalidKeyMaterial = errors.Wrap(errors.ErrInvalidInput, "invalid key material")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This covers a wrong key, a tampered or truncated ciphertext and a salt of
	// the wrong size. The specific cause is not disclosed. Stored records are
	// written by the vault itself, so it maps to an internal error.
	ErrDecryptionFailed = errors.New("decryption failed")
)
