package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/sesame/internal/crypto/domain"
)

const (
	// SaltSize is the length in bytes of the per-encryption salt.
	SaltSize = 16

	// DefaultIterations is the PBKDF2 iteration count used when none is configured.
	DefaultIterations = 120_000

	// MinIterations is the lowest accepted PBKDF2 iteration count.
	MinIterations = 10_000

	derivedKeySize = 32
	derivedIVSize  = 12
)

// PBKDF2AESGCMCipher implements Cipher with PBKDF2-HMAC-SHA256 key derivation and
// AES-256-GCM.
//
// For every encryption a random 16-byte salt is drawn and PBKDF2 stretches the
// key material and salt into 44 bytes: a 32-byte AES-256 key followed by a 12-byte
// GCM nonce. Because each salt yields a distinct derived key, the derived nonce is
// used exactly once per key.
//
// GCM authenticates the ciphertext, so decrypting with the wrong key material or a
// modified ciphertext always fails with ErrDecryptionFailed instead of returning
// garbage.
//
// Thread safety:
//
//	The cipher is stateless and safe for concurrent use from multiple goroutines.
type PBKDF2AESGCMCipher struct {
	iterations int
}

// NewPBKDF2AESGCM creates a cipher using the given PBKDF2 iteration count.
// Zero selects DefaultIterations; values below MinIterations are rejected.
func NewPBKDF2AESGCM(iterations int) (*PBKDF2AESGCMCipher, error) {
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d is below the minimum of %d", cryptoDomain.ErrInvalidIterations, iterations, MinIterations)
	}
	return &PBKDF2AESGCMCipher{iterations: iterations}, nil
}

// Iterations returns the configured PBKDF2 iteration count.
func (c *PBKDF2AESGCMCipher) Iterations() int {
	return c.iterations
}

// Encrypt encrypts plaintext under keyMaterial with a freshly generated salt.
//
// The returned salt and ciphertext are separate values and must be stored as
// separate fields. The ciphertext carries the 16-byte GCM tag at its end.
func (c *PBKDF2AESGCMCipher) Encrypt(keyMaterial, plaintext []byte) (salt, ciphertext []byte, err error) {
	if len(keyMaterial) == 0 {
		return nil, nil, cryptoDomain.ErrInvalidKeyMaterial
	}

	salt = make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	aead, iv, err := c.derive(keyMaterial, salt)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aead.Seal(nil, iv, plaintext, nil)
	return salt, ciphertext, nil
}

// Decrypt decrypts ciphertext produced by Encrypt with the same key material and salt.
func (c *PBKDF2AESGCMCipher) Decrypt(keyMaterial, salt, ciphertext []byte) ([]byte, error) {
	if len(keyMaterial) == 0 {
		return nil, cryptoDomain.ErrInvalidKeyMaterial
	}
	if len(salt) != SaltSize {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	aead, iv, err := c.derive(keyMaterial, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// derive stretches keyMaterial and salt into an AES-256-GCM instance and its nonce.
// The derived key bytes are zeroed once the block cipher has been expanded.
func (c *PBKDF2AESGCMCipher) derive(keyMaterial, salt []byte) (cipher.AEAD, []byte, error) {
	derived := pbkdf2.Key(keyMaterial, salt, c.iterations, derivedKeySize+derivedIVSize, sha256.New)
	defer cryptoDomain.Zero(derived)

	block, err := aes.NewCipher(derived[:derivedKeySize])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	iv := make([]byte, derivedIVSize)
	copy(iv, derived[derivedKeySize:])
	return aead, iv, nil
}
