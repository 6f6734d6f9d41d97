// Package service provides the cryptographic services of the vault: the salted
// key-derivation cipher used for records and the KMS service used to unwrap
// configured key material.
package service

// Cipher encrypts and decrypts record payloads under an encryption key's material.
//
// Every Encrypt call generates a fresh salt; the salt is not secret and is
// stored next to the ciphertext. Key material is never stored or logged.
type Cipher interface {
	// Encrypt derives a one-off key from keyMaterial and a fresh random salt and
	// encrypts plaintext with it.
	Encrypt(keyMaterial, plaintext []byte) (salt, ciphertext []byte, err error)

	// Decrypt re-derives the key from keyMaterial and salt and decrypts ciphertext.
	// Any failure is reported as cryptoDomain.ErrDecryptionFailed.
	Decrypt(keyMaterial, salt, ciphertext []byte) ([]byte, error)
}
