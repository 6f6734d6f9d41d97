// Package usecase defines the interfaces and implementations for the vault use cases.
// Use cases compose the key registry, the cipher and the vault repository into the
// encrypt-then-store and read-then-decrypt flows, and drive key rotation.
package usecase

import (
	"context"

	"github.com/google/uuid"

	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
)

// VaultRepository defines the interface for vault record persistence operations.
//
// Read touches accessed_at as part of the same statement and returns
// vaultDomain.ErrRecordNotFound when the id is absent. Update, UpdateIfUnchanged and
// Delete report a missing row as false rather than as an error.
type VaultRepository interface {
	Create(ctx context.Context, keyID string, salt, ciphertext []byte) (uuid.UUID, error)
	Read(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error)
	Update(ctx context.Context, id uuid.UUID, keyID string, salt, ciphertext []byte) (bool, error)
	// UpdateIfUnchanged is Update guarded by the key id and salt of current, so a
	// write that landed after current was read is never overwritten.
	UpdateIfUnchanged(ctx context.Context, current *vaultDomain.Record, keyID string, salt, ciphertext []byte) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// OpenRotationCursor streams every record whose key_id differs from activeKeyID.
	OpenRotationCursor(ctx context.Context, activeKeyID string) (vaultDomain.RecordCursor, error)
}

// VaultUseCase defines the interface for vault business logic.
type VaultUseCase interface {
	// Create encrypts plaintext under the active key and stores it.
	Create(ctx context.Context, plaintext []byte) (*vaultDomain.Record, error)
	// Get reads and decrypts a record.
	//
	// Security Note: The returned Record contains plaintext data in the Plaintext field.
	// Callers MUST zero this data after use by calling record.ZeroPlaintext().
	Get(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error)
	// Update re-encrypts the record content under the active key with a fresh salt.
	Update(ctx context.Context, id uuid.UUID, plaintext []byte) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RotationUseCase defines the interface for re-encrypting records under the active key.
type RotationUseCase interface {
	Rotate(ctx context.Context) (vaultDomain.RotationResult, error)
}
