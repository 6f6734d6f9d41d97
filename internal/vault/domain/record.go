// Package domain defines the vault record model and its errors.
//
// A record stores one opaque payload encrypted under a named encryption key. The
// key id, salt and ciphertext are the only cryptographic fields persisted; the key
// material itself never reaches storage.
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/sesame/internal/crypto/domain"
)

// Record is a single encrypted vault entry.
type Record struct {
	// ID is the canonical UUIDv4 identifier assigned by the store.
	ID uuid.UUID
	// KeyID names the encryption key the ciphertext was produced under.
	KeyID string
	// Salt is the 16-byte per-encryption salt fed to key derivation.
	Salt []byte
	// Ciphertext is the encrypted payload, stored in the data column.
	Ciphertext []byte
	// Plaintext holds the decrypted payload in memory only; must be zeroed after use.
	Plaintext []byte `json:"-"`
	// CreatedAt is the UTC timestamp when the record was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last content replacement.
	UpdatedAt time.Time
	// AccessedAt is the UTC timestamp of the last successful read.
	AccessedAt time.Time
}

// ZeroPlaintext clears the decrypted payload.
func (r *Record) ZeroPlaintext() {
	if r == nil {
		return
	}
	cryptoDomain.Zero(r.Plaintext)
	r.Plaintext = nil
}

// RotationResult summarizes a rotation run.
type RotationResult struct {
	// Rotated counts records re-encrypted under the active key.
	Rotated int
	// Skipped counts records deleted by another caller while the run was in flight.
	Skipped int
	// Batches counts non-empty batches processed.
	Batches int
}

// RecordCursor streams records in bounded batches. Next returns an empty slice
// once the cursor is drained. Close must always be called.
type RecordCursor interface {
	Next(ctx context.Context, n int) ([]*Record, error)
	Close() error
}
