// Package domain defines the cryptographic domain models for the vault:
// encryption keys, the ordered key registry and the related errors.
package domain

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync/atomic"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/sesame/internal/validation"
)

// EncryptionKey is a named key material used to derive per-record cipher keys.
//
// Keys are immutable once loaded. Material is the raw byte string from
// configuration and is never stored next to the records it protects.
type EncryptionKey struct {
	ID       string
	Material []byte
}

// String never prints the key material.
func (k EncryptionKey) String() string {
	return fmt.Sprintf("EncryptionKey{ID: %s}", k.ID)
}

// KMSKeeper decrypts KMS-wrapped key material. *secrets.Keeper from
// gocloud.dev/secrets satisfies this interface.
type KMSKeeper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// keySet is an immutable snapshot of the registry.
type keySet struct {
	ordered []*EncryptionKey
	byID    map[string]*EncryptionKey
}

// KeyRegistry holds the ordered list of encryption keys. Index 0 is the active
// key used for every new encryption; the rest stay available for decrypting
// records written before a rotation.
//
// Reload swaps the whole list atomically. Callers that already captured a
// *EncryptionKey keep using it unaffected.
type KeyRegistry struct {
	current atomic.Pointer[keySet]
}

// NewKeyRegistry builds a registry from keys in priority order.
func NewKeyRegistry(keys []EncryptionKey) (*KeyRegistry, error) {
	r := &KeyRegistry{}
	if err := r.Reload(keys); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload replaces the entire key list. An empty list is rejected so a running
// process can never lose its active key.
func (r *KeyRegistry) Reload(keys []EncryptionKey) error {
	if len(keys) == 0 {
		return ErrNoEncryptionKeys
	}

	set := &keySet{
		ordered: make([]*EncryptionKey, 0, len(keys)),
		byID:    make(map[string]*EncryptionKey, len(keys)),
	}
	for _, k := range keys {
		if _, exists := set.byID[k.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateKeyID, k.ID)
		}
		material := make([]byte, len(k.Material))
		copy(material, k.Material)
		key := &EncryptionKey{ID: k.ID, Material: material}
		set.ordered = append(set.ordered, key)
		set.byID[k.ID] = key
	}

	r.current.Store(set)
	return nil
}

// ActiveKey returns the key used for all new encryptions.
func (r *KeyRegistry) ActiveKey() (*EncryptionKey, error) {
	set := r.current.Load()
	if set == nil || len(set.ordered) == 0 {
		return nil, ErrNoEncryptionKeys
	}
	return set.ordered[0], nil
}

// FindKey looks a key up by id.
func (r *KeyRegistry) FindKey(id string) (*EncryptionKey, bool) {
	set := r.current.Load()
	if set == nil {
		return nil, false
	}
	key, ok := set.byID[id]
	return key, ok
}

// KeyIDs returns the key ids in priority order.
func (r *KeyRegistry) KeyIDs() []string {
	set := r.current.Load()
	if set == nil {
		return nil
	}
	ids := make([]string, 0, len(set.ordered))
	for _, k := range set.ordered {
		ids = append(ids, k.ID)
	}
	return ids
}

// Close zeroes the key material and empties the registry.
// The registry must not be used afterwards.
func (r *KeyRegistry) Close() {
	set := r.current.Swap(nil)
	if set == nil {
		return
	}
	for _, k := range set.ordered {
		Zero(k.Material)
	}
}

// ParseEncryptionKeys parses the ENCRYPTION_KEYS format:
//
//	id1:material1,id2:material2
//
// The first pair is the active key. Material is everything after the first
// colon, taken as raw bytes. Whitespace around pairs is ignored.
func ParseEncryptionKeys(raw string) ([]EncryptionKey, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrNoEncryptionKeys
	}

	var keys []EncryptionKey
	for part := range strings.SplitSeq(raw, ",") {
		p := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(p) != 2 || p[0] == "" || p[1] == "" {
			// Only the id half is safe to echo back.
			return nil, fmt.Errorf("%w: entry %d has no id:key pair", ErrInvalidEncryptionKeysFormat, len(keys))
		}
		if err := validation.Validate(p[0], customValidation.KeyIDRules...); err != nil {
			return nil, fmt.Errorf("%w: key id %q %v", ErrInvalidEncryptionKeysFormat, p[0], err)
		}
		keys = append(keys, EncryptionKey{ID: p[0], Material: []byte(p[1])})
	}

	return keys, nil
}

// UnwrapEncryptionKeys replaces each key's material with its KMS-decrypted form.
// Wrapped material is the standard base64 encoding of the KMS ciphertext.
func UnwrapEncryptionKeys(ctx context.Context, keeper KMSKeeper, keys []EncryptionKey) ([]EncryptionKey, error) {
	out := make([]EncryptionKey, 0, len(keys))
	fail := func(err error) ([]EncryptionKey, error) {
		for _, done := range out {
			Zero(done.Material)
		}
		return nil, err
	}

	for _, k := range keys {
		wrapped, err := base64.StdEncoding.DecodeString(string(k.Material))
		if err != nil {
			return fail(fmt.Errorf("%w: key %s is not valid base64", ErrInvalidEncryptionKeysFormat, k.ID))
		}
		material, err := keeper.Decrypt(ctx, wrapped)
		if err != nil {
			return fail(fmt.Errorf("failed to unwrap encryption key %s: %w", k.ID, err))
		}
		out = append(out, EncryptionKey{ID: k.ID, Material: material})
	}
	return out, nil
}
