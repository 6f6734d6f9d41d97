package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/sesame/internal/crypto/domain"
	cryptoService "github.com/allisson/sesame/internal/crypto/service"
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
)

// vaultUseCase implements the VaultUseCase interface.
type vaultUseCase struct {
	vaultRepo                VaultRepository
	keyRegistry              *cryptoDomain.KeyRegistry
	cipher                   cryptoService.Cipher
	purgeUnresolvableRecords bool
	logger                   *slog.Logger
}

// Create encrypts plaintext under the active key and stores the result.
func (v *vaultUseCase) Create(ctx context.Context, plaintext []byte) (*vaultDomain.Record, error) {
	activeKey, err := v.keyRegistry.ActiveKey()
	if err != nil {
		return nil, err
	}

	salt, ciphertext, err := v.cipher.Encrypt(activeKey.Material, plaintext)
	if err != nil {
		return nil, err
	}

	id, err := v.vaultRepo.Create(ctx, activeKey.ID, salt, ciphertext)
	if err != nil {
		return nil, err
	}

	return &vaultDomain.Record{
		ID:         id,
		KeyID:      activeKey.ID,
		Salt:       salt,
		Ciphertext: ciphertext,
	}, nil
}

// Get reads a record, touching its access time, and decrypts it.
//
// A record whose key is no longer configured is reported as not found. When
// purging is enabled the record is deleted first since nothing can decrypt it.
func (v *vaultUseCase) Get(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error) {
	record, err := v.vaultRepo.Read(ctx, id)
	if err != nil {
		return nil, err
	}

	key, found := v.keyRegistry.FindKey(record.KeyID)
	if !found {
		if v.logger != nil {
			v.logger.Warn("vault record key not configured",
				slog.String("record_id", record.ID.String()),
				slog.String("key_id", record.KeyID),
				slog.Bool("purge", v.purgeUnresolvableRecords),
			)
		}
		if v.purgeUnresolvableRecords {
			if _, err := v.vaultRepo.Delete(ctx, record.ID); err != nil {
				return nil, err
			}
		}
		return nil, vaultDomain.ErrRecordNotFound
	}

	plaintext, err := v.cipher.Decrypt(key.Material, record.Salt, record.Ciphertext)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	record.Plaintext = plaintext
	return record, nil
}

// Update replaces a record's content, encrypting it under the active key.
func (v *vaultUseCase) Update(ctx context.Context, id uuid.UUID, plaintext []byte) error {
	activeKey, err := v.keyRegistry.ActiveKey()
	if err != nil {
		return err
	}

	salt, ciphertext, err := v.cipher.Encrypt(activeKey.Material, plaintext)
	if err != nil {
		return err
	}

	updated, err := v.vaultRepo.Update(ctx, id, activeKey.ID, salt, ciphertext)
	if err != nil {
		return err
	}
	if !updated {
		return vaultDomain.ErrRecordNotFound
	}
	return nil
}

// Delete removes a record.
func (v *vaultUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := v.vaultRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return vaultDomain.ErrRecordNotFound
	}
	return nil
}

// NewVaultUseCase creates a new vault use case instance with the provided dependencies.
func NewVaultUseCase(
	vaultRepo VaultRepository,
	keyRegistry *cryptoDomain.KeyRegistry,
	cipher cryptoService.Cipher,
	purgeUnresolvableRecords bool,
	logger *slog.Logger,
) VaultUseCase {
	return &vaultUseCase{
		vaultRepo:                vaultRepo,
		keyRegistry:              keyRegistry,
		cipher:                   cipher,
		purgeUnresolvableRecords: purgeUnresolvableRecords,
		logger:                   logger,
	}
}
