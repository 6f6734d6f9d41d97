package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/sesame/internal/crypto/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSService opens KMS keepers and loads the configured encryption keys through them.
type KMSService interface {
	// OpenKeeper opens a keeper for the KMS provider addressed by keyURI.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)

	// LoadEncryptionKeys parses the ENCRYPTION_KEYS value and, when keyURI is not
	// empty, unwraps every key material with the KMS keeper before returning.
	LoadEncryptionKeys(ctx context.Context, raw, keyURI string) ([]cryptoDomain.EncryptionKey, error)
}

type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper using the keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

func (k *kmsService) LoadEncryptionKeys(
	ctx context.Context,
	raw, keyURI string,
) ([]cryptoDomain.EncryptionKey, error) {
	keys, err := cryptoDomain.ParseEncryptionKeys(raw)
	if err != nil {
		return nil, err
	}
	if keyURI == "" {
		return keys, nil
	}

	keeper, err := k.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = keeper.Close()
	}()

	return cryptoDomain.UnwrapEncryptionKeys(ctx, keeper, keys)
}
