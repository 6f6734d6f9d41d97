package app

import (
	"context"
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/sesame/internal/crypto/domain"
	cryptoService "github.com/allisson/sesame/internal/crypto/service"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// KeyRegistry returns the registry of configured encryption keys.
// Keys are parsed from ENCRYPTION_KEYS and unwrapped through KMS_KEY_URI when set.
func (c *Container) KeyRegistry(ctx context.Context) (*cryptoDomain.KeyRegistry, error) {
	c.keyRegistryInit.Do(func() {
		var err error
		c.keyRegistry, err = c.initKeyRegistry(ctx)
		c.setError("keyRegistry", err)
	})
	return c.keyRegistry, c.storedError("keyRegistry")
}

// Cipher returns the record cipher configured with KDF_ITERATIONS.
func (c *Container) Cipher() (cryptoService.Cipher, error) {
	c.cipherInit.Do(func() {
		var err error
		c.cipher, err = c.initCipher()
		c.setError("cipher", err)
	})
	return c.cipher, c.storedError("cipher")
}

// initKeyRegistry loads the encryption keys and builds the registry.
func (c *Container) initKeyRegistry(ctx context.Context) (*cryptoDomain.KeyRegistry, error) {
	keys, err := c.KMSService().LoadEncryptionKeys(ctx, c.config.EncryptionKeys, c.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to load encryption keys: %w", err)
	}

	registry, err := cryptoDomain.NewKeyRegistry(keys)
	if err != nil {
		return nil, fmt.Errorf("failed to create key registry: %w", err)
	}

	c.Logger().Info("encryption keys loaded",
		slog.Int("count", len(keys)),
		slog.Any("key_ids", registry.KeyIDs()),
		slog.Bool("kms", c.config.KMSKeyURI != ""),
	)

	return registry, nil
}

// initCipher creates the PBKDF2 AES-GCM cipher.
func (c *Container) initCipher() (cryptoService.Cipher, error) {
	cipher, err := cryptoService.NewPBKDF2AESGCM(c.config.KDFIterations)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher, nil
}
