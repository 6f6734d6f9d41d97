package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/sesame/internal/crypto/domain"
	cryptoService "github.com/allisson/sesame/internal/crypto/service"
	customValidation "github.com/allisson/sesame/internal/validation"
)

// EncryptionKeySize is the number of random bytes behind a generated key.
// 33 bytes encode to 44 base64 characters without padding.
const EncryptionKeySize = 33

// keyWrapper is implemented by KMS keepers able to encrypt, such as *secrets.Keeper.
type keyWrapper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
}

// RunGenerateEncryptionKey prints a new ENCRYPTION_KEYS entry in the form <id>:<material>.
//
// The material is the base64 form of EncryptionKeySize random bytes. When kmsKeyURI
// is set the material is encrypted with that KMS key and the base64 KMS ciphertext is
// printed instead, to be used together with KMS_KEY_URI.
func RunGenerateEncryptionKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	w io.Writer,
	keyID string,
	kmsKeyURI string,
) error {
	if err := validation.Validate(keyID, customValidation.KeyIDRules...); err != nil {
		return fmt.Errorf("%w: key id %v", cryptoDomain.ErrInvalidEncryptionKeysFormat, err)
	}

	raw := make([]byte, EncryptionKeySize)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}
	defer cryptoDomain.Zero(raw)

	material := []byte(base64.StdEncoding.EncodeToString(raw))
	defer cryptoDomain.Zero(material)

	if kmsKeyURI == "" {
		_, err := fmt.Fprintf(w, "%s:%s\n", keyID, material)
		return err
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return err
	}
	defer func() {
		_ = keeper.Close()
	}()

	wrapper, ok := keeper.(keyWrapper)
	if !ok {
		return fmt.Errorf("KMS keeper does not support encryption")
	}

	ciphertext, err := wrapper.Encrypt(ctx, material)
	if err != nil {
		return fmt.Errorf("failed to encrypt encryption key with KMS: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s:%s\n", keyID, base64.StdEncoding.EncodeToString(ciphertext))
	return err
}
