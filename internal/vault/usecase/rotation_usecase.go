package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/sesame/internal/crypto/domain"
	cryptoService "github.com/allisson/sesame/internal/crypto/service"
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
)

// RotationConfig holds rotation use case configuration.
type RotationConfig struct {
	// BatchSize bounds how many records are fetched and re-encrypted concurrently.
	// Zero selects runtime.NumCPU().
	BatchSize int
	// Timeout bounds the whole run, including the cursor session. Zero means no limit.
	Timeout time.Duration
}

// rotationUseCase re-encrypts every record not already under the active key.
type rotationUseCase struct {
	config      RotationConfig
	vaultRepo   VaultRepository
	keyRegistry *cryptoDomain.KeyRegistry
	cipher      cryptoService.Cipher
	logger      *slog.Logger
}

// Rotate streams the records whose key differs from the active key and rewrites each
// one under the active key with a fresh salt.
//
// Batches run one after another; the records inside a batch run concurrently. The
// first failure cancels the rest of its batch, closes the cursor and is returned
// together with the counts reached so far. Records already rotated stay rotated, so
// running Rotate again resumes where the failed run stopped.
func (r *rotationUseCase) Rotate(ctx context.Context) (vaultDomain.RotationResult, error) {
	var result vaultDomain.RotationResult

	activeKey, err := r.keyRegistry.ActiveKey()
	if err != nil {
		return result, err
	}

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	batchSize := r.batchSize()
	r.log(ctx, slog.LevelInfo, "starting key rotation",
		slog.String("active_key_id", activeKey.ID),
		slog.Int("batch_size", batchSize),
	)

	cursor, err := r.vaultRepo.OpenRotationCursor(ctx, activeKey.ID)
	if err != nil {
		return result, err
	}
	defer func() {
		if closeErr := cursor.Close(); closeErr != nil {
			r.log(ctx, slog.LevelError, "failed to close rotation cursor", slog.Any("error", closeErr))
		}
	}()

	for {
		records, err := cursor.Next(ctx, batchSize)
		if err != nil {
			return result, err
		}
		if len(records) == 0 {
			break
		}

		result.Batches++
		rotated, skipped, err := r.rotateBatch(ctx, activeKey, records)
		result.Rotated += rotated
		result.Skipped += skipped
		if err != nil {
			r.log(ctx, slog.LevelError, "key rotation aborted",
				slog.Int("batch", result.Batches),
				slog.Int("rotated", result.Rotated),
				slog.Any("error", err),
			)
			return result, err
		}

		r.log(ctx, slog.LevelDebug, "rotation batch completed",
			slog.Int("batch", result.Batches),
			slog.Int("size", len(records)),
		)
	}

	r.log(ctx, slog.LevelInfo, "key rotation completed",
		slog.String("active_key_id", activeKey.ID),
		slog.Int("rotated", result.Rotated),
		slog.Int("skipped", result.Skipped),
		slog.Int("batches", result.Batches),
	)

	return result, nil
}

// rotateBatch re-encrypts one batch concurrently and waits for all of it.
func (r *rotationUseCase) rotateBatch(
	ctx context.Context,
	activeKey *cryptoDomain.EncryptionKey,
	records []*vaultDomain.Record,
) (int, int, error) {
	var rotated, skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for _, record := range records {
		g.Go(func() error {
			updated, err := r.rotateRecord(gctx, activeKey, record)
			if err != nil {
				return err
			}
			if updated {
				rotated.Add(1)
			} else {
				skipped.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	return int(rotated.Load()), int(skipped.Load()), err
}

// rotateRecord returns false when the record was updated or deleted after the
// cursor read it. Such a record is left as the concurrent writer saved it.
func (r *rotationUseCase) rotateRecord(
	ctx context.Context,
	activeKey *cryptoDomain.EncryptionKey,
	record *vaultDomain.Record,
) (bool, error) {
	oldKey, found := r.keyRegistry.FindKey(record.KeyID)
	if !found {
		return false, fmt.Errorf("%w: %s", cryptoDomain.ErrKeyNotFound, record.KeyID)
	}

	plaintext, err := r.cipher.Decrypt(oldKey.Material, record.Salt, record.Ciphertext)
	if err != nil {
		return false, fmt.Errorf("record %s: %w", record.ID, err)
	}
	defer cryptoDomain.Zero(plaintext)

	salt, ciphertext, err := r.cipher.Encrypt(activeKey.Material, plaintext)
	if err != nil {
		return false, err
	}

	return r.vaultRepo.UpdateIfUnchanged(ctx, record, activeKey.ID, salt, ciphertext)
}

func (r *rotationUseCase) batchSize() int {
	if r.config.BatchSize > 0 {
		return r.config.BatchSize
	}
	return runtime.NumCPU()
}

func (r *rotationUseCase) log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	if r.logger == nil {
		return
	}
	r.logger.LogAttrs(ctx, level, msg, attrs...)
}

// NewRotationUseCase creates a new rotation use case instance with the provided dependencies.
func NewRotationUseCase(
	config RotationConfig,
	vaultRepo VaultRepository,
	keyRegistry *cryptoDomain.KeyRegistry,
	cipher cryptoService.Cipher,
	logger *slog.Logger,
) RotationUseCase {
	return &rotationUseCase{
		config:      config,
		vaultRepo:   vaultRepo,
		keyRegistry: keyRegistry,
		cipher:      cipher,
		logger:      logger,
	}
}
