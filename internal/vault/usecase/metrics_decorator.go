package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/sesame/internal/metrics"
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
)

// vaultUseCaseWithMetrics decorates VaultUseCase with metrics instrumentation.
type vaultUseCaseWithMetrics struct {
	next    VaultUseCase
	metrics metrics.BusinessMetrics
}

// NewVaultUseCaseWithMetrics wraps a VaultUseCase with metrics recording.
func NewVaultUseCaseWithMetrics(useCase VaultUseCase, m metrics.BusinessMetrics) VaultUseCase {
	return &vaultUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for record creation operations.
func (v *vaultUseCaseWithMetrics) Create(ctx context.Context, plaintext []byte) (*vaultDomain.Record, error) {
	start := time.Now()
	record, err := v.next.Create(ctx, plaintext)
	v.record(ctx, "record_create", start, err)
	return record, err
}

// Get records metrics for record retrieval operations.
func (v *vaultUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error) {
	start := time.Now()
	record, err := v.next.Get(ctx, id)
	v.record(ctx, "record_get", start, err)
	return record, err
}

// Update records metrics for record update operations.
func (v *vaultUseCaseWithMetrics) Update(ctx context.Context, id uuid.UUID, plaintext []byte) error {
	start := time.Now()
	err := v.next.Update(ctx, id, plaintext)
	v.record(ctx, "record_update", start, err)
	return err
}

// Delete records metrics for record deletion operations.
func (v *vaultUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := v.next.Delete(ctx, id)
	v.record(ctx, "record_delete", start, err)
	return err
}

func (v *vaultUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "vault", operation, status)
	v.metrics.RecordDuration(ctx, "vault", operation, time.Since(start), status)
}

// rotationUseCaseWithMetrics decorates RotationUseCase with metrics instrumentation.
type rotationUseCaseWithMetrics struct {
	next    RotationUseCase
	metrics metrics.BusinessMetrics
}

// NewRotationUseCaseWithMetrics wraps a RotationUseCase with metrics recording.
func NewRotationUseCaseWithMetrics(useCase RotationUseCase, m metrics.BusinessMetrics) RotationUseCase {
	return &rotationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Rotate records metrics for key rotation runs.
func (r *rotationUseCaseWithMetrics) Rotate(ctx context.Context) (vaultDomain.RotationResult, error) {
	start := time.Now()
	result, err := r.next.Rotate(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "vault", "key_rotation", status)
	r.metrics.RecordDuration(ctx, "vault", "key_rotation", time.Since(start), status)
	r.metrics.RecordItems(ctx, "vault", "key_rotation", "rotated", result.Rotated)
	r.metrics.RecordItems(ctx, "vault", "key_rotation", "skipped", result.Skipped)

	return result, err
}
