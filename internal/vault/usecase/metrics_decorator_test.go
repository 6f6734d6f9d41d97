package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/sesame/internal/metrics"
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
	vaultUsecaseMocks "github.com/allisson/sesame/internal/vault/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordItems(ctx context.Context, domain, operation, outcome string, count int) {
	m.Called(ctx, domain, operation, outcome, count)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func expectMetrics(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "vault", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "vault", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestNewVaultUseCaseWithMetrics(t *testing.T) {
	mockUseCase := vaultUsecaseMocks.NewMockVaultUseCase(t)
	decorator := NewVaultUseCaseWithMetrics(mockUseCase, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*VaultUseCase)(nil), decorator)
}

func TestVaultMetricsDecorator(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Create_Success", func(t *testing.T) {
		mockUseCase := vaultUsecaseMocks.NewMockVaultUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		expected := &vaultDomain.Record{ID: id, KeyID: "t1"}
		mockUseCase.EXPECT().Create(ctx, []byte("test")).Return(expected, nil).Once()
		expectMetrics(ctx, mockMetrics, "record_create", "success")

		record, err := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics).Create(ctx, []byte("test"))

		assert.NoError(t, err)
		assert.Equal(t, expected, record)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Get_Error", func(t *testing.T) {
		mockUseCase := vaultUsecaseMocks.NewMockVaultUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.EXPECT().Get(ctx, id).Return(nil, vaultDomain.ErrRecordNotFound).Once()
		expectMetrics(ctx, mockMetrics, "record_get", "error")

		record, err := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics).Get(ctx, id)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, vaultDomain.ErrRecordNotFound)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Update_Success", func(t *testing.T) {
		mockUseCase := vaultUsecaseMocks.NewMockVaultUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.EXPECT().Update(ctx, id, []byte("new")).Return(nil).Once()
		expectMetrics(ctx, mockMetrics, "record_update", "success")

		err := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics).Update(ctx, id, []byte("new"))

		assert.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Delete_Error", func(t *testing.T) {
		mockUseCase := vaultUsecaseMocks.NewMockVaultUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.EXPECT().Delete(ctx, id).Return(assert.AnError).Once()
		expectMetrics(ctx, mockMetrics, "record_delete", "error")

		err := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics).Delete(ctx, id)

		assert.ErrorIs(t, err, assert.AnError)
		mockMetrics.AssertExpectations(t)
	})
}

func TestRotationMetricsDecorator(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		result vaultDomain.RotationResult
		err    error
		status string
	}{
		{name: "Success", result: vaultDomain.RotationResult{Rotated: 3, Batches: 1}, status: "success"},
		{name: "Error", err: assert.AnError, status: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := vaultUsecaseMocks.NewMockRotationUseCase(t)
			mockMetrics := &mockBusinessMetrics{}

			mockUseCase.EXPECT().Rotate(ctx).Return(tt.result, tt.err).Once()
			expectMetrics(ctx, mockMetrics, "key_rotation", tt.status)
			mockMetrics.On("RecordItems", ctx, "vault", "key_rotation", "rotated", tt.result.Rotated).Return().Once()
			mockMetrics.On("RecordItems", ctx, "vault", "key_rotation", "skipped", tt.result.Skipped).Return().Once()

			result, err := NewRotationUseCaseWithMetrics(mockUseCase, mockMetrics).Rotate(ctx)

			assert.Equal(t, tt.result, result)
			assert.Equal(t, tt.err, err)
			mockMetrics.AssertExpectations(t)
		})
	}
}
