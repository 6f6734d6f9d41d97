package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/sesame/internal/auth/domain"
	authUsecaseMocks "github.com/allisson/sesame/internal/auth/usecase/mocks"
	"github.com/allisson/sesame/internal/metrics"
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

func TestAPIKeyUseCaseWithMetrics_Authenticate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		client *authDomain.Client
		err    error
		status string
	}{
		{name: "success", client: &authDomain.Client{Name: "billing"}, status: "success"},
		{name: "error", err: authDomain.ErrInvalidCredentials, status: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := authUsecaseMocks.NewMockAPIKeyUseCase(t)
			mockMetrics := &mockBusinessMetrics{}
			decorator := NewAPIKeyUseCaseWithMetrics(mockUseCase, mockMetrics)

			mockUseCase.EXPECT().Authenticate(ctx, "billing", "key").Return(tt.client, tt.err).Once()
			mockMetrics.On("RecordOperation", ctx, "auth", "api_key_authenticate", tt.status).Return().Once()
			mockMetrics.On("RecordDuration", ctx, "auth", "api_key_authenticate", mock.AnythingOfType("time.Duration"), tt.status).
				Return().
				Once()

			client, err := decorator.Authenticate(ctx, "billing", "key")

			assert.Equal(t, tt.client, client)
			assert.Equal(t, tt.err, err)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestAPIKeyUseCaseWithMetrics_Clients(t *testing.T) {
	mockUseCase := authUsecaseMocks.NewMockAPIKeyUseCase(t)
	decorator := NewAPIKeyUseCaseWithMetrics(mockUseCase, &mockBusinessMetrics{})

	mockUseCase.EXPECT().Clients().Return([]string{"billing"}).Once()

	assert.Equal(t, []string{"billing"}, decorator.Clients())
}
