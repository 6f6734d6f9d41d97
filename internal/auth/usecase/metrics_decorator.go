package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/sesame/internal/auth/domain"
	"github.com/allisson/sesame/internal/metrics"
)

// apiKeyUseCaseWithMetrics decorates APIKeyUseCase with metrics instrumentation.
type apiKeyUseCaseWithMetrics struct {
	next    APIKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewAPIKeyUseCaseWithMetrics wraps an APIKeyUseCase with metrics recording.
func NewAPIKeyUseCaseWithMetrics(useCase APIKeyUseCase, m metrics.BusinessMetrics) APIKeyUseCase {
	return &apiKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for API key authentication.
func (a *apiKeyUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	clientName, apiKey string,
) (*authDomain.Client, error) {
	start := time.Now()
	client, err := a.next.Authenticate(ctx, clientName, apiKey)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "api_key_authenticate", status)
	a.metrics.RecordDuration(ctx, "auth", "api_key_authenticate", time.Since(start), status)

	return client, err
}

// Clients is not instrumented.
func (a *apiKeyUseCaseWithMetrics) Clients() []string {
	return a.next.Clients()
}
