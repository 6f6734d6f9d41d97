package app

import (
	"fmt"
	"log/slog"

	authService "github.com/allisson/sesame/internal/auth/service"
	authUseCase "github.com/allisson/sesame/internal/auth/usecase"
)

// APIKeyService returns the API key hashing service.
func (c *Container) APIKeyService() authService.APIKeyService {
	c.apiKeyServiceInit.Do(func() {
		c.apiKeyService = authService.NewAPIKeyService()
	})
	return c.apiKeyService
}

// APIKeyUseCase returns the basic-auth API key use case built from API_KEY_<CLIENT>.
func (c *Container) APIKeyUseCase() (authUseCase.APIKeyUseCase, error) {
	c.apiKeyUseCaseInit.Do(func() {
		var err error
		c.apiKeyUseCase, err = c.initAPIKeyUseCase()
		c.setError("apiKeyUseCase", err)
	})
	return c.apiKeyUseCase, c.storedError("apiKeyUseCase")
}

// initAPIKeyUseCase hashes the configured API keys and wraps the use case with metrics.
func (c *Container) initAPIKeyUseCase() (authUseCase.APIKeyUseCase, error) {
	baseUseCase, err := authUseCase.NewAPIKeyUseCase(c.config.APIKeys, c.APIKeyService())
	if err != nil {
		return nil, fmt.Errorf("failed to create api key use case: %w", err)
	}

	c.Logger().Info("api key clients loaded", slog.Any("clients", baseUseCase.Clients()))

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for api key use case: %w", err)
	}
	return authUseCase.NewAPIKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
}
