package usecase

import (
	"context"
	"maps"
	"slices"

	authDomain "github.com/allisson/sesame/internal/auth/domain"
	authService "github.com/allisson/sesame/internal/auth/service"
	apperrors "github.com/allisson/sesame/internal/errors"
	customValidation "github.com/allisson/sesame/internal/validation"
)

// apiKeyUseCase implements APIKeyUseCase over an immutable set of hashed keys.
type apiKeyUseCase struct {
	apiKeys       map[string]authDomain.APIKey
	apiKeyService authService.APIKeyService
	// dummyHash is verified for unknown clients so both failure paths do the same work.
	dummyHash string
}

// Authenticate verifies the API key of the named client.
func (a *apiKeyUseCase) Authenticate(
	ctx context.Context,
	clientName, apiKey string,
) (*authDomain.Client, error) {
	name := authDomain.NormalizeClientName(clientName)

	stored, found := a.apiKeys[name]
	if !found {
		a.apiKeyService.CompareAPIKey(apiKey, a.dummyHash)
		return nil, authDomain.ErrInvalidCredentials
	}

	if !a.apiKeyService.CompareAPIKey(apiKey, stored.Hash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return &authDomain.Client{Name: name}, nil
}

// Clients returns the configured client names.
func (a *apiKeyUseCase) Clients() []string {
	return slices.Sorted(maps.Keys(a.apiKeys))
}

// NewAPIKeyUseCase hashes every configured key and returns the use case.
// apiKeys maps client names (as found after API_KEY_) to their plain keys.
func NewAPIKeyUseCase(
	apiKeys map[string]string,
	apiKeyService authService.APIKeyService,
) (APIKeyUseCase, error) {
	hashed := make(map[string]authDomain.APIKey, len(apiKeys))
	for rawName, plainKey := range apiKeys {
		if err := customValidation.ClientName.Validate(rawName); err != nil || rawName == "" {
			return nil, apperrors.Wrapf(authDomain.ErrInvalidClientName, "client %q", rawName)
		}
		if plainKey == "" {
			return nil, apperrors.Wrapf(authDomain.ErrEmptyAPIKey, "client %q", rawName)
		}

		hash, err := apiKeyService.HashAPIKey(plainKey)
		if err != nil {
			return nil, err
		}

		name := authDomain.NormalizeClientName(rawName)
		hashed[name] = authDomain.APIKey{ClientName: name, Hash: hash}
	}

	dummyKey, err := apiKeyService.GenerateAPIKey()
	if err != nil {
		return nil, err
	}
	dummyHash, err := apiKeyService.HashAPIKey(dummyKey)
	if err != nil {
		return nil, err
	}

	return &apiKeyUseCase{
		apiKeys:       hashed,
		apiKeyService: apiKeyService,
		dummyHash:     dummyHash,
	}, nil
}
