// Package usecase implements API key authentication.
package usecase

import (
	"context"

	authDomain "github.com/allisson/sesame/internal/auth/domain"
)

// APIKeyUseCase authenticates API clients by their basic-auth credentials.
type APIKeyUseCase interface {
	// Authenticate checks clientName and apiKey against the configured keys.
	// Returns ErrInvalidCredentials when either does not match.
	Authenticate(ctx context.Context, clientName, apiKey string) (*authDomain.Client, error)

	// Clients returns the configured client names in sorted order.
	Clients() []string
}
