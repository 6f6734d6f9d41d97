package domain

import (
	"github.com/allisson/sesame/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials indicates the basic-auth username and API key did not match.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid API key")

	// ErrInvalidClientName indicates a client name that cannot be used in API_KEY_<CLIENT>.
	ErrInvalidClientName = errors.Wrap(errors.ErrInvalidInput, "invalid client name")

	// ErrEmptyAPIKey indicates a configured client without a key.
	ErrEmptyAPIKey = errors.Wrap(errors.ErrConfiguration, "empty API key")
)
