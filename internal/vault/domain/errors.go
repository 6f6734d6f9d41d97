package domain

import (
	"github.com/allisson/sesame/internal/errors"
)

// Vault-specific error definitions.
var (
	// ErrRecordNotFound indicates no record exists for the given id, or the record
	// cannot be served because its key is no longer configured.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "vault record not found")
)
