// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/sesame/internal/validation"
)

// VaultRequest carries the plaintext stored by create and update calls.
type VaultRequest struct {
	Data string `json:"data"`
}

// Validate checks if the vault request is valid.
func (r *VaultRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Data, validation.Required),
	)
}

// RecordIDRequest holds the record id taken from the URL.
type RecordIDRequest struct {
	ID string
}

// Validate checks that the id is a canonical UUIDv4.
func (r *RecordIDRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, validation.Required, customValidation.UUIDv4),
	)
}
