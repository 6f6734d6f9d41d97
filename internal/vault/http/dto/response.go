package dto

import (
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
)

// VaultResponse returns a decrypted record's content.
type VaultResponse struct {
	Data string `json:"data"`
}

// MapRecordToVaultResponse converts a decrypted record into its response body.
func MapRecordToVaultResponse(record *vaultDomain.Record) VaultResponse {
	return VaultResponse{Data: string(record.Plaintext)}
}
