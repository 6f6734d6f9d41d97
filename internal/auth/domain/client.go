// Package domain defines the API client model used for request authentication.
//
// Clients are configured through API_KEY_<CLIENT> environment variables. The client
// name is the lower-cased suffix of the variable and the value is the API key.
package domain

import "strings"

// Client is an authenticated API caller.
type Client struct {
	Name string
}

// APIKey binds a client name to the hash of its key. Plain keys are never kept.
type APIKey struct {
	ClientName string
	Hash       string
}

// NormalizeClientName lower-cases a client name so API_KEY_BILLING authenticates as "billing".
func NormalizeClientName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
