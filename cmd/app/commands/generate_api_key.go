package commands

import (
	"fmt"
	"io"
	"strings"

	authDomain "github.com/allisson/sesame/internal/auth/domain"
	authService "github.com/allisson/sesame/internal/auth/service"
	"github.com/allisson/sesame/internal/config"
	apperrors "github.com/allisson/sesame/internal/errors"
	customValidation "github.com/allisson/sesame/internal/validation"
)

// RunGenerateAPIKey prints a new API_KEY_<CLIENT>=<key> line for clientName.
// The client authenticates with the lower-cased name as basic-auth username.
func RunGenerateAPIKey(apiKeyService authService.APIKeyService, w io.Writer, clientName string) error {
	if clientName == "" {
		return apperrors.Wrap(authDomain.ErrInvalidClientName, "client name is required")
	}
	if err := customValidation.ClientName.Validate(clientName); err != nil {
		return apperrors.Wrapf(authDomain.ErrInvalidClientName, "client %q %v", clientName, err)
	}

	apiKey, err := apiKeyService.GenerateAPIKey()
	if err != nil {
		return fmt.Errorf("failed to generate api key: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s%s=%s\n", config.APIKeyEnvPrefix, strings.ToUpper(clientName), apiKey)
	return err
}
