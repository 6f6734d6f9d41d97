package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/sesame/internal/auth/usecase"
	apperrors "github.com/allisson/sesame/internal/errors"
	"github.com/allisson/sesame/internal/httputil"
)

// basicAuthRealm is advertised in WWW-Authenticate on 401 responses.
const basicAuthRealm = `Basic realm="sesame"`

// BasicAuthMiddleware authenticates requests with HTTP basic auth.
//
// The username is the client name and the password is its API key. On success the
// client is stored in the request context for RateLimitMiddleware and handlers.
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Unknown client or wrong key → 401 Unauthorized
func BasicAuthMiddleware(apiKeyUseCase authUseCase.APIKeyUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientName, apiKey, ok := c.Request.BasicAuth()
		if !ok || apiKey == "" {
			logger.Debug("authentication failed: missing basic auth credentials")
			c.Header("WWW-Authenticate", basicAuthRealm)
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		client, err := apiKeyUseCase.Authenticate(c.Request.Context(), clientName, apiKey)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("client_name", clientName),
				slog.String("error", err.Error()))
			c.Header("WWW-Authenticate", basicAuthRealm)
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithClient(c.Request.Context(), client)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful", slog.String("client_name", client.Name))

		c.Next()
	}
}
