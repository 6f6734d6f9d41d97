package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/sesame/internal/auth/domain"
	authUsecaseMocks "github.com/allisson/sesame/internal/auth/usecase/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupAuthRouter creates a router that echoes the authenticated client name.
func setupAuthRouter(t *testing.T) (*gin.Engine, *authUsecaseMocks.MockAPIKeyUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockUseCase := authUsecaseMocks.NewMockAPIKeyUseCase(t)

	router := gin.New()
	router.Use(BasicAuthMiddleware(mockUseCase, newTestLogger()))
	router.GET("/vault/:id", func(c *gin.Context) {
		client, ok := GetClient(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, client.Name)
	})

	return router, mockUseCase
}

func TestBasicAuthMiddleware(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		router, mockUseCase := setupAuthRouter(t)
		mockUseCase.EXPECT().
			Authenticate(mock.Anything, "billing", "key-billing").
			Return(&authDomain.Client{Name: "billing"}, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/vault/abc", nil)
		req.SetBasicAuth("billing", "key-billing")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "billing", w.Body.String())
	})

	t.Run("Error_MissingHeader", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/vault/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, basicAuthRealm, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("Error_BearerScheme", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/vault/abc", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_EmptyPassword", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/vault/abc", nil)
		req.SetBasicAuth("billing", "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		router, mockUseCase := setupAuthRouter(t)
		mockUseCase.EXPECT().
			Authenticate(mock.Anything, "billing", "wrong").
			Return(nil, authDomain.ErrInvalidCredentials).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/vault/abc", nil)
		req.SetBasicAuth("billing", "wrong")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "wrong")
	})
}

func TestGetClient(t *testing.T) {
	ctx := t.Context()

	_, ok := GetClient(ctx)
	assert.False(t, ok)

	client := &authDomain.Client{Name: "billing"}
	got, ok := GetClient(WithClient(ctx, client))
	assert.True(t, ok)
	assert.Same(t, client, got)
}
