package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/sesame/internal/auth/domain"
	authUsecaseMocks "github.com/allisson/sesame/internal/auth/usecase/mocks"
	"github.com/allisson/sesame/internal/config"
	"github.com/allisson/sesame/internal/metrics"
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
	vaultHTTP "github.com/allisson/sesame/internal/vault/http"
	vaultUsecaseMocks "github.com/allisson/sesame/internal/vault/usecase/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestServer creates a test server without a database.
func createTestServer() *Server {
	return NewServer(nil, "localhost", 0, newDiscardLogger())
}

// createTestServerWithDB creates a test server backed by a sqlmock database that monitors pings.
func createTestServerWithDB(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	db, mockDB, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mockDB.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewServer(db, "localhost", 0, newDiscardLogger()), mockDB
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestHealthHandler(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
}

func TestReadinessHandler(t *testing.T) {
	t.Run("NotReady_NilDB", func(t *testing.T) {
		server := createTestServer()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		response := decodeBody(t, w)
		assert.Equal(t, "not_ready", response["status"])
		assert.Equal(t, map[string]interface{}{"database": "error"}, response["components"])
	})

	t.Run("NotReady_PingFails", func(t *testing.T) {
		server, mockDB := createTestServerWithDB(t)
		mockDB.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("Ready", func(t *testing.T) {
		server, mockDB := createTestServerWithDB(t)
		mockDB.ExpectPing()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeBody(t, w)
		assert.Equal(t, "ready", response["status"])
		assert.Equal(t, map[string]interface{}{"database": "ok"}, response["components"])
	})
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return "req-1"
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/vault/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vault/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "/vault/abc", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(newDiscardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// routerFixture holds a server with a full router over mocked use cases.
type routerFixture struct {
	handler       http.Handler
	vaultUseCase  *vaultUsecaseMocks.MockVaultUseCase
	apiKeyUseCase *authUsecaseMocks.MockAPIKeyUseCase
}

func newRouterFixture(t *testing.T, mutate func(cfg *config.Config)) *routerFixture {
	t.Helper()

	cfg := &config.Config{
		LogLevel:                "error",
		AuthEnabled:             true,
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 100,
		RateLimitBurst:          100,
		MetricsNamespace:        "test_app",
	}
	if mutate != nil {
		mutate(cfg)
	}

	vaultUseCase := vaultUsecaseMocks.NewMockVaultUseCase(t)
	apiKeyUseCase := authUsecaseMocks.NewMockAPIKeyUseCase(t)
	logger := newDiscardLogger()

	server := createTestServer()
	server.SetupRouter(
		t.Context(),
		cfg,
		vaultHTTP.NewVaultHandler(vaultUseCase, "http://localhost:6666", logger),
		apiKeyUseCase,
		nil,
	)
	gin.SetMode(gin.TestMode)

	return &routerFixture{
		handler:       server.GetHandler(),
		vaultUseCase:  vaultUseCase,
		apiKeyUseCase: apiKeyUseCase,
	}
}

func (f *routerFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func (f *routerFixture) expectAuthenticated() {
	f.apiKeyUseCase.EXPECT().
		Authenticate(mock.Anything, "billing", "key-billing").
		Return(&authDomain.Client{Name: "billing"}, nil)
}

func TestSetupRouter_VaultRoutes(t *testing.T) {
	t.Run("Create_RequiresAuth", func(t *testing.T) {
		f := newRouterFixture(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/vault", strings.NewReader(`{"data":"test"}`))
		req.Header.Set("Content-Type", "application/json")
		w := f.serve(req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Create_Authenticated", func(t *testing.T) {
		f := newRouterFixture(t, nil)
		f.expectAuthenticated()
		id := uuid.New()
		f.vaultUseCase.EXPECT().
			Create(mock.Anything, []byte("test")).
			Return(&vaultDomain.Record{ID: id, KeyID: "t1"}, nil).
			Once()

		req := httptest.NewRequest(http.MethodPost, "/vault", strings.NewReader(`{"data":"test"}`))
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth("billing", "key-billing")
		w := f.serve(req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "http://localhost:6666/vault/"+id.String(), w.Header().Get("Location"))
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("Get_InvalidIDNeverReachesUseCase", func(t *testing.T) {
		f := newRouterFixture(t, nil)
		f.expectAuthenticated()

		req := httptest.NewRequest(http.MethodGet, "/vault/not-a-uuid", nil)
		req.SetBasicAuth("billing", "key-billing")
		w := f.serve(req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Update_And_Delete", func(t *testing.T) {
		f := newRouterFixture(t, nil)
		f.expectAuthenticated()
		id := uuid.New()
		f.vaultUseCase.EXPECT().Update(mock.Anything, id, []byte("new")).Return(nil).Once()
		f.vaultUseCase.EXPECT().Delete(mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/vault/"+id.String(), strings.NewReader(`{"data":"new"}`))
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth("billing", "key-billing")
		assert.Equal(t, http.StatusNoContent, f.serve(req).Code)

		req = httptest.NewRequest(http.MethodDelete, "/vault/"+id.String(), nil)
		req.SetBasicAuth("billing", "key-billing")
		assert.Equal(t, http.StatusNoContent, f.serve(req).Code)
	})

	t.Run("AuthDisabled", func(t *testing.T) {
		f := newRouterFixture(t, func(cfg *config.Config) {
			cfg.AuthEnabled = false
		})
		id := uuid.New()
		f.vaultUseCase.EXPECT().
			Get(mock.Anything, id).
			Return(&vaultDomain.Record{ID: id, Plaintext: []byte("test")}, nil).
			Once()

		w := f.serve(httptest.NewRequest(http.MethodGet, "/vault/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":"test"}`, w.Body.String())
	})

	t.Run("RateLimited", func(t *testing.T) {
		f := newRouterFixture(t, func(cfg *config.Config) {
			cfg.RateLimitRequestsPerSec = 1
			cfg.RateLimitBurst = 1
		})
		f.expectAuthenticated()
		id := uuid.New()
		f.vaultUseCase.EXPECT().Delete(mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/vault/"+id.String(), nil)
		req.SetBasicAuth("billing", "key-billing")
		assert.Equal(t, http.StatusNoContent, f.serve(req).Code)

		req = httptest.NewRequest(http.MethodDelete, "/vault/"+id.String(), nil)
		req.SetBasicAuth("billing", "key-billing")
		assert.Equal(t, http.StatusTooManyRequests, f.serve(req).Code)
	})

	t.Run("HealthIsPublic", func(t *testing.T) {
		f := newRouterFixture(t, nil)

		w := f.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NoMetricsEndpoint", func(t *testing.T) {
		f := newRouterFixture(t, nil)

		w := f.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSetupRouter_RecordsHTTPMetrics(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	server := createTestServer()
	server.SetupRouter(
		t.Context(),
		&config.Config{LogLevel: "error", MetricsNamespace: "test_app"},
		vaultHTTP.NewVaultHandler(vaultUsecaseMocks.NewMockVaultUseCase(t), "", newDiscardLogger()),
		nil,
		provider,
	)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "test_app_http_requests_total")
	assert.Contains(t, w.Body.String(), `path="/health"`)
}

func TestServer_StartRequiresRouter(t *testing.T) {
	server := createTestServer()

	err := server.Start(context.Background())

	assert.Error(t, err)
}

func TestServer_ShutdownGracefully(t *testing.T) {
	server := createTestServer()
	server.SetupRouter(
		t.Context(),
		&config.Config{LogLevel: "error"},
		vaultHTTP.NewVaultHandler(vaultUsecaseMocks.NewMockVaultUseCase(t), "", newDiscardLogger()),
		nil,
		nil,
	)
	gin.SetMode(gin.TestMode)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	assert.NoError(t, server.Shutdown(shutdownCtx))
	assert.NoError(t, <-errChan)
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 0, newDiscardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsServer.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestMetricsServer_OnlyServesMetrics(t *testing.T) {
	metricsServer := NewMetricsServer("localhost", 0, newDiscardLogger(), nil)

	for _, path := range []string{"/metrics", "/vault", "/health"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		metricsServer.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
