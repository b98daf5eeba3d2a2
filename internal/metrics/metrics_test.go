package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("usuarios")

	require.NoError(t, err)
	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestProvider_ShutdownWithoutMeterProvider(t *testing.T) {
	provider := &Provider{}
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("usuarios")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "usuarios")
	require.NoError(t, err)

	bm.RecordOperation(context.Background(), "user", "user_create", "success")
	bm.RecordOperation(context.Background(), "user", "user_create", "error")
	bm.RecordDuration(context.Background(), "user", "user_validate_login", 42*time.Millisecond, "success")

	// The recorded series must show up in the Prometheus exposition output
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, "usuarios_operations_total")
	assert.Contains(t, body, "usuarios_operation_duration_seconds")
	assert.Regexp(t, `usuarios_operations_total\{[^}]*operation="user_create"[^}]*status="success"[^}]*\} 1`, body)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()

	bm.RecordOperation(context.Background(), "user", "user_create", "success")
	bm.RecordDuration(context.Background(), "user", "user_create", time.Second, "success")
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("usuarios")
	require.NoError(t, err)

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "usuarios"))
	router.GET("/v1/usuarios/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/usuarios/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "usuarios_http_requests_total")
	assert.Regexp(t, `path="/v1/usuarios/:id"`, string(body))
}

func TestRoutePattern(t *testing.T) {
	assert.Equal(t, "unknown", routePattern(""))
	assert.Equal(t, "/v1/usuarios/:id", routePattern("/v1/usuarios/:id"))
}
