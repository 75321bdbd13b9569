package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("GIT_COMMIT", "abc123")
	t.Setenv("BUILD_TIME", "")

	e := echo.New()
	e.GET("/ping", NewPingHandler("recab", "1.2.0"))

	rec := serve(e, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "recab", info.ServiceName)
	assert.Equal(t, "1.2.0", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.False(t, info.ServerTime.IsZero())
}

func TestLivenessEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "recab", "1.0.0", nil)

	for _, path := range []string{"/health", "/healthz"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(e, path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"ok"`)
			assert.Contains(t, rec.Body.String(), `"service":"recab"`)
		})
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name           string
		checker        HealthChecker
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "all dependencies healthy",
			checker:        CheckerFunc(func(context.Context) error { return nil }),
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ready"`,
		},
		{
			name:           "dependency down",
			checker:        CheckerFunc(func(context.Context) error { return errors.New("connection refused") }),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `"error":"connection refused"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHealthService()
			svc.AddChecker("postgres", tt.checker)

			e := echo.New()
			RegisterHealthEndpoints(e, "recab", "1.0.0", svc)

			rec := serve(e, "/ready")
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestDetailedHealth_RedisChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })

	svc := NewHealthService()
	svc.AddChecker("redis", NewRedisHealthChecker(client))
	svc.AddChecker("postgres", NewPostgresHealthChecker(nil))
	svc.AddChecker("nsq", NewNSQHealthChecker(nil))

	e := echo.New()
	RegisterHealthEndpoints(e, "recab", "1.0.0", svc)

	rec := serve(e, "/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Len(t, response.Dependencies, 3)
	assert.Equal(t, StatusHealthy, response.Dependencies["redis"].Status)

	down, err := miniredis.Run()
	require.NoError(t, err)
	downAddr := down.Addr()
	down.Close()
	downClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: downAddr, MaxRetries: -1})}
	t.Cleanup(func() { downClient.Close() })
	svc.AddChecker("redis", NewRedisHealthChecker(downClient))

	rec = serve(e, "/health/detailed")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	response = HealthResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Equal(t, StatusUnhealthy, response.Dependencies["redis"].Status)
	assert.NotEmpty(t, response.Dependencies["redis"].Error)
	assert.Equal(t, StatusHealthy, response.Dependencies["postgres"].Status)
}
