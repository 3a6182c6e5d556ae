package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planets-proxy/internal/planet"
	serverHandlers "planets-proxy/internal/server/handlers"
	"planets-proxy/internal/shared/config"
	"planets-proxy/internal/shared/requestid"
	"planets-proxy/internal/swapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, metricsEnabled bool) *httptest.Server {
	t.Helper()

	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/planets/1/" {
			_, _ = io.WriteString(w, `{"name":"Tatooine"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(remote.Close)

	cfg := &config.Config{
		Server:    config.ServerConfig{Port: "8080", Environment: "test"},
		SWAPI:     config.SWAPIConfig{BaseURL: remote.URL + "/api", Timeout: 2 * time.Second, InsecureSkipVerify: true},
		Frontend:  config.FrontendConfig{URL: "http://localhost:3000"},
		RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerSecond: 100, BurstSize: 100},
		Metrics:   config.MetricsConfig{Enabled: metricsEnabled, Path: "/metrics"},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := planet.NewService(swapi.NewClient(cfg.SWAPI, logger), logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := httptest.NewServer(NewRoutes(service, cfg, logger).Handler(ctx))
	t.Cleanup(server.Close)
	return server
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, true)

	resp, err := http.Get(server.URL + "/api/server/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))

	var body struct {
		Success bool                          `json:"success"`
		Data    serverHandlers.HealthResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "healthy", body.Data.Status)
	assert.Equal(t, "test", body.Data.Environment)
}

func TestPlanetRoutesThroughMiddleware(t *testing.T) {
	server := newTestServer(t, true)

	resp, err := http.Get(server.URL + "/api/planets/1")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"data":{"name":"Tatooine"}}`, string(body))

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	metrics, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(metrics), `planets_http_requests_total{method="GET",route="/api/planets/{id}",status="200"}`)
	assert.Contains(t, string(metrics), "planets_swapi_requests_total")
}

func TestMetricsDisabled(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
