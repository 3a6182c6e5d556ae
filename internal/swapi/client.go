package swapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"planets-proxy/internal/observability"
	"planets-proxy/internal/shared/config"
	"planets-proxy/internal/shared/errors"
)

const (
	MessagePlanetNotFound     = "the provided ID does not correspond to any planet"
	MessageServiceUnavailable = "the planet data service is unavailable"

	maxBodyBytes = 1 << 20 // 1 MB
)

// Client reads planets from the remote planet API. It never writes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.SWAPIConfig, logger *slog.Logger) *Client {
	logger.Debug("Initializing SWAPI client",
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout,
		"insecure_skip_verify", cfg.InsecureSkipVerify,
	)

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}
}

// GetPlanet fetches a planet and returns the remote JSON body untouched.
// Any non-200 status is reported as not found; transport failures and
// malformed bodies are reported as external errors.
func (c *Client) GetPlanet(ctx context.Context, id int) (json.RawMessage, error) {
	logger := c.logger.With("component", "swapi_client", "operation", "get_planet", "planet_id", id)
	url := fmt.Sprintf("%s/planets/%d/", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapInternal("failed to build planet request", err)
	}

	logger.Debug("Requesting planet from SWAPI", "url", url)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	observability.SWAPIRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.SWAPIRequestsTotal.WithLabelValues("error").Inc()
		return nil, errors.WrapExternal(MessageServiceUnavailable, fmt.Errorf("failed to request planet %d: %w", id, err))
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("Failed to close response body", "error", err)
		}
	}()

	observability.SWAPIRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		logger.Debug("SWAPI returned non-OK status", "status_code", resp.StatusCode)
		return nil, errors.WrapNotFound(MessagePlanetNotFound, fmt.Errorf("SWAPI returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, errors.WrapExternal(MessageServiceUnavailable, fmt.Errorf("failed to read planet %d: %w", id, err))
	}
	if len(body) > maxBodyBytes {
		return nil, errors.WrapExternal(MessageServiceUnavailable, fmt.Errorf("SWAPI response for planet %d exceeds %d bytes", id, maxBodyBytes))
	}

	if !json.Valid(body) {
		return nil, errors.WrapExternal(MessageServiceUnavailable, fmt.Errorf("SWAPI returned malformed JSON for planet %d", id))
	}

	logger.Debug("Planet retrieved from SWAPI", "bytes", len(body))
	return json.RawMessage(body), nil
}
