// Package saxo provides a client for the Saxo Bank OpenAPI portfolio service.
// Every request carries the configured ClientKey as a query parameter.
package saxo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aristath/spreadbook/internal/domain"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL points at the Saxo simulation environment
	DefaultBaseURL = "https://gateway.saxobank.com/sim/openapi"
	// DefaultTimeout bounds a single request end to end
	DefaultTimeout = 30 * time.Second

	positionsPath = "/port/v1/positions"

	// Error bodies are truncated in log lines only
	maxLoggedBodyLength = 500
)

var _ domain.PositionsGateway = (*Client)(nil)

// Client is the Saxo OpenAPI client. It implements domain.PositionsGateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a new Saxo client.
// baseURL defaults to DefaultBaseURL and timeout to DefaultTimeout when zero.
func NewClient(baseURL, clientKey string, timeout time.Duration, log zerolog.Logger) *Client {
	return newClient(baseURL, clientKey, timeout, http.DefaultTransport, log)
}

func newClient(baseURL, clientKey string, timeout time.Duration, base http.RoundTripper, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newClientKeyTransport(base, clientKey),
		},
		log: log.With().Str("client", "saxo").Logger(),
	}
}

// GetPositions fetches all positions of the account in the order the broker reports them.
// Exactly one HTTP request is made; failures are not retried.
func (c *Client) GetPositions(ctx context.Context) ([]domain.RawPosition, error) {
	var resp PositionsResponse
	if err := c.get(ctx, positionsPath, &resp); err != nil {
		return nil, err
	}

	positions, err := transformPositionsToDomain(resp.Data)
	if err != nil {
		c.log.Error().Err(err).Msg("Broker returned an unusable position")
		return nil, err
	}

	c.log.Debug().
		Int("count", len(positions)).
		Int("reported_count", resp.Count).
		Msg("Fetched positions")

	return positions, nil
}

// get performs a GET against path and decodes a 2xx JSON body into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	requestURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(ctx, requestURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, requestURL, err)
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Saxo request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newRemoteAPIError(resp.StatusCode, requestURL, body)
		c.log.Error().
			Int("status", apiErr.StatusCode).
			Str("error_code", apiErr.ErrorCode).
			Str("message", apiErr.Message).
			Str("body", truncate(apiErr.Body, maxLoggedBodyLength)).
			Msg("Saxo API rejected request")
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

// transportError classifies a failure that produced no usable response
func (c *Client) transportError(ctx context.Context, requestURL string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.log.Debug().Err(ctxErr).Str("url", requestURL).Msg("Saxo request cancelled")
		return &domain.CancelledError{Err: ctxErr}
	}

	c.log.Error().Err(err).Str("url", requestURL).Msg("Saxo request failed")
	return &domain.RemoteAPIError{URL: requestURL, Err: err}
}

// newRemoteAPIError builds the error for a non-2xx response.
// Structured fields are filled when the body is a Saxo error document; the full raw body is always kept.
func newRemoteAPIError(statusCode int, requestURL string, body []byte) *domain.RemoteAPIError {
	apiErr := &domain.RemoteAPIError{
		StatusCode: statusCode,
		URL:        requestURL,
		Body:       string(body),
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Message = errResp.Message
		apiErr.ErrorCode = errResp.ErrorCode
		apiErr.ModelState = errResp.ModelState
	}

	return apiErr
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
