package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/logger"
)

// API paths.
const (
	flightOffersPath = "/v2/shopping/flight-offers"
	locationsPath    = "/v1/reference-data/locations"
)

const (
	// maxRetries is the number of extra attempts after a retryable failure.
	maxRetries = 2
	// retryBackoff is the base delay between attempts, scaled linearly.
	retryBackoff = 300 * time.Millisecond
)

// Client is the authenticated HTTP transport for the Amadeus API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     repository.TokenProvider
	logger     logger.Logger
}

// NewClient creates a new Amadeus API client
func NewClient(baseURL string, timeout time.Duration, tokens repository.TokenProvider, logger logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// get performs an authenticated GET request and decodes the JSON response
// into out. Server and transport failures are retried up to maxRetries
// times. An authorization failure invalidates the cached credential and the
// request is retried exactly once with a fresh token.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	attempts := 0
	authRetried := false

	for {
		err := c.doOnce(ctx, path, query, out)
		if err == nil {
			return nil
		}

		var authErr *entity.AuthError
		if errors.As(err, &authErr) {
			c.tokens.Invalidate()
			if authRetried {
				return err
			}
			c.logger.Warn("Request unauthorized, retrying with fresh token", "path", path)
			authRetried = true
			continue
		}

		if !isRetryable(err) || attempts >= maxRetries {
			return err
		}
		attempts++
		c.logger.Warn("Request failed, retrying", "path", path, "attempt", attempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempts)):
		}
	}
}

// doOnce performs a single request attempt.
func (c *Client) doOnce(ctx context.Context, path string, query url.Values, out interface{}) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &entity.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		body, _ := io.ReadAll(resp.Body)
		return &entity.AuthError{Status: resp.StatusCode, Body: string(body)}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return &entity.APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// isRetryable reports whether the error class warrants another attempt.
func isRetryable(err error) bool {
	var apiErr *entity.APIError
	var netErr *entity.NetworkError
	return errors.As(err, &apiErr) || errors.As(err, &netErr)
}
