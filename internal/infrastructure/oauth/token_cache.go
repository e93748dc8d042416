package oauth

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/metrics"
)

// tokenPath is the provider's client-credentials endpoint.
const tokenPath = "/v1/security/oauth2/token"

// TokenCache acquires and caches a bearer credential from the provider's
// client-credentials endpoint. Concurrent callers needing a refresh collapse
// into a single token request; late callers receive the in-flight result,
// success or failure alike.
type TokenCache struct {
	conf    *clientcredentials.Config
	now     func() time.Time
	group   singleflight.Group
	logger  logger.Logger
	metrics *metrics.Metrics

	mu   sync.RWMutex
	cred *entity.Credential
}

// NewTokenCache creates a new token cache for the given client identity.
// The metrics argument may be nil.
func NewTokenCache(baseURL, clientID, clientSecret string, logger logger.Logger, m *metrics.Metrics) *TokenCache {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	return &TokenCache{
		conf:    conf,
		now:     time.Now,
		logger:  logger,
		metrics: m,
	}
}

// WithClock replaces the cache's clock, for tests.
func (c *TokenCache) WithClock(now func() time.Time) *TokenCache {
	c.now = now
	return c
}

// Token returns a currently valid bearer token. A cached credential inside
// its validity window is returned without I/O; otherwise a single refresh
// is performed no matter how many callers are waiting.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	if c.conf.ClientID == "" || c.conf.ClientSecret == "" {
		return "", entity.ErrMissingCredentials
	}

	c.mu.RLock()
	cred := c.cred
	c.mu.RUnlock()
	if cred.Valid(c.now()) {
		return cred.Token, nil
	}

	v, err, _ := c.group.Do("token", func() (interface{}, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(*entity.Credential).Token, nil
}

// Invalidate clears the cached credential immediately so the next caller
// triggers a fresh refresh. Called on authorization failures from any
// downstream request using the token.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.cred = nil
	c.mu.Unlock()
	c.logger.Info("Access token invalidated")
}

func (c *TokenCache) refresh(ctx context.Context) (*entity.Credential, error) {
	// A refresh that was queued behind another flight may find a fresh
	// credential already in place.
	c.mu.RLock()
	cred := c.cred
	c.mu.RUnlock()
	if cred.Valid(c.now()) {
		return cred, nil
	}

	token, err := c.conf.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, &entity.AuthError{
				Status: retrieveErr.Response.StatusCode,
				Body:   string(retrieveErr.Body),
			}
		}
		return nil, &entity.NetworkError{Err: err}
	}

	fresh := &entity.Credential{
		Token:     token.AccessToken,
		ExpiresAt: token.Expiry,
	}

	c.mu.Lock()
	c.cred = fresh
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.TokenRefreshes.Inc()
	}
	c.logger.Info("Access token refreshed", "expiresAt", fresh.ExpiresAt)

	return fresh, nil
}
