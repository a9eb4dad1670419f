package commercetools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"golang.org/x/sync/singleflight"

	"github.com/colorful-demo/commerce-gateway/internal/config"
	"github.com/colorful-demo/commerce-gateway/internal/models"
)

// expiryMargin is subtracted from expires_in so the credential is refreshed
// before the platform invalidates it.
const expiryMargin = 60 * time.Second

// TokenSource supplies a valid bearer credential for outbound commerce
// platform requests, caching it in process between grants.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type credential struct {
	token     string
	expiresAt time.Time
}

type tokenSource struct {
	conf       config.CommercetoolsConfig
	httpClient *http.Client
	now        func() time.Time

	mu     sync.RWMutex
	cached *credential
	group  singleflight.Group
}

func NewTokenSource(conf *config.Config) TokenSource {
	return &tokenSource{
		conf: conf.Commercetools,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

func (ts *tokenSource) AccessToken(ctx context.Context) (string, error) {
	if err := ts.conf.Validate(); err != nil {
		return "", err
	}

	if token, ok := ts.cachedToken(); ok {
		return token, nil
	}

	// Coalesce concurrent refreshes into a single grant request.
	token, err, _ := ts.group.Do("token", func() (interface{}, error) {
		if token, ok := ts.cachedToken(); ok {
			return token, nil
		}

		cred, err := ts.requestToken(ctx)
		if err != nil {
			return "", err
		}

		ts.mu.Lock()
		ts.cached = cred
		ts.mu.Unlock()

		return cred.token, nil
	})
	if err != nil {
		return "", err
	}

	return token.(string), nil
}

func (ts *tokenSource) cachedToken() (string, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	if ts.cached != nil && ts.now().Before(ts.cached.expiresAt) {
		return ts.cached.token, true
	}
	return "", false
}

func (ts *tokenSource) requestToken(ctx context.Context) (*credential, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		ts.conf.AuthURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &models.AuthError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	basic := base64.StdEncoding.EncodeToString([]byte(ts.conf.ClientID + ":" + ts.conf.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return nil, &models.AuthError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &models.AuthError{Status: resp.StatusCode}
	}

	var grant models.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return nil, &models.AuthError{Err: fmt.Errorf("failed to decode token response: %w", err)}
	}

	expiresAt := ts.now().Add(time.Duration(grant.ExpiresIn)*time.Second - expiryMargin)
	log.Infow(ctx, "obtained commercetools access token", "scope", grant.Scope, "expires_at", expiresAt)

	return &credential{token: grant.AccessToken, expiresAt: expiresAt}, nil
}
