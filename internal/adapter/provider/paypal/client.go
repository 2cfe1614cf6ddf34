package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"walletguard/pkg/circuitbreaker"

	"golang.org/x/sync/singleflight"
)

const tokenRefreshMargin = 60 * time.Second

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// statusError is a non-2xx reply from the PayPal API.
type statusError struct {
	op     string
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("paypal %s returned status %d", e.op, e.status)
}

// client talks to the PayPal REST API. Every call runs through the breaker
// with its own timeout; callers bound the whole exchange with their context.
type client struct {
	baseURL      string
	clientID     string
	clientSecret string
	timeout      time.Duration
	http         HTTPClient
	breaker      *circuitbreaker.Breaker
	now          func() time.Time

	tokens      singleflight.Group
	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// accessToken returns the cached OAuth token, exchanging client credentials
// when it is missing or within a minute of expiry. Concurrent callers share
// one exchange and each stops waiting when its own context ends.
func (c *client) accessToken(ctx context.Context) (string, error) {
	if token, ok := c.cachedToken(); ok {
		return token, nil
	}

	ch := c.tokens.DoChan("oauth", func() (any, error) {
		return c.fetchToken(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", fmt.Errorf("paypal oauth token: %w", ctx.Err())
	}
}

func (c *client) cachedToken() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.now().Before(c.tokenExpiry.Add(-tokenRefreshMargin)) {
		return c.token, true
	}
	return "", false
}

// fetchToken runs the exchange without holding mu; call bounds it with the
// per-call timeout.
func (c *client) fetchToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	var tok tokenResponse
	err := c.call(ctx, "oauth token", func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.SetBasicAuth(c.clientID, c.clientSecret)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")
		return req, nil
	}, &tok)
	if err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("paypal oauth token response carries no access_token")
	}

	c.mu.Lock()
	c.token = tok.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.mu.Unlock()
	return tok.AccessToken, nil
}

func (c *client) invalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// postJSON sends body with the bearer token and decodes the reply into out.
func (c *client) postJSON(ctx context.Context, op, path string, body any, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode paypal %s request: %w", op, err)
	}

	err = c.call(ctx, op, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}, out)
	var se *statusError
	if errors.As(err, &se) && se.status == http.StatusUnauthorized {
		c.invalidateToken()
	}
	return err
}

// call counts transport errors, 5xx, 401 and 429 against the breaker. Other
// 4xx replies describe the request, not PayPal's health.
func (c *client) call(ctx context.Context, op string, build func(context.Context) (*http.Request, error), out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var rejected error
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		req, err := build(ctx)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("paypal %s: %w", op, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			io.Copy(io.Discard, resp.Body) //nolint:errcheck
			se := &statusError{op: op, status: resp.StatusCode}
			if countsAsFailure(resp.StatusCode) {
				return se
			}
			rejected = se
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode paypal %s response: %w", op, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return rejected
}

func countsAsFailure(status int) bool {
	return status >= 500 || status == http.StatusUnauthorized || status == http.StatusTooManyRequests
}
