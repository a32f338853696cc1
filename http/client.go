// Package http provides net/http implementations of suggest.Suggester for
// each supported upstream autocomplete endpoint.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/suggest"
	"github.com/tidwall/gjson"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

// Option configures a suggester.
type Option func(*config)

type config struct {
	client    *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
}

// WithHTTPClient sets the HTTP client used for requests.
// When set, WithTimeout is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.client = c
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = d
	}
}

// WithBaseURL overrides the upstream endpoint. Intended for tests and
// for pointing a single suggester at a proxy.
func WithBaseURL(u string) Option {
	return func(cfg *config) {
		cfg.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cfg *config) {
		cfg.userAgent = ua
	}
}

// requester issues rate-limited GET requests against one endpoint.
type requester struct {
	client    *http.Client
	limiter   suggest.Limiter
	baseURL   string
	userAgent string
}

func newRequester(limiter suggest.Limiter, baseURL string, opts []Option) *requester {
	cfg := &config{
		timeout:   DefaultTimeout,
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client := cfg.client
	if client == nil {
		client = &http.Client{Timeout: cfg.timeout}
	}

	return &requester{
		client:    client,
		limiter:   limiter,
		baseURL:   cfg.baseURL,
		userAgent: cfg.userAgent,
	}
}

// get waits on the limiter, then fetches baseURL with params and returns
// the body. Non-2xx statuses return *suggest.HTTPError.
func (r *requester) get(ctx context.Context, params url.Values, opts suggest.Options) ([]byte, error) {
	if err := r.limiter.Wait(ctx, opts.EffectiveDelay()); err != nil {
		return nil, err
	}

	u, err := url.Parse(r.baseURL)
	if err != nil {
		return nil, suggest.Errorf(suggest.EINVALID, "invalid endpoint URL: %v", err)
	}
	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &suggest.HTTPError{StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

// parseJSON rejects bodies that are not JSON at all. Callers treat valid
// JSON of an unexpected shape as "no suggestions".
func parseJSON(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, suggest.Errorf(suggest.EDECODE, "invalid JSON response")
	}
	return gjson.ParseBytes(body), nil
}

// nonEmptyStrings collects the non-empty string values at path within each
// element of arr. Elements without a string at path are skipped.
func nonEmptyStrings(arr gjson.Result, path string) []string {
	results := []string{}
	if !arr.IsArray() {
		return results
	}
	for _, item := range arr.Array() {
		v := item.Get(path)
		if v.Type != gjson.String || v.Str == "" {
			continue
		}
		results = append(results, v.Str)
	}
	return results
}
