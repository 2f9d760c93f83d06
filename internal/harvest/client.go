// Package harvest is a client for the Harvest v2 REST API.
//
// Every operation validates its input locally, performs exactly one HTTP
// exchange, and decodes the response into typed records. There is no
// caching, no retrying, and no state between calls. Failures surface as
// one of three error kinds: ValidationError (bad input, nothing sent),
// APIError (upstream non-2xx), or RequestError (the exchange itself
// failed).
package harvest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Defaults applied by NewAPI when the corresponding option is unset.
const (
	DefaultBaseURL          = "https://api.harvestapp.com/v2"
	DefaultTimeout          = 30 * time.Second
	DefaultReportWindowDays = 30
)

// userAgent identifies this client on every request, as the API
// guidelines require.
const userAgent = "harvest-mcp-server (github.com/ianaleck/harvest-mcp-server)"

// HTTPDoer defines the HTTP operations required by API.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Options configure an API client.
type Options struct {
	// AccessToken is the personal access token sent as a bearer
	// credential. Required.
	AccessToken string

	// AccountID is the Harvest account the token belongs to, sent in the
	// Harvest-Account-Id header. Required.
	AccountID string

	// BaseURL overrides the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request when the default HTTP client is used.
	// Defaults to DefaultTimeout. Ignored when HTTPClient is set.
	Timeout time.Duration

	// HTTPClient replaces the underlying transport, primarily for tests.
	HTTPClient HTTPDoer

	// Logger receives one record before and one after every exchange.
	// A nil logger discards everything.
	Logger *slog.Logger

	// Clock supplies the current time for timer starts and default
	// report windows. Defaults to time.Now.
	Clock func() time.Time

	// ReportWindowDays is the width of the default report window applied
	// when a report is requested without a date range. Defaults to
	// DefaultReportWindowDays.
	ReportWindowDays int
}

// API is a stateless Harvest v2 client. The zero value is not usable;
// construct with NewAPI.
type API struct {
	baseURL      string
	accessToken  string
	accountID    string
	httpClient   HTTPDoer
	logger       *slog.Logger
	now          func() time.Time
	reportWindow int
}

// NewAPI builds a client from options. The access token and account ID
// are required; everything else has a default.
func NewAPI(opts Options) (*API, error) {
	var p problems
	p.requireString("access token", opts.AccessToken)
	p.requireString("account ID", opts.AccountID)
	if err := p.err(); err != nil {
		return nil, err
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, &ValidationError{Problems: []string{"base URL: " + err.Error()}}
	}
	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	reportWindow := opts.ReportWindowDays
	if reportWindow <= 0 {
		reportWindow = DefaultReportWindowDays
	}

	return &API{
		baseURL:      baseURL,
		accessToken:  opts.AccessToken,
		accountID:    opts.AccountID,
		httpClient:   httpClient,
		logger:       logger,
		now:          now,
		reportWindow: reportWindow,
	}, nil
}

// get performs a GET request and decodes the response into out.
func (a *API) get(ctx context.Context, path string, query url.Values, out any) error {
	return a.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs a POST request with a JSON body.
func (a *API) post(ctx context.Context, path string, body, out any) error {
	return a.do(ctx, http.MethodPost, path, nil, body, out)
}

// patch performs a PATCH request with an optional JSON body.
func (a *API) patch(ctx context.Context, path string, body, out any) error {
	return a.do(ctx, http.MethodPatch, path, nil, body, out)
}

// del performs a DELETE request. Harvest returns an empty body on
// success, so there is nothing to decode.
func (a *API) del(ctx context.Context, path string) error {
	return a.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do runs a single HTTP exchange: build, send, translate, decode.
func (a *API) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path

	requestURL := a.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Op: op, Err: fmt.Errorf("encoding request body: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+a.accessToken)
	req.Header.Set("Harvest-Account-Id", a.accountID)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	a.logger.Debug("harvest request", "method", method, "path", path)
	start := time.Now()

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Error("harvest request failed", "method", method, "path", path, "error", err)
		return &RequestError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Op: op, Err: fmt.Errorf("reading response body: %w", err)}
	}

	a.logger.Debug("harvest response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, respBody, resp.Header.Get("Retry-After"))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &RequestError{Op: op, Err: fmt.Errorf("invalid response body: %w", err)}
	}
	return nil
}
