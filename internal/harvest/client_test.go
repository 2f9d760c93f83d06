//nolint:bodyclose // Test file uses mock responses with NopCloser bodies
package harvest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

// mockHTTPDoer implements HTTPDoer for testing.
type mockHTTPDoer struct {
	response *http.Response
	err      error
}

func (m *mockHTTPDoer) Do(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// mockResponse creates a mock HTTP response with the given status and body.
// The body uses io.NopCloser so no explicit close is required.
func mockResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

// capturingHTTPDoer records every request and its body, replaying the
// canned responses in order.
type capturingHTTPDoer struct {
	responses []*http.Response
	requests  []*http.Request
	bodies    []string
}

func (c *capturingHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
		req.Body = io.NopCloser(bytes.NewReader(data))
	}
	c.requests = append(c.requests, req)
	c.bodies = append(c.bodies, body)
	if len(c.requests) > len(c.responses) {
		return nil, fmt.Errorf("unexpected request %d: %s %s", len(c.requests), req.Method, req.URL)
	}
	return c.responses[len(c.requests)-1], nil
}

func floatPtr(v float64) *float64 { return &v }

// newTestAPI builds a client wired to the given doer with test
// credentials.
func newTestAPI(t *testing.T, doer HTTPDoer) *API {
	t.Helper()
	api, err := NewAPI(Options{
		AccessToken: "test-token",
		AccountID:   "12345",
		HTTPClient:  doer,
	})
	if err != nil {
		t.Fatalf("NewAPI() error = %v", err)
	}
	return api
}

func TestNewAPI_RequiredOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantProblem string
	}{
		{
			name:        "missing access token",
			opts:        Options{AccountID: "12345"},
			wantProblem: "access token: is required",
		},
		{
			name:        "missing account ID",
			opts:        Options{AccessToken: "tok"},
			wantProblem: "account ID: is required",
		},
		{
			name:        "missing both",
			opts:        Options{},
			wantProblem: "access token: is required; account ID: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAPI(tt.opts)
			if err == nil {
				t.Fatal("NewAPI() expected error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("NewAPI() error = %T, want *ValidationError", err)
			}
			if err.Error() != tt.wantProblem {
				t.Errorf("NewAPI() error = %q, want %q", err.Error(), tt.wantProblem)
			}
		})
	}
}

func TestNewAPI_Defaults(t *testing.T) {
	api, err := NewAPI(Options{AccessToken: "tok", AccountID: "1"})
	if err != nil {
		t.Fatalf("NewAPI() error = %v", err)
	}
	if api.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", api.baseURL, DefaultBaseURL)
	}
	if api.reportWindow != DefaultReportWindowDays {
		t.Errorf("reportWindow = %d, want %d", api.reportWindow, DefaultReportWindowDays)
	}
}

func TestNewAPI_TrimsBaseURL(t *testing.T) {
	api, err := NewAPI(Options{
		AccessToken: "tok",
		AccountID:   "1",
		BaseURL:     "https://example.com/v2/",
	})
	if err != nil {
		t.Fatalf("NewAPI() error = %v", err)
	}
	if api.baseURL != "https://example.com/v2" {
		t.Errorf("baseURL = %q, want trailing slash removed", api.baseURL)
	}
}

func TestDo_Headers(t *testing.T) {
	doer := &capturingHTTPDoer{responses: []*http.Response{
		mockResponse(http.StatusOK, `{"id": 1, "name": "Acme"}`),
	}}
	api := newTestAPI(t, doer)

	if _, err := api.GetClient(context.Background(), 1); err != nil {
		t.Fatalf("GetClient() error = %v", err)
	}

	req := doer.requests[0]
	if got := req.Header.Get("Authorization"); got != "Bearer test-token" {
		t.Errorf("Authorization = %q, want 'Bearer test-token'", got)
	}
	if got := req.Header.Get("Harvest-Account-Id"); got != "12345" {
		t.Errorf("Harvest-Account-Id = %q, want '12345'", got)
	}
	if got := req.Header.Get("User-Agent"); got != userAgent {
		t.Errorf("User-Agent = %q, want %q", got, userAgent)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want 'application/json'", got)
	}
	// GET carries no body, so no Content-Type either.
	if got := req.Header.Get("Content-Type"); got != "" {
		t.Errorf("Content-Type = %q, want unset on GET", got)
	}
}

func TestDo_ContentTypeWithBody(t *testing.T) {
	doer := &capturingHTTPDoer{responses: []*http.Response{
		mockResponse(http.StatusCreated, `{"id": 1, "name": "Acme"}`),
	}}
	api := newTestAPI(t, doer)

	_, err := api.CreateClient(context.Background(), ClientCreate{Name: "Acme"})
	if err != nil {
		t.Fatalf("CreateClient() error = %v", err)
	}

	if got := doer.requests[0].Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want 'application/json'", got)
	}
}

func TestDo_NetworkError(t *testing.T) {
	networkErr := errors.New("connection refused")
	api := newTestAPI(t, &mockHTTPDoer{err: networkErr})

	_, err := api.GetClient(context.Background(), 1)
	if err == nil {
		t.Fatal("GetClient() expected error")
	}
	var rerr *RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("GetClient() error = %T, want *RequestError", err)
	}
	if !errors.Is(err, networkErr) {
		t.Error("GetClient() error should unwrap to the transport error")
	}
	if !strings.Contains(err.Error(), "GET /clients/1") {
		t.Errorf("error = %q, want to contain the operation", err.Error())
	}
}

func TestDo_InvalidResponseBody(t *testing.T) {
	api := newTestAPI(t, &mockHTTPDoer{
		response: mockResponse(http.StatusOK, "not valid json"),
	})

	_, err := api.GetClient(context.Background(), 1)
	if err == nil {
		t.Fatal("GetClient() expected error")
	}
	var rerr *RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("GetClient() error = %T, want *RequestError", err)
	}
	if !strings.Contains(err.Error(), "invalid response body") {
		t.Errorf("error = %q, want to contain 'invalid response body'", err.Error())
	}
}

func TestDo_APIErrorFromStatus(t *testing.T) {
	api := newTestAPI(t, &mockHTTPDoer{
		response: mockResponse(http.StatusNotFound, `{"error": "not found"}`),
	})

	_, err := api.GetClient(context.Background(), 42)
	if err == nil {
		t.Fatal("GetClient() expected error")
	}
	var aerr *APIError
	if !errors.As(err, &aerr) {
		t.Fatalf("GetClient() error = %T, want *APIError", err)
	}
	if aerr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", aerr.StatusCode)
	}
	if err.Error() != "Resource not found" {
		t.Errorf("error = %q, want 'Resource not found'", err.Error())
	}
}
