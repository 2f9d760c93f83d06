package harvest

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAPIError_Messages(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		retryAfter string
		want       string
	}{
		{
			name:       "401 unauthorized",
			statusCode: 401,
			want:       "Authentication failed. Check your Harvest access token and account ID",
		},
		{
			name:       "403 forbidden",
			statusCode: 403,
			want:       "Permission denied. Your account cannot perform this operation",
		},
		{
			name:       "404 not found",
			statusCode: 404,
			want:       "Resource not found",
		},
		{
			name:       "422 with body",
			statusCode: 422,
			body:       `{"message":"Name has already been taken"}`,
			want:       `Validation failed: {"message":"Name has already been taken"}`,
		},
		{
			name:       "429 with retry-after",
			statusCode: 429,
			retryAfter: "15",
			want:       "Rate limit exceeded. Retry after 15 seconds",
		},
		{
			name:       "429 without retry-after",
			statusCode: 429,
			want:       "Rate limit exceeded. Retry after unknown seconds",
		},
		{
			name:       "500 server error",
			statusCode: 500,
			want:       "Harvest API server error. Please try again later",
		},
		{
			name:       "502 bad gateway",
			statusCode: 502,
			want:       "Harvest API server error. Please try again later",
		},
		{
			name:       "503 unavailable",
			statusCode: 503,
			want:       "Harvest API server error. Please try again later",
		},
		{
			name:       "504 gateway timeout",
			statusCode: 504,
			want:       "Harvest API server error. Please try again later",
		},
		{
			name:       "unmapped status",
			statusCode: 418,
			want:       "HTTP 418: I'm a teapot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError(tt.statusCode, []byte(tt.body), tt.retryAfter)
			if err.Message != tt.want {
				t.Errorf("newAPIError(%d) message = %q, want %q", tt.statusCode, err.Message, tt.want)
			}
			if err.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tt.statusCode)
			}
		})
	}
}

func TestNewAPIError_BodyTruncation(t *testing.T) {
	longBody := strings.Repeat("x", 600)
	err := newAPIError(422, []byte(longBody), "")

	if len(err.Body) != maxErrorBody {
		t.Errorf("Body length = %d, want %d", len(err.Body), maxErrorBody)
	}
	if !strings.HasPrefix(err.Message, "Validation failed: ") {
		t.Errorf("Message = %q, want 'Validation failed: ' prefix", err.Message)
	}
	if strings.Count(err.Message, "x") != maxErrorBody {
		t.Errorf("Message holds %d body chars, want %d", strings.Count(err.Message, "x"), maxErrorBody)
	}
}

func TestNewAPIError_TrimsWhitespace(t *testing.T) {
	err := newAPIError(422, []byte("  oops \n"), "")
	if err.Message != "Validation failed: oops" {
		t.Errorf("Message = %q, want body trimmed", err.Message)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Problems: []string{"name: is required", "currency: must be a 3-letter uppercase currency code"}}
	want := "name: is required; currency: must be a 3-letter uppercase currency code"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRequestError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &RequestError{Op: "GET /clients", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Error() != "GET /clients: dial tcp: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
}
