package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/sharetable/internal/app/system/auth"
)

// NewJSONRequest builds a request carrying a JSON body.
func NewJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithAPIKey sets the static-key header on the request.
func WithAPIKey(r *http.Request, key string) *http.Request {
	r.Header.Set(auth.APIKeyHeader, key)
	return r
}

// WithBearer sets a bearer Authorization header on the request.
func WithBearer(r *http.Request, tok string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+tok)
	return r
}
