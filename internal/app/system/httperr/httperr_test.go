package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeUnauthenticated, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeServerMisconfigured, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
		{Code("bogus"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := Status(tt.code); got != tt.want {
				t.Errorf("Status(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestWrite_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, CodeConflict, "a claim already exists for this post")

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %q, want application/json", ct)
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "conflict" {
		t.Errorf("code = %q, want conflict", body.Error.Code)
	}
	if body.Error.Message != "a claim already exists for this post" {
		t.Errorf("message = %q", body.Error.Message)
	}
}

func TestLogServerError_HidesCause(t *testing.T) {
	l := NewErrorLogger(zap.NewNop())

	req := httptest.NewRequest("GET", "/posts", nil)
	rec := httptest.NewRecorder()
	l.LogServerError(rec, req, "find posts failed", errors.New("connection reset by peer"), "A database error occurred.")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := rec.Body.String(); !strings.Contains(got, "A database error occurred.") {
		t.Errorf("body %q missing user message", got)
	}
	if got := rec.Body.String(); strings.Contains(got, "connection reset") {
		t.Errorf("body %q leaks the underlying error", got)
	}
}

func TestLogBadRequest(t *testing.T) {
	l := NewErrorLogger(zap.NewNop())

	req := httptest.NewRequest("POST", "/posts", nil)
	rec := httptest.NewRecorder()
	l.LogBadRequest(rec, req, "decode body failed", errors.New("unexpected EOF"), "Invalid JSON body.")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_input") {
		t.Errorf("body %q missing invalid_input code", rec.Body.String())
	}
}

func TestLogMisconfigured(t *testing.T) {
	l := NewErrorLogger(zap.NewNop())

	req := httptest.NewRequest("POST", "/claims", nil)
	rec := httptest.NewRecorder()
	l.LogMisconfigured(rec, req, "api key not configured", "Server is not configured for claims.")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "server_misconfigured") {
		t.Errorf("body %q missing server_misconfigured code", rec.Body.String())
	}
}

func TestNewErrorLogger_NilLogger(t *testing.T) {
	l := NewErrorLogger(nil)
	if l == nil {
		t.Fatal("NewErrorLogger(nil) returned nil")
	}

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	l.LogServerError(rec, req, "boom", errors.New("x"), "err") // must not panic
}
