// internal/app/system/httperr/httperr.go

// Package httperr renders API failures as a uniform JSON envelope.
//
// Every failure a handler can produce maps to one of a small set of codes;
// the envelope shape is identical across endpoints:
//
//	{"error": {"code": "conflict", "message": "a claim already exists"}}
//
// Client errors (400/401/404/409) are rendered with Write and are not
// logged. Server-side failures go through ErrorLogger, which logs the
// underlying error with zap and renders a non-leaking message.
package httperr

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Code classifies an API failure.
type Code string

const (
	CodeInvalidInput        Code = "invalid_input"
	CodeUnauthenticated     Code = "unauthenticated"
	CodeNotFound            Code = "not_found"
	CodeConflict            Code = "conflict"
	CodeRateLimited         Code = "rate_limited"
	CodeServerMisconfigured Code = "server_misconfigured"
	CodeInternal            Code = "internal"
)

// Status returns the HTTP status for a code. Unknown codes map to 500
// rather than leaking a zero status into the response.
func Status(c Code) int {
	switch c {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeServerMisconfigured, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

type envelope struct {
	Error detail `json:"error"`
}

type detail struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Write renders the JSON error envelope for code with msg.
func Write(w http.ResponseWriter, code Code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(envelope{Error: detail{Code: code, Message: msg}})
}

// ErrorLogger pairs server-side logging with envelope rendering, so
// handlers fail a request in one call instead of logging and rendering
// separately (and inevitably forgetting one of the two).
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger backed by the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger}
}

// LogServerError logs err under logMsg and renders an internal-error
// envelope carrying userMsg. The underlying error never reaches the client.
func (l *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	l.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	Write(w, CodeInternal, userMsg)
}

// LogBadRequest logs err under logMsg at warn level and renders an
// invalid-input envelope carrying userMsg. Used for body decode failures,
// where the cause is worth a log line but the fault is the caller's.
func (l *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	l.log.Warn(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	Write(w, CodeInvalidInput, userMsg)
}

// LogMisconfigured logs a server configuration problem and renders the
// misconfiguration envelope. Used when a request needs a secret the
// operator never set.
func (l *ErrorLogger) LogMisconfigured(w http.ResponseWriter, r *http.Request, logMsg string, userMsg string) {
	l.log.Error(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	Write(w, CodeServerMisconfigured, userMsg)
}
