package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/sharetable/internal/app/system/token"
	"go.uber.org/zap"
)

func okHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func identityEcho(t *testing.T, got **Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := CurrentIdentity(r)
		if !ok {
			t.Error("no identity in context")
		}
		*got = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireUser_ValidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	g := NewGate(ModeToken, tokens, "", zap.NewNop())

	signed, err := tokens.Issue("64f0c1a2b3d4e5f60718293a")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var got *Identity
	req := httptest.NewRequest("POST", "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	g.RequireUser(identityEcho(t, &got)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil || got.UserID != "64f0c1a2b3d4e5f60718293a" {
		t.Errorf("identity = %+v, want the issued user id", got)
	}
}

func TestRequireUser_Failures(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	other := token.NewManager("other-secret", time.Hour)
	g := NewGate(ModeToken, tokens, "", zap.NewNop())

	foreign, err := other.Issue("abc")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"garbage", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/posts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			g.RequireUser(okHandler(t)).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRequireUser_UniformBody(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	g := NewGate(ModeToken, tokens, "", zap.NewNop())

	bodies := make(map[string]struct{})
	for _, header := range []string{"", "Bearer junk", "Bearer a.b.c"} {
		req := httptest.NewRequest("POST", "/posts", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		g.RequireUser(okHandler(t)).ServeHTTP(rec, req)
		bodies[rec.Body.String()] = struct{}{}
	}

	if len(bodies) != 1 {
		t.Errorf("got %d distinct 401 bodies, want identical bodies for all failure modes", len(bodies))
	}
}

func TestRequireAPIKey(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	t.Run("match", func(t *testing.T) {
		g := NewGate(ModeKey, tokens, "sekrit", zap.NewNop())
		req := httptest.NewRequest("POST", "/claims", nil)
		req.Header.Set(APIKeyHeader, "sekrit")
		rec := httptest.NewRecorder()

		g.RequireAPIKey(okHandler(t)).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		g := NewGate(ModeKey, tokens, "sekrit", zap.NewNop())
		req := httptest.NewRequest("POST", "/claims", nil)
		req.Header.Set(APIKeyHeader, "wrong")
		rec := httptest.NewRecorder()

		g.RequireAPIKey(okHandler(t)).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		g := NewGate(ModeKey, tokens, "sekrit", zap.NewNop())
		req := httptest.NewRequest("POST", "/claims", nil)
		rec := httptest.NewRecorder()

		g.RequireAPIKey(okHandler(t)).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("server key unset", func(t *testing.T) {
		g := NewGate(ModeKey, tokens, "", zap.NewNop())
		req := httptest.NewRequest("POST", "/claims", nil)
		req.Header.Set(APIKeyHeader, "anything")
		rec := httptest.NewRecorder()

		g.RequireAPIKey(okHandler(t)).ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500 when no key is configured", rec.Code)
		}
	})
}

func TestRequireWriter_Dispatch(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	t.Run("token mode rejects key header", func(t *testing.T) {
		g := NewGate(ModeToken, tokens, "sekrit", zap.NewNop())
		req := httptest.NewRequest("POST", "/posts", nil)
		req.Header.Set(APIKeyHeader, "sekrit")
		rec := httptest.NewRecorder()

		g.RequireWriter(okHandler(t)).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401: key header must not satisfy token mode", rec.Code)
		}
	})

	t.Run("key mode accepts key header", func(t *testing.T) {
		g := NewGate(ModeKey, tokens, "sekrit", zap.NewNop())
		req := httptest.NewRequest("POST", "/posts", nil)
		req.Header.Set(APIKeyHeader, "sekrit")
		rec := httptest.NewRecorder()

		g.RequireWriter(okHandler(t)).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestNewGate_ModeFallback(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	g := NewGate(Mode("bogus"), tokens, "", zap.NewNop())
	if g.Mode != ModeToken {
		t.Errorf("Mode = %q, want fallback to token", g.Mode)
	}
}

func TestCurrentIdentity_Absent(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id, ok := CurrentIdentity(req); ok || id != nil {
		t.Errorf("CurrentIdentity on bare request = (%v, %v), want (nil, false)", id, ok)
	}
}
