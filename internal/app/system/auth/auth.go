// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/token"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-Identity helper                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// Identity is what the token gate injects into r.Context().
// Only the user id is carried; handlers look up anything else they need.
type Identity struct {
	UserID string
}

type ctxKey string

const currentIdentityKey ctxKey = "currentIdentity"

// CurrentIdentity returns the identity & “found?” flag.
func CurrentIdentity(r *http.Request) (*Identity, bool) {
	id, ok := r.Context().Value(currentIdentityKey).(*Identity)
	return id, ok
}

func withIdentity(r *http.Request, id *Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentIdentityKey, id))
}

// WithTestIdentity injects an identity directly into the request context,
// bypassing the token gate. For handler tests only.
func WithTestIdentity(r *http.Request, id *Identity) *http.Request {
	return withIdentity(r, id)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Gate                                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// Mode selects which strategy guards post creation.
type Mode string

const (
	// ModeToken guards writes with a bearer JWT (signed-in users).
	ModeToken Mode = "token"
	// ModeKey guards writes with the static X-API-Key header.
	ModeKey Mode = "key"
)

// APIKeyHeader is the request header checked by the static-key strategy.
const APIKeyHeader = "X-API-Key"

// Gate holds both authentication strategies. RequireUser and
// RequireAPIKey are fixed; RequireWriter dispatches between them
// according to the configured mode, so deployments can choose how post
// creation is guarded without touching the routes.
type Gate struct {
	Tokens *token.Manager
	APIKey string
	Mode   Mode
	Log    *zap.Logger
}

// NewGate constructs a Gate. tokens must be non-nil; apiKey may be empty,
// in which case key-gated requests fail with a misconfiguration error at
// request time rather than at startup.
func NewGate(mode Mode, tokens *token.Manager, apiKey string, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode != ModeKey {
		mode = ModeToken
	}
	return &Gate{Tokens: tokens, APIKey: apiKey, Mode: mode, Log: logger}
}

// RequireUser admits requests carrying a valid bearer token and injects
// the token's identity into the request context. Missing, malformed,
// tampered, and expired tokens all produce the identical 401 body.
func (g *Gate) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			httperr.Write(w, httperr.CodeUnauthenticated, "authentication required")
			return
		}

		userID, err := g.Tokens.Verify(raw)
		if err != nil {
			httperr.Write(w, httperr.CodeUnauthenticated, "authentication required")
			return
		}

		next.ServeHTTP(w, withIdentity(r, &Identity{UserID: userID}))
	})
}

// RequireAPIKey admits requests whose X-API-Key header exactly matches
// the configured key. No identity is established. If the server has no
// key configured the request fails 500, not 401: the caller may be
// holding a perfectly good key the operator never installed.
func (g *Gate) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.APIKey == "" {
			g.Log.Error("api key gate hit but no key configured",
				zap.String("path", r.URL.Path))
			httperr.Write(w, httperr.CodeServerMisconfigured, "server is not configured for this operation")
			return
		}

		supplied := r.Header.Get(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(g.APIKey)) != 1 {
			httperr.Write(w, httperr.CodeUnauthenticated, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireWriter guards post creation with whichever strategy the
// deployment configured.
func (g *Gate) RequireWriter(next http.Handler) http.Handler {
	if g.Mode == ModeKey {
		return g.RequireAPIKey(next)
	}
	return g.RequireUser(next)
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// Returns "" when the header is absent or shaped differently.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}
