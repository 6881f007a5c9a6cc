// internal/app/features/accounts/login.go
package accounts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/sharetable/internal/app/system/authutil"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/limits"
	"github.com/dalemusser/sharetable/internal/app/system/normalize"
	"github.com/dalemusser/sharetable/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Unknown email and wrong password must be indistinguishable to the
// caller, so every credential failure renders this exact message.
const badCredentialsMsg = "invalid email or password"

// HandleLogin handles POST /auth/login.
//
// Body: {"email": "...", "password": "..."}. On success: 200 with a
// signed bearer token and the account record. Attempts are
// rate-limited per IP and per email.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxBodySize)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "login: decode body", err, "Request body must be valid JSON.")
		return
	}

	email := normalize.Email(req.Email)
	if email == "" || req.Password == "" {
		httperr.Write(w, httperr.CodeUnauthenticated, badCredentialsMsg)
		return
	}

	if ok, msg := h.Limiter.Check(r, email); !ok {
		httperr.Write(w, httperr.CodeRateLimited, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		httperr.Write(w, httperr.CodeUnauthenticated, badCredentialsMsg)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "login: load user", err, "Unable to sign in right now.")
		return
	}

	if !authutil.CheckPassword(req.Password, u.PasswordHash) {
		h.Log.Warn("login failed: wrong password",
			zap.String("user_id", u.ID.Hex()))
		httperr.Write(w, httperr.CodeUnauthenticated, badCredentialsMsg)
		return
	}

	tok, err := h.Tokens.Issue(u.ID.Hex())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "login: issue token", err, "Unable to sign in right now.")
		return
	}

	// A successful login clears this email's failure window.
	h.Limiter.ResetEmail(email)

	h.Log.Info("login succeeded",
		zap.String("user_id", u.ID.Hex()))

	writeJSON(w, http.StatusOK, loginResponse{
		Token: tok,
		User:  *u,
	})
}
