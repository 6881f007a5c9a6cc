// internal/app/features/accounts/signup.go
package accounts

import (
	"context"
	"encoding/json"
	"net/http"

	userstore "github.com/dalemusser/sharetable/internal/app/store/users"
	"github.com/dalemusser/sharetable/internal/app/system/authutil"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/limits"
	"github.com/dalemusser/sharetable/internal/app/system/normalize"
	"github.com/dalemusser/sharetable/internal/app/system/timeouts"
	"github.com/dalemusser/sharetable/internal/domain/models"
	"go.uber.org/zap"
)

// HandleSignup handles POST /auth/signup.
//
// Body: {"name": "...", "email": "...", "password": "..."}. Email and
// password are required; the email must not belong to an existing
// account. The password is bcrypt-hashed before storage and the hash is
// never serialized back out.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxBodySize)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "signup: decode body", err, "Request body must be valid JSON.")
		return
	}

	email := normalize.Email(req.Email)
	if email == "" {
		httperr.Write(w, httperr.CodeInvalidInput, "email is required")
		return
	}
	if req.Password == "" {
		httperr.Write(w, httperr.CodeInvalidInput, "password is required")
		return
	}
	if err := authutil.ValidatePassword(req.Password); err != nil {
		httperr.Write(w, httperr.CodeInvalidInput, authutil.PasswordRules())
		return
	}

	if ok, msg := h.Limiter.Check(r, email); !ok {
		httperr.Write(w, httperr.CodeRateLimited, msg)
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "signup: hash password", err, "Unable to create the account right now.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Users.Create(ctx, models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
	})
	if err == userstore.ErrDuplicateEmail {
		httperr.Write(w, httperr.CodeConflict, "an account with this email already exists")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "signup: create user", err, "Unable to create the account right now.")
		return
	}

	h.Log.Info("account created",
		zap.String("user_id", created.ID.Hex()))

	writeJSON(w, http.StatusOK, signupResponse{
		Message: "signup successful",
		User:    created,
	})
}
