// internal/app/features/claims/create.go
package claims

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	poststore "github.com/dalemusser/sharetable/internal/app/store/posts"
	"github.com/dalemusser/sharetable/internal/app/system/htmlsanitize"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/limits"
	"github.com/dalemusser/sharetable/internal/app/system/timeouts"
	"github.com/dalemusser/sharetable/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate handles POST /claims.
//
// The post is flipped open→claimed with a single conditional update
// before the claim record is written, so exactly one of N concurrent
// claimers wins; the rest see 409. A post that was never there is 404.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxBodySize)

	var req createClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "create claim: decode body", err, "Request body must be valid JSON.")
		return
	}

	raw := strings.TrimSpace(req.PostID)
	if raw == "" {
		httperr.Write(w, httperr.CodeInvalidInput, "postId is required")
		return
	}
	postID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		httperr.Write(w, httperr.CodeInvalidInput, "postId is not a valid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Posts.ClaimOpen(ctx, postID)
	switch err {
	case nil:
	case poststore.ErrNotFound:
		h.Metrics.RecordClaim("not_found")
		httperr.Write(w, httperr.CodeNotFound, "post not found")
		return
	case poststore.ErrNotOpen:
		h.Metrics.RecordClaim("conflict")
		httperr.Write(w, httperr.CodeConflict, "post is no longer open")
		return
	default:
		h.ErrLog.LogServerError(w, r, "create claim: claim post", err, "Unable to claim the post right now.")
		return
	}

	claim, err := h.Claims.Create(ctx, models.Claim{
		PostID:       postID,
		ClaimerName:  htmlsanitize.Strip(req.ClaimerName),
		ClaimerPhone: htmlsanitize.Strip(req.ClaimerPhone),
		Note:         htmlsanitize.Sanitize(req.Note),
	})
	if err != nil {
		// Hand the post back so someone else can claim it. The request
		// context may already be dead (that can be why the insert
		// failed), so the compensating update runs on its own deadline.
		rctx, rcancel := context.WithTimeout(context.Background(), timeouts.Short())
		defer rcancel()
		if rerr := h.Posts.Reopen(rctx, postID); rerr != nil {
			h.Log.Error("create claim: reopen after failed insert",
				zap.String("post_id", postID.Hex()),
				zap.Error(rerr))
		}
		h.ErrLog.LogServerError(w, r, "create claim: insert", err, "Unable to claim the post right now.")
		return
	}

	h.Metrics.RecordClaim("accepted")
	h.Log.Info("claim created",
		zap.String("claim_id", claim.ID.Hex()),
		zap.String("post_id", postID.Hex()))

	writeJSON(w, http.StatusCreated, createClaimResponse{Claim: claim, Post: *post})
}
