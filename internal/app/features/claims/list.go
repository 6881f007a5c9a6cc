// internal/app/features/claims/list.go
package claims

import (
	"context"
	"net/http"
	"strings"

	poststore "github.com/dalemusser/sharetable/internal/app/store/posts"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/timeouts"
	"github.com/dalemusser/sharetable/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleList handles GET /claims?post=<id>: the claims recorded against
// one post, newest first. The post must exist; an unclaimed post yields
// an empty array, not null.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("post"))
	if raw == "" {
		httperr.Write(w, httperr.CodeInvalidInput, "post query parameter is required")
		return
	}
	postID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		httperr.Write(w, httperr.CodeInvalidInput, "post is not a valid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Posts.GetByID(ctx, postID); err != nil {
		if err == poststore.ErrNotFound {
			httperr.Write(w, httperr.CodeNotFound, "post not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "list claims: load post", err, "Unable to load claims right now.")
		return
	}

	claims, err := h.Claims.ListByPost(ctx, postID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list claims: query", err, "Unable to load claims right now.")
		return
	}
	if claims == nil {
		claims = []models.Claim{}
	}

	writeJSON(w, http.StatusOK, claims)
}
