// internal/app/features/posts/list.go
package posts

import (
	"context"
	"net/http"

	"github.com/dalemusser/sharetable/internal/app/system/limits"
	"github.com/dalemusser/sharetable/internal/app/system/timeouts"
	"github.com/dalemusser/sharetable/internal/domain/models"
)

// HandleList handles GET /posts: the newest posts, capped at the page
// limit, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	posts, err := h.Posts.Recent(ctx, limits.PageSize())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list posts: query", err, "Unable to load posts right now.")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	writeJSON(w, http.StatusOK, posts)
}
