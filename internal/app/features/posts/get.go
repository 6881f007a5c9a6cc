// internal/app/features/posts/get.go
package posts

import (
	"context"
	"net/http"

	poststore "github.com/dalemusser/sharetable/internal/app/store/posts"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleGet handles GET /posts/{id}. An unparseable id is reported the
// same way as an absent document.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, httperr.CodeNotFound, "post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Posts.GetByID(ctx, oid)
	if err == poststore.ErrNotFound {
		httperr.Write(w, httperr.CodeNotFound, "post not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get post: query", err, "Unable to load the post right now.")
		return
	}

	writeJSON(w, http.StatusOK, post)
}
