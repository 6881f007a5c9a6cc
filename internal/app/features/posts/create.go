// internal/app/features/posts/create.go
package posts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/sharetable/internal/app/system/auth"
	"github.com/dalemusser/sharetable/internal/app/system/htmlsanitize"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/limits"
	"github.com/dalemusser/sharetable/internal/app/system/normalize"
	"github.com/dalemusser/sharetable/internal/app/system/timeouts"
	"github.com/dalemusser/sharetable/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate handles POST /posts.
//
// Title, servings (alias quantity), latitude, and longitude are
// required; zero is a legal coordinate on either axis. Free-text fields
// are sanitized before storage. On success: 201 with the stored record.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxBodySize)

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "create post: decode body", err, "Request body must be valid JSON.")
		return
	}

	title := normalize.Name(htmlsanitize.Strip(req.Title))
	if title == "" {
		httperr.Write(w, httperr.CodeInvalidInput, "title is required")
		return
	}

	servings := req.servings()
	if servings < 1 {
		httperr.Write(w, httperr.CodeInvalidInput, "servings must be at least 1")
		return
	}

	latPtr, lngPtr := req.coordinates()
	if latPtr == nil || lngPtr == nil {
		httperr.Write(w, httperr.CodeInvalidInput, "latitude and longitude are required")
		return
	}
	if err := checkCoordinates(*latPtr, *lngPtr); err != nil {
		httperr.Write(w, httperr.CodeInvalidInput, err.Error())
		return
	}

	post := models.Post{
		Title:        title,
		Servings:     servings,
		Description:  htmlsanitize.Sanitize(req.Description),
		Location:     models.NewGeoPoint(*lngPtr, *latPtr),
		Address:      htmlsanitize.Strip(req.Address),
		ContactName:  htmlsanitize.Strip(req.ContactName),
		ContactPhone: normalize.Phone(htmlsanitize.Strip(req.ContactPhone)),
		ReadyUntil:   req.ReadyUntil,
	}

	// When the token gate produced an identity, record the author.
	if id, ok := auth.CurrentIdentity(r); ok {
		if oid, err := primitive.ObjectIDFromHex(id.UserID); err == nil {
			post.CreatedBy = &oid
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Posts.Create(ctx, post)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create post: insert", err, "Unable to share the post right now.")
		return
	}

	h.Metrics.RecordPostCreated()
	h.Log.Info("post created",
		zap.String("post_id", created.ID.Hex()),
		zap.String("title", created.Title))

	writeJSON(w, http.StatusCreated, created)
}
