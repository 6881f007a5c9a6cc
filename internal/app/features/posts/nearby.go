// internal/app/features/posts/nearby.go
package posts

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/limits"
	"github.com/dalemusser/sharetable/internal/app/system/timeouts"
	"github.com/dalemusser/sharetable/internal/domain/models"
)

// HandleNearby handles GET /posts/nearby?lat=..&lng=..&km=..
//
// lat and lng are required; km defaults to 10 and is capped. Only open
// posts are returned, nearest first.
func (h *Handler) HandleNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := parseCoordinate(q.Get("lat"))
	if err != nil {
		httperr.Write(w, httperr.CodeInvalidInput, "lat must be a number")
		return
	}
	lng, err := parseCoordinate(q.Get("lng"))
	if err != nil {
		httperr.Write(w, httperr.CodeInvalidInput, "lng must be a number")
		return
	}
	if err := checkCoordinates(lat, lng); err != nil {
		httperr.Write(w, httperr.CodeInvalidInput, err.Error())
		return
	}

	km := limits.DefaultRadiusKm
	if raw := strings.TrimSpace(q.Get("km")); raw != "" {
		km, err = strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
			httperr.Write(w, httperr.CodeInvalidInput, "km must be a non-negative number")
			return
		}
	}
	if km > limits.MaxRadiusKm {
		km = limits.MaxRadiusKm
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	posts, err := h.Posts.Nearby(ctx, lng, lat, km*1000, limits.PageSize())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "nearby posts: query", err, "Unable to search posts right now.")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	writeJSON(w, http.StatusOK, posts)
}
