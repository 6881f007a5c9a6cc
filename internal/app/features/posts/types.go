// internal/app/features/posts/types.go
package posts

import "time"

// createPostRequest is the body for POST /posts. Coordinates are
// pointers so that an explicit 0 is distinguishable from an absent
// field; `quantity`, `lat`, and `lng` are accepted aliases.
type createPostRequest struct {
	Title        string     `json:"title"`
	Servings     int        `json:"servings"`
	Quantity     int        `json:"quantity"`
	Description  string     `json:"description"`
	Latitude     *float64   `json:"latitude"`
	Lat          *float64   `json:"lat"`
	Longitude    *float64   `json:"longitude"`
	Lng          *float64   `json:"lng"`
	Address      string     `json:"address"`
	ContactName  string     `json:"contactName"`
	ContactPhone string     `json:"contactPhone"`
	ReadyUntil   *time.Time `json:"readyUntil"`
}

func (req *createPostRequest) servings() int {
	if req.Servings != 0 {
		return req.Servings
	}
	return req.Quantity
}

func (req *createPostRequest) coordinates() (lat, lng *float64) {
	lat = req.Latitude
	if lat == nil {
		lat = req.Lat
	}
	lng = req.Longitude
	if lng == nil {
		lng = req.Lng
	}
	return lat, lng
}
