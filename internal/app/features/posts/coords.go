// internal/app/features/posts/coords.go
package posts

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	errBadLatitude  = errors.New("latitude must be a number between -90 and 90")
	errBadLongitude = errors.New("longitude must be a number between -180 and 180")
)

// checkCoordinates validates a latitude/longitude pair. Zero is a valid
// value for either axis; only NaN, infinities, and out-of-range values
// are rejected.
func checkCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return errBadLatitude
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return errBadLongitude
	}
	return nil
}

// parseCoordinate parses a required query-string coordinate value.
func parseCoordinate(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("value is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
