// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans user-supplied text before it is stored.
//
// Post descriptions and claim notes may carry simple formatting, so they
// go through the UGC policy (keeps <p>, <strong>, safe links; drops
// scripts and event handlers). Single-line fields like titles, names,
// and addresses are plain text and go through Strip, which removes
// markup entirely.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// Sanitize returns s with unsafe HTML removed, preserving the simple
// formatting tags the UGC policy allows.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugcPolicy.Sanitize(s)
}

// Strip returns s with all HTML markup removed.
func Strip(s string) string {
	if s == "" {
		return ""
	}
	return strictPolicy.Sanitize(s)
}
