// internal/domain/models/statuses.go
package models

// Canonical post status identifiers.
//
// These values are stored in the database in the Post.Status field and are
// used throughout the application as stable keys. A post starts open, is
// flipped to claimed by claim creation, and may later be marked completed
// or expired by out-of-band tooling.
const (
	PostStatusOpen      = "open"
	PostStatusClaimed   = "claimed"
	PostStatusCompleted = "completed"
	PostStatusExpired   = "expired"
)

// PostStatuses is the full set of allowed post status identifiers.
//
// This slice is the single source of truth for validation and schema
// enums. Any new status must be added here to be considered valid.
var PostStatuses = []string{
	PostStatusOpen,
	PostStatusClaimed,
	PostStatusCompleted,
	PostStatusExpired,
}

// IsValidPostStatus reports whether s is a known post status.
func IsValidPostStatus(s string) bool {
	for _, v := range PostStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Canonical claim status identifiers, stored in Claim.Status.
const (
	ClaimStatusAccepted  = "accepted"
	ClaimStatusPicked    = "picked"
	ClaimStatusCancelled = "cancelled"
)

// ClaimStatuses is the full set of allowed claim status identifiers.
var ClaimStatuses = []string{
	ClaimStatusAccepted,
	ClaimStatusPicked,
	ClaimStatusCancelled,
}

// IsValidClaimStatus reports whether s is a known claim status.
func IsValidClaimStatus(s string) bool {
	for _, v := range ClaimStatuses {
		if s == v {
			return true
		}
	}
	return false
}
