// internal/app/features/claims/types.go
package claims

import "github.com/dalemusser/sharetable/internal/domain/models"

// createClaimRequest is the body for POST /claims.
type createClaimRequest struct {
	PostID       string `json:"postId"`
	ClaimerName  string `json:"claimerName"`
	ClaimerPhone string `json:"claimerPhone"`
	Note         string `json:"note"`
}

// createClaimResponse pairs the stored claim with the post it took.
type createClaimResponse struct {
	Claim models.Claim `json:"claim"`
	Post  models.Post  `json:"post"`
}
