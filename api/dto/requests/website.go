// ABOUTME: Request DTOs for website-related API endpoints
// ABOUTME: Field-level validation runs in the service so absence maps to a 400

package requests

// CreateWebsiteRequest represents the request body for creating a website.
// ProductURL is intentionally not marked required: presence is validated by
// the website service so a missing field yields a 400 rather than a schema
// validation failure.
type CreateWebsiteRequest struct {
	// ProductURL is the merchant product page to build a site for
	ProductURL string `json:"productUrl,omitempty" doc:"Merchant product page URL to generate a website from"`
}
