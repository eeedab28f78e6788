// ABOUTME: Response DTOs for website-related API endpoints
// ABOUTME: Public views of the website aggregate, never exposing the raw document

package responses

import "time"

// ProductResponse is the extracted product summary in API responses
type ProductResponse struct {
	// Title is the product name
	Title string `json:"title" doc:"Product title"`

	// Description is the short product pitch
	Description string `json:"description" doc:"Product description"`

	// Price is the display price string
	Price string `json:"price" doc:"Display price"`

	// ProductURL is the merchant page the summary came from
	ProductURL string `json:"productUrl" doc:"Original merchant product page URL"`
}

// WebsiteResponse is the public view of a website record
type WebsiteResponse struct {
	// ID is the website's unique identifier
	ID string `json:"id" doc:"Website identifier"`

	// Slug is the URL-safe identifier used for preview routing
	Slug string `json:"slug" doc:"URL-safe website slug"`

	// Product is the summary the site was generated from
	Product ProductResponse `json:"product"`

	// LiveURL is where the site is reachable
	LiveURL string `json:"liveUrl" doc:"Public URL of the site (deployment or preview route)"`

	// Deployed indicates whether the site was pushed to the hosting provider
	Deployed bool `json:"deployed" doc:"Whether the site is hosted externally"`

	// Views counts recorded page views
	Views int `json:"views" doc:"Recorded page views"`

	// Clicks counts recorded affiliate link clicks
	Clicks int `json:"clicks" doc:"Recorded affiliate link clicks"`

	// IsActive indicates whether the site is currently served
	IsActive bool `json:"isActive" doc:"Whether the site is currently served"`

	// CreatedAt is when the website was created
	CreatedAt time.Time `json:"createdAt" doc:"Creation timestamp"`
}

// CreateWebsiteResponse is the response for a successful website creation
type CreateWebsiteResponse struct {
	WebsiteResponse

	// RemainingWebsites is how many more sites the account may create
	RemainingWebsites int `json:"remainingWebsites" doc:"Remaining website creations under the account's plan"`
}
