// ABOUTME: Website domain model represents a generated marketing site owned by an account
// ABOUTME: Provides construction with validation and the optional deployment result

package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeploymentResult holds the identifiers returned by the hosting provider
// after a successful deploy. A Website without one is still valid and is
// served from the internal preview route instead.
type DeploymentResult struct {
	// LiveURL is the public URL of the deployed site
	LiveURL string

	// DeployID is the hosting provider's deploy identifier
	DeployID string

	// SiteID is the hosting provider's site identifier
	SiteID string

	// AdminURL is the provider dashboard URL for the site
	AdminURL string
}

// Website is the persisted aggregate produced by a successful pipeline run.
// It is created once and mutated afterwards only through counter increments.
type Website struct {
	// ID is the unique identifier (UUID) for the website
	ID string

	// AccountID references the owning account
	AccountID string

	// Slug is the unique URL-safe identifier derived from the title
	Slug string

	// Product is the summary the site was generated from
	Product ProductSummary

	// HTML is the complete generated document
	HTML string

	// Deployment holds the hosting result, nil when the site was not deployed
	Deployment *DeploymentResult

	// Views counts preview/live page views
	Views int

	// Clicks counts affiliate link clicks
	Clicks int

	// IsActive indicates whether the site is currently served
	IsActive bool

	// CreatedAt is when the website was created
	CreatedAt time.Time

	// UpdatedAt is when the website was last modified
	UpdatedAt time.Time
}

// NewWebsite creates a Website instance with validation. Counters start at
// zero and the site starts active.
func NewWebsite(accountID, slug string, product ProductSummary, html string) (*Website, error) {
	if accountID == "" {
		return nil, errors.New("account ID cannot be empty")
	}
	if slug == "" {
		return nil, errors.New("slug cannot be empty")
	}
	doc := strings.ToLower(strings.TrimSpace(html))
	if !strings.HasPrefix(doc, "<!doctype") && !strings.HasPrefix(doc, "<html") {
		return nil, errors.New("html must be a complete document")
	}

	now := time.Now()
	return &Website{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Slug:      slug,
		Product:   product,
		HTML:      html,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// LiveURL resolves the public URL for the website: the deployment URL when
// present, otherwise the internally-routed preview URL under baseURL.
func (w *Website) LiveURL(baseURL string) string {
	if w.Deployment != nil && w.Deployment.LiveURL != "" {
		return w.Deployment.LiveURL
	}
	return strings.TrimRight(baseURL, "/") + "/preview/" + w.Slug
}
