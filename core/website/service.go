// ABOUTME: Website orchestrator running the full generation pipeline for an account
// ABOUTME: Coordinates analysis, synthesis, deployment, persistence, and quota reservation

package website

import (
	"context"
	"net/url"
	"time"

	"sitegen-api/core/domain"
	coreerrors "sitegen-api/core/errors"
	"sitegen-api/core/interfaces"
	"sitegen-api/pkg/utils/slug"
)

// CreationResult is what a successful pipeline run hands back to the caller.
type CreationResult struct {
	// Website is the persisted aggregate
	Website *domain.Website

	// LiveURL is where the site is reachable (deployment URL or preview route)
	LiveURL string

	// RemainingWebsites is how many more sites the account may create
	RemainingWebsites int
}

// WebsiteService orchestrates website generation and retrieval
type WebsiteService struct {
	deps      interfaces.Dependencies
	analyzer  interfaces.PageAnalyzer
	synth     interfaces.ContentSynthesizer
	publisher interfaces.DeploymentPublisher
	gate      interfaces.QuotaGate
	websites  interfaces.WebsiteStorage
	accounts  interfaces.AccountStorage
	baseURL   string
}

// NewWebsiteService creates a new website service
func NewWebsiteService(
	deps interfaces.Dependencies,
	analyzer interfaces.PageAnalyzer,
	synth interfaces.ContentSynthesizer,
	publisher interfaces.DeploymentPublisher,
	gate interfaces.QuotaGate,
	websites interfaces.WebsiteStorage,
	accounts interfaces.AccountStorage,
	baseURL string,
) *WebsiteService {
	return &WebsiteService{
		deps:      deps,
		analyzer:  analyzer,
		synth:     synth,
		publisher: publisher,
		gate:      gate,
		websites:  websites,
		accounts:  accounts,
		baseURL:   baseURL,
	}
}

// Create runs the full generation pipeline for account against productURL.
//
// The website record is inserted before the quota slot is reserved; when the
// reservation fails the record is deleted again, so a rejected request never
// leaves a website behind. The reservation itself is conditional in storage,
// which makes the limit hold under concurrent requests even though the
// admission check here reads a possibly stale counter.
func (s *WebsiteService) Create(ctx context.Context, account *domain.Account, productURL string) (*CreationResult, error) {
	if err := validateProductURL(productURL); err != nil {
		return nil, err
	}

	decision := s.gate.Admit(account)
	if !decision.Allowed {
		return nil, &coreerrors.QuotaExceededError{
			Limit:        decision.Limit,
			CurrentCount: decision.CurrentCount,
		}
	}

	summary := s.analyzer.Analyze(ctx, productURL)
	html := s.synth.Synthesize(ctx, summary)
	siteSlug := slug.Make(summary.Title, time.Now())

	deployment := s.publisher.Publish(ctx, html, siteSlug)

	site, err := domain.NewWebsite(account.ID, siteSlug, summary, html)
	if err != nil {
		return nil, coreerrors.WrapError(err, "building website record")
	}
	site.Deployment = deployment

	if err := s.websites.InsertWebsite(ctx, site); err != nil {
		return nil, coreerrors.WrapError(err, "persisting website")
	}

	newCount, err := s.accounts.ReserveWebsiteSlot(ctx, account.ID, decision.Limit)
	if err != nil {
		s.rollbackWebsite(ctx, site.ID)
		return nil, err
	}

	s.logCreated(site, newCount)

	return &CreationResult{
		Website:           site,
		LiveURL:           site.LiveURL(s.baseURL),
		RemainingWebsites: decision.Limit - newCount,
	}, nil
}

// GetByID retrieves a website owned by account. A website belonging to a
// different account is reported as not found rather than forbidden, so the
// response does not leak which IDs exist.
func (s *WebsiteService) GetByID(ctx context.Context, account *domain.Account, id string) (*domain.Website, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}

	site, err := s.websites.GetWebsiteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if site.AccountID != account.ID {
		return nil, &coreerrors.NotFoundError{Resource: "website", ID: id}
	}

	return site, nil
}

// GetBySlug retrieves a website for public preview serving and records the
// view. The counter increment is best-effort; a failed increment never
// blocks serving the page.
func (s *WebsiteService) GetBySlug(ctx context.Context, siteSlug string) (*domain.Website, error) {
	if siteSlug == "" {
		return nil, &coreerrors.ValidationError{Field: "slug", Message: "cannot be empty"}
	}

	site, err := s.websites.GetWebsiteBySlug(ctx, siteSlug)
	if err != nil {
		return nil, err
	}

	if err := s.websites.IncrementViews(ctx, site.ID); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("view count increment failed", map[string]interface{}{
				"website_id": site.ID,
				"error":      err.Error(),
			})
		}
	}

	return site, nil
}

// LiveURL resolves the public URL for a website using the configured base URL.
func (s *WebsiteService) LiveURL(site *domain.Website) string {
	return site.LiveURL(s.baseURL)
}

// rollbackWebsite removes a website whose quota reservation failed
func (s *WebsiteService) rollbackWebsite(ctx context.Context, id string) {
	if err := s.websites.DeleteWebsite(ctx, id); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Error("website rollback failed", map[string]interface{}{
			"website_id": id,
			"error":      err.Error(),
		})
	}
}

func (s *WebsiteService) logCreated(site *domain.Website, newCount int) {
	if s.deps.Logger == nil {
		return
	}
	fields := map[string]interface{}{
		"website_id": site.ID,
		"slug":       site.Slug,
		"account_id": site.AccountID,
		"usage":      newCount,
		"deployed":   site.Deployment != nil,
	}
	s.deps.Logger.Info("website created", fields)
}

// validateProductURL rejects empty and non-absolute product URLs before any
// pipeline work starts.
func validateProductURL(productURL string) error {
	if productURL == "" {
		return &coreerrors.ValidationError{Field: "productUrl", Message: "cannot be empty"}
	}

	parsed, err := url.Parse(productURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return &coreerrors.ValidationError{Field: "productUrl", Message: "must be an absolute http or https URL"}
	}

	return nil
}
