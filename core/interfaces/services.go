// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the pipeline stages used throughout the application

package interfaces

import (
	"context"

	"sitegen-api/core/domain"
)

// ImageSourcer resolves a text query to sourced images. Implementations are
// total: they always return exactly count usable assets, substituting
// placeholders when the provider is unavailable.
type ImageSourcer interface {
	FetchImages(ctx context.Context, query string, count int) []domain.ImageAsset
}

// PageAnalyzer extracts a best-effort product summary from a remote URL.
// Implementations are total: any fetch or parse failure yields the generic
// fallback summary with the original URL preserved.
type PageAnalyzer interface {
	Analyze(ctx context.Context, url string) domain.ProductSummary
}

// ContentSynthesizer turns a product summary into a complete marketing page
// document. Implementations are total: when generation fails or produces an
// unusable document, a deterministic template fills in.
type ContentSynthesizer interface {
	Synthesize(ctx context.Context, summary domain.ProductSummary) string
}

// DeploymentPublisher pushes a finished document to a hosting target.
// Returns nil (never an error) when hosting is unconfigured or the deploy
// fails; a nil result is a supported outcome, not a pipeline failure.
type DeploymentPublisher interface {
	Publish(ctx context.Context, html string, name string) *domain.DeploymentResult
}

// QuotaDecision is the result of an admission check.
type QuotaDecision struct {
	// Allowed indicates whether the account may create another website
	Allowed bool

	// Limit is the account plan's website ceiling
	Limit int

	// CurrentCount is the account's recorded usage at admission time
	CurrentCount int
}

// QuotaGate decides whether an account may create another website. The
// decision is advisory; persistence enforces the limit atomically.
type QuotaGate interface {
	Admit(account *domain.Account) QuotaDecision
}

// IdentityResolver resolves an Authorization header value to an account.
type IdentityResolver interface {
	Resolve(ctx context.Context, authorization string) (*domain.Account, error)
}
