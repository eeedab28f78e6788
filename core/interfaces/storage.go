// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for website records, accounts, and quota reservation

package interfaces

import (
	"context"

	"sitegen-api/core/domain"
)

// WebsiteStorage defines the interface for website persistence.
type WebsiteStorage interface {
	// InsertWebsite persists a newly created website record.
	InsertWebsite(ctx context.Context, site *domain.Website) error

	// GetWebsiteByID retrieves a website by its ID.
	GetWebsiteByID(ctx context.Context, id string) (*domain.Website, error)

	// GetWebsiteBySlug retrieves a website by its slug.
	GetWebsiteBySlug(ctx context.Context, slug string) (*domain.Website, error)

	// DeleteWebsite removes a website record. Used to roll back a persisted
	// record when the quota slot reservation that follows it fails.
	DeleteWebsite(ctx context.Context, id string) error

	// IncrementViews atomically increments the view counter for a website.
	IncrementViews(ctx context.Context, id string) error

	// IncrementClicks atomically increments the click counter for a website.
	IncrementClicks(ctx context.Context, id string) error
}

// AccountStorage defines the interface for account lookup and quota bookkeeping.
type AccountStorage interface {
	// GetAccountByToken resolves an API token to its account.
	GetAccountByToken(ctx context.Context, token string) (*domain.Account, error)

	// GetAccountByID retrieves an account by its ID.
	GetAccountByID(ctx context.Context, id string) (*domain.Account, error)

	// CreateAccount persists a new account with its API token.
	CreateAccount(ctx context.Context, account *domain.Account, token string) error

	// ReserveWebsiteSlot atomically increments the account's usage counter,
	// failing when the increment would exceed limit. Returns the counter
	// value after a successful reservation. Two concurrent reservations for
	// the last slot can never both succeed.
	ReserveWebsiteSlot(ctx context.Context, accountID string, limit int) (int, error)
}
