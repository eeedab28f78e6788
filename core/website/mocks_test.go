package website

import (
	"context"

	"sitegen-api/core/domain"
	coreerrors "sitegen-api/core/errors"
	"sitegen-api/core/interfaces"
)

// mockAnalyzer is a mock implementation of the PageAnalyzer interface
type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, url string) domain.ProductSummary
}

func (m *mockAnalyzer) Analyze(ctx context.Context, url string) domain.ProductSummary {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, url)
	}
	return domain.FallbackSummary(url)
}

// mockSynthesizer is a mock implementation of the ContentSynthesizer interface
type mockSynthesizer struct {
	synthesizeFunc func(ctx context.Context, summary domain.ProductSummary) string
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, summary domain.ProductSummary) string {
	if m.synthesizeFunc != nil {
		return m.synthesizeFunc(ctx, summary)
	}
	return "<!DOCTYPE html><html><body>" + summary.Title + "</body></html>"
}

// mockPublisher is a mock implementation of the DeploymentPublisher interface
type mockPublisher struct {
	publishFunc func(ctx context.Context, html string, name string) *domain.DeploymentResult
}

func (m *mockPublisher) Publish(ctx context.Context, html string, name string) *domain.DeploymentResult {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, html, name)
	}
	return nil
}

// mockGate is a mock implementation of the QuotaGate interface
type mockGate struct {
	admitFunc func(account *domain.Account) interfaces.QuotaDecision
}

func (m *mockGate) Admit(account *domain.Account) interfaces.QuotaDecision {
	if m.admitFunc != nil {
		return m.admitFunc(account)
	}
	return interfaces.QuotaDecision{Allowed: true, Limit: 3, CurrentCount: account.WebsitesCreated}
}

// mockWebsiteStorage is a mock implementation of the WebsiteStorage interface
type mockWebsiteStorage struct {
	insertWebsiteFunc    func(ctx context.Context, site *domain.Website) error
	getWebsiteByIDFunc   func(ctx context.Context, id string) (*domain.Website, error)
	getWebsiteBySlugFunc func(ctx context.Context, slug string) (*domain.Website, error)
	deleteWebsiteFunc    func(ctx context.Context, id string) error
	incrementViewsFunc   func(ctx context.Context, id string) error
}

func (m *mockWebsiteStorage) InsertWebsite(ctx context.Context, site *domain.Website) error {
	if m.insertWebsiteFunc != nil {
		return m.insertWebsiteFunc(ctx, site)
	}
	return nil
}

func (m *mockWebsiteStorage) GetWebsiteByID(ctx context.Context, id string) (*domain.Website, error) {
	if m.getWebsiteByIDFunc != nil {
		return m.getWebsiteByIDFunc(ctx, id)
	}
	return nil, &coreerrors.NotFoundError{Resource: "website", ID: id}
}

func (m *mockWebsiteStorage) GetWebsiteBySlug(ctx context.Context, slug string) (*domain.Website, error) {
	if m.getWebsiteBySlugFunc != nil {
		return m.getWebsiteBySlugFunc(ctx, slug)
	}
	return nil, &coreerrors.NotFoundError{Resource: "website", ID: slug}
}

func (m *mockWebsiteStorage) DeleteWebsite(ctx context.Context, id string) error {
	if m.deleteWebsiteFunc != nil {
		return m.deleteWebsiteFunc(ctx, id)
	}
	return nil
}

func (m *mockWebsiteStorage) IncrementViews(ctx context.Context, id string) error {
	if m.incrementViewsFunc != nil {
		return m.incrementViewsFunc(ctx, id)
	}
	return nil
}

func (m *mockWebsiteStorage) IncrementClicks(ctx context.Context, id string) error {
	return nil
}

// mockAccountStorage is a mock implementation of the AccountStorage interface
type mockAccountStorage struct {
	reserveWebsiteSlotFunc func(ctx context.Context, accountID string, limit int) (int, error)
}

func (m *mockAccountStorage) GetAccountByToken(ctx context.Context, token string) (*domain.Account, error) {
	return nil, nil
}

func (m *mockAccountStorage) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	return nil, nil
}

func (m *mockAccountStorage) CreateAccount(ctx context.Context, account *domain.Account, token string) error {
	return nil
}

func (m *mockAccountStorage) ReserveWebsiteSlot(ctx context.Context, accountID string, limit int) (int, error) {
	if m.reserveWebsiteSlotFunc != nil {
		return m.reserveWebsiteSlotFunc(ctx, accountID, limit)
	}
	return 1, nil
}
