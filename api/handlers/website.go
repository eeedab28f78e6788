// ABOUTME: Website handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for website creation, retrieval, and preview serving

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"sitegen-api/api/dto/mappers"
	"sitegen-api/api/dto/requests"
	"sitegen-api/api/dto/responses"
	"sitegen-api/core/domain"
	"sitegen-api/core/interfaces"
	"sitegen-api/core/website"
)

// WebsiteService interface defines the methods needed from the website service
type WebsiteService interface {
	Create(ctx context.Context, account *domain.Account, productURL string) (*website.CreationResult, error)
	GetByID(ctx context.Context, account *domain.Account, id string) (*domain.Website, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Website, error)
}

// WebsiteHandler handles website-related HTTP requests
type WebsiteHandler struct {
	websiteService WebsiteService
	identity       interfaces.IdentityResolver
	baseURL        string
}

// NewWebsiteHandler creates a new website handler
func NewWebsiteHandler(websiteService WebsiteService, identity interfaces.IdentityResolver, baseURL string) *WebsiteHandler {
	return &WebsiteHandler{
		websiteService: websiteService,
		identity:       identity,
		baseURL:        baseURL,
	}
}

// RegisterRoutes registers all website-related routes
func (h *WebsiteHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createWebsite",
		Method:      http.MethodPost,
		Path:        "/websites",
		Summary:     "Generate a website from a product URL",
		Description: "Runs the full generation pipeline: analyzes the product page, sources images, synthesizes the marketing page, deploys it when hosting is configured, and persists the record.",
		Tags:        []string{"Websites"},
	}, h.CreateWebsite)

	huma.Register(api, huma.Operation{
		OperationID: "getWebsite",
		Method:      http.MethodGet,
		Path:        "/websites/{id}",
		Summary:     "Get a website by ID",
		Description: "Returns the public view of a website owned by the authenticated account",
		Tags:        []string{"Websites"},
	}, h.GetWebsite)

	huma.Register(api, huma.Operation{
		OperationID: "previewWebsite",
		Method:      http.MethodGet,
		Path:        "/preview/{slug}",
		Summary:     "Serve a generated website",
		Description: "Serves the generated page for sites without an external deployment",
		Tags:        []string{"Websites"},
	}, h.PreviewWebsite)
}

// CreateWebsiteInput defines the input for the CreateWebsite operation
type CreateWebsiteInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token identifying the account"`
	Body          requests.CreateWebsiteRequest
}

// CreateWebsiteOutput defines the output for the CreateWebsite operation
type CreateWebsiteOutput struct {
	Body responses.CreateWebsiteResponse
}

// CreateWebsite handles the POST /websites endpoint
func (h *WebsiteHandler) CreateWebsite(ctx context.Context, input *CreateWebsiteInput) (*CreateWebsiteOutput, error) {
	account, err := h.identity.Resolve(ctx, input.Authorization)
	if err != nil {
		return nil, toHumaError(err)
	}

	result, err := h.websiteService.Create(ctx, account, input.Body.ProductURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateWebsiteOutput{
		Body: mappers.ToCreateWebsiteResponse(result.Website, result.LiveURL, result.RemainingWebsites),
	}, nil
}

// GetWebsiteInput defines the input for the GetWebsite operation
type GetWebsiteInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token identifying the account"`
	ID            string `path:"id" doc:"Website identifier"`
}

// GetWebsiteOutput defines the output for the GetWebsite operation
type GetWebsiteOutput struct {
	Body responses.WebsiteResponse
}

// GetWebsite handles the GET /websites/{id} endpoint
func (h *WebsiteHandler) GetWebsite(ctx context.Context, input *GetWebsiteInput) (*GetWebsiteOutput, error) {
	account, err := h.identity.Resolve(ctx, input.Authorization)
	if err != nil {
		return nil, toHumaError(err)
	}

	site, err := h.websiteService.GetByID(ctx, account, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetWebsiteOutput{
		Body: mappers.ToWebsiteResponse(site, h.baseURL),
	}, nil
}

// PreviewWebsiteInput defines the input for the PreviewWebsite operation
type PreviewWebsiteInput struct {
	Slug string `path:"slug" doc:"Website slug"`
}

// PreviewWebsiteOutput defines the output for the PreviewWebsite operation.
// The body is the raw generated document, served as HTML.
type PreviewWebsiteOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// PreviewWebsite handles the GET /preview/{slug} endpoint
func (h *WebsiteHandler) PreviewWebsite(ctx context.Context, input *PreviewWebsiteInput) (*PreviewWebsiteOutput, error) {
	site, err := h.websiteService.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PreviewWebsiteOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(site.HTML),
	}, nil
}
