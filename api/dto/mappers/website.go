// ABOUTME: Mappers converting website domain models to response DTOs
// ABOUTME: Resolves the live URL against the configured base URL during mapping

package mappers

import (
	"sitegen-api/api/dto/responses"
	"sitegen-api/core/domain"
)

// ToWebsiteResponse converts a domain website to its public response view.
// baseURL is used to build the preview URL when the site has no deployment.
func ToWebsiteResponse(site *domain.Website, baseURL string) responses.WebsiteResponse {
	return responses.WebsiteResponse{
		ID:   site.ID,
		Slug: site.Slug,
		Product: responses.ProductResponse{
			Title:       site.Product.Title,
			Description: site.Product.Description,
			Price:       site.Product.Price,
			ProductURL:  site.Product.OriginalURL,
		},
		LiveURL:   site.LiveURL(baseURL),
		Deployed:  site.Deployment != nil,
		Views:     site.Views,
		Clicks:    site.Clicks,
		IsActive:  site.IsActive,
		CreatedAt: site.CreatedAt,
	}
}

// ToCreateWebsiteResponse converts a creation result to the creation response
// carrying the remaining-quota count.
func ToCreateWebsiteResponse(site *domain.Website, liveURL string, remaining int) responses.CreateWebsiteResponse {
	resp := responses.CreateWebsiteResponse{
		WebsiteResponse: responses.WebsiteResponse{
			ID:   site.ID,
			Slug: site.Slug,
			Product: responses.ProductResponse{
				Title:       site.Product.Title,
				Description: site.Product.Description,
				Price:       site.Product.Price,
				ProductURL:  site.Product.OriginalURL,
			},
			LiveURL:   liveURL,
			Deployed:  site.Deployment != nil,
			Views:     site.Views,
			Clicks:    site.Clicks,
			IsActive:  site.IsActive,
			CreatedAt: site.CreatedAt,
		},
		RemainingWebsites: remaining,
	}
	return resp
}
