// ABOUTME: Image sourcing service resolving text queries to licensed stock images
// ABOUTME: Falls back to a fixed placeholder asset whenever the provider is unusable

package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"sitegen-api/core/domain"
	"sitegen-api/core/interfaces"
)

const (
	searchEndpoint = "https://api.pexels.com/v1/search"
	cacheTTL       = 1 * time.Hour
)

// searchResponse mirrors the provider's search payload
type searchResponse struct {
	Photos []struct {
		URL          string `json:"url"`
		Photographer string `json:"photographer"`
		Alt          string `json:"alt"`
		Src          struct {
			Large  string `json:"large"`
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// ImageService sources stock images for generated pages
type ImageService struct {
	deps   interfaces.Dependencies
	apiKey string
}

// NewImageService creates a new image service. An empty apiKey puts the
// service permanently into placeholder mode.
func NewImageService(deps interfaces.Dependencies, apiKey string) *ImageService {
	return &ImageService{
		deps:   deps,
		apiKey: apiKey,
	}
}

// FetchImages resolves a query to exactly count image assets. It never
// fails: missing credentials, transport errors, non-success responses, and
// malformed payloads all degrade to placeholder assets. One attempt, no
// retries.
func (s *ImageService) FetchImages(ctx context.Context, query string, count int) []domain.ImageAsset {
	if count <= 0 {
		return []domain.ImageAsset{}
	}

	if s.apiKey == "" || s.deps.HTTPClient == nil {
		return placeholders(count)
	}

	// Check cache first
	cacheKey := fmt.Sprintf("images:%s:%d", query, count)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached []domain.ImageAsset
			if err := json.Unmarshal(data, &cached); err == nil && len(cached) == count {
				return cached
			}
		}
	}

	assets, ok := s.search(ctx, query, count)
	if !ok {
		return placeholders(count)
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(assets); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}

	return assets
}

// search performs the single provider call. The bool result is false for
// any failure mode.
func (s *ImageService) search(ctx context.Context, query string, count int) ([]domain.ImageAsset, bool) {
	searchURL := fmt.Sprintf("%s?query=%s&per_page=%d&orientation=landscape",
		searchEndpoint, url.QueryEscape(query), count)

	resp, err := s.deps.HTTPClient.GetWithHeaders(ctx, searchURL, map[string]string{
		"Authorization": s.apiKey,
	})
	if err != nil {
		s.logDegraded("image search request failed", err)
		return nil, false
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		s.logDegraded("image search returned non-success status", fmt.Errorf("status %d", resp.StatusCode()))
		return nil, false
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		s.logDegraded("image search body read failed", err)
		return nil, false
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		s.logDegraded("image search payload malformed", err)
		return nil, false
	}

	assets := make([]domain.ImageAsset, 0, count)
	for _, photo := range parsed.Photos {
		if photo.Src.Large == "" {
			continue
		}
		alt := photo.Alt
		if alt == "" {
			alt = "Product image"
		}
		assets = append(assets, domain.ImageAsset{
			URL:             photo.Src.Large,
			Thumbnail:       photo.Src.Medium,
			AltText:         alt,
			AttributionText: fmt.Sprintf("Photo by %s on Pexels", photo.Photographer),
			DownloadRef:     photo.URL,
		})
		if len(assets) == count {
			break
		}
	}

	// Pad a short result set so the count contract always holds
	for len(assets) < count {
		assets = append(assets, domain.PlaceholderImage())
	}

	return assets, true
}

func (s *ImageService) logDegraded(msg string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"error": err.Error(),
	})
}

func placeholders(count int) []domain.ImageAsset {
	assets := make([]domain.ImageAsset, count)
	for i := range assets {
		assets[i] = domain.PlaceholderImage()
	}
	return assets
}
