// ABOUTME: Page analyzer service extracting a best-effort product summary from a merchant URL
// ABOUTME: Heuristic field extraction with per-field fallbacks, never fails

package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"sitegen-api/core/domain"
	"sitegen-api/core/interfaces"
)

const (
	// Some merchant sites reject requests without a realistic browser identity
	browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	maxBodySize = 5 * 1024 * 1024
	cacheTTL    = 1 * time.Hour
)

var pricePattern = regexp.MustCompile(`\$\d{1,6}(?:\.\d{2})?`)

// AnalyzerService extracts product summaries from merchant pages
type AnalyzerService struct {
	deps interfaces.Dependencies
}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService(deps interfaces.Dependencies) *AnalyzerService {
	return &AnalyzerService{
		deps: deps,
	}
}

// Analyze fetches a merchant page and extracts its product summary. It
// never fails: unreachable hosts, non-success statuses, and unparseable
// content all yield the generic fallback summary with the original URL
// preserved. Every field is clamped to its maximum length.
func (s *AnalyzerService) Analyze(ctx context.Context, rawURL string) domain.ProductSummary {
	fallback := domain.FallbackSummary(rawURL)

	if s.deps.HTTPClient == nil {
		return fallback
	}

	// Check cache first
	cacheKey := "analysis:" + rawURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.ProductSummary
			if err := json.Unmarshal(data, &cached); err == nil && cached.Title != "" {
				return cached
			}
		}
	}

	resp, err := s.deps.HTTPClient.GetWithHeaders(ctx, rawURL, map[string]string{
		"User-Agent": browserUserAgent,
	})
	if err != nil {
		s.logDegraded(rawURL, err.Error())
		return fallback
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		s.logDegraded(rawURL, "non-success status")
		return fallback
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodySize))
	if err != nil {
		s.logDegraded(rawURL, err.Error())
		return fallback
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		s.logDegraded(rawURL, err.Error())
		return fallback
	}

	summary := domain.ProductSummary{
		Title:       s.extractTitle(doc),
		Description: s.extractDescription(doc, body, rawURL),
		Price:       s.extractPrice(doc),
		OriginalURL: rawURL,
	}.Clamp()

	if s.deps.Cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}

	return summary
}

// extractTitle tries og:title, then the first h1, then the document title.
func (s *AnalyzerService) extractTitle(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if v := strings.TrimSpace(content); v != "" {
			return v
		}
	}
	if v := strings.TrimSpace(doc.Find("h1").First().Text()); v != "" {
		return v
	}
	if v := strings.TrimSpace(doc.Find("title").First().Text()); v != "" {
		return v
	}
	return domain.FallbackTitle
}

// extractDescription tries og:description, then the description meta tag,
// then the readability excerpt of the page body.
func (s *AnalyzerService) extractDescription(doc *goquery.Document, body []byte, rawURL string) string {
	if content, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
		if v := strings.TrimSpace(content); v != "" {
			return v
		}
	}
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if v := strings.TrimSpace(content); v != "" {
			return v
		}
	}

	if parsed, err := url.Parse(rawURL); err == nil {
		if article, err := readability.FromReader(bytes.NewReader(body), parsed); err == nil {
			if v := strings.TrimSpace(article.Excerpt); v != "" {
				return v
			}
		}
	}

	return domain.FallbackDescription
}

// extractPrice tries price meta tags, then price-marked elements, then the
// first dollar amount anywhere in the page text.
func (s *AnalyzerService) extractPrice(doc *goquery.Document) string {
	for _, selector := range []string{
		`meta[property="og:price:amount"]`,
		`meta[property="product:price:amount"]`,
	} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if v := strings.TrimSpace(content); v != "" {
				if !strings.HasPrefix(v, "$") {
					v = "$" + v
				}
				return v
			}
		}
	}

	for _, selector := range []string{`[itemprop="price"]`, ".price", ".product-price"} {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if match := pricePattern.FindString(text); match != "" {
			return match
		}
	}

	if match := pricePattern.FindString(doc.Text()); match != "" {
		return match
	}

	return domain.FallbackPrice
}

func (s *AnalyzerService) logDegraded(rawURL, reason string) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn("page analysis degraded to fallback summary", map[string]interface{}{
		"url":    rawURL,
		"reason": reason,
	})
}
