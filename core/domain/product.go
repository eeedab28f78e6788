// ABOUTME: ProductSummary domain model represents the extracted summary of a merchant product page
// ABOUTME: Provides fallback construction and per-field length clamping

package domain

// Maximum lengths for ProductSummary fields. Extraction clamps each field
// independently so a single oversized value never rejects the whole summary.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 200
	MaxPriceLength       = 20
)

// Fallback values used when a product page is unreachable or a field
// cannot be extracted from its markup.
const (
	FallbackTitle       = "Premium Product"
	FallbackDescription = "An amazing product that will exceed your expectations. Limited time offer available now."
	FallbackPrice       = "$99.99"
)

// ProductSummary is the best-effort summary of a merchant product page.
// Every field is always populated; missing data is substituted field-by-field.
type ProductSummary struct {
	// Title is the product name, at most MaxTitleLength characters
	Title string

	// Description is a short product pitch, at most MaxDescriptionLength characters
	Description string

	// Price is the display price string, at most MaxPriceLength characters
	Price string

	// OriginalURL is the merchant page the summary was extracted from
	OriginalURL string
}

// FallbackSummary returns the generic summary used when a product page
// cannot be fetched or parsed. The original URL is always preserved.
func FallbackSummary(originalURL string) ProductSummary {
	return ProductSummary{
		Title:       FallbackTitle,
		Description: FallbackDescription,
		Price:       FallbackPrice,
		OriginalURL: originalURL,
	}
}

// Clamp truncates every field to its maximum length. Truncation is
// rune-safe and never fails.
func (p ProductSummary) Clamp() ProductSummary {
	p.Title = truncateRunes(p.Title, MaxTitleLength)
	p.Description = truncateRunes(p.Description, MaxDescriptionLength)
	p.Price = truncateRunes(p.Price, MaxPriceLength)
	return p
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
