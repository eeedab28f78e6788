// ABOUTME: ImageAsset domain model represents a sourced stock or placeholder image
// ABOUTME: Provides the fixed placeholder asset used when the image provider is unavailable

package domain

// PlaceholderImageURL is the fixed image substituted when the provider
// is unconfigured, unreachable, or returns unusable data.
const PlaceholderImageURL = "https://placehold.co/1200x800/e2e8f0/475569?text=Product+Image"

// ImageAsset represents a single sourced image. Assets have no identity
// beyond their URL and are only persisted embedded in generated documents.
type ImageAsset struct {
	// URL is the full-size image URL
	URL string

	// Thumbnail is a smaller rendition of the same image
	Thumbnail string

	// AltText describes the image for accessibility
	AltText string

	// AttributionText credits the photographer or source
	AttributionText string

	// DownloadRef is a provider-specific download reference, empty for placeholders
	DownloadRef string
}

// PlaceholderImage returns the fixed placeholder asset.
func PlaceholderImage() ImageAsset {
	return ImageAsset{
		URL:             PlaceholderImageURL,
		Thumbnail:       PlaceholderImageURL,
		AltText:         "Product image",
		AttributionText: "Professional stock photo",
	}
}
