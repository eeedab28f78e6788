// ABOUTME: Content synthesizer turning a product summary into a complete marketing page
// ABOUTME: Generative model output with a deterministic template fallback, never fails

package synth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"sitegen-api/core/domain"
	"sitegen-api/core/interfaces"
)

const completionsEndpoint = "https://api.openai.com/v1/chat/completions"

// Image counts per page section
const (
	heroImageCount        = 1
	featureImageCount     = 2
	testimonialImageCount = 1
)

const testimonialQuery = "happy customer portrait"

// pageImages groups the sourced images by page section
type pageImages struct {
	hero        domain.ImageAsset
	features    []domain.ImageAsset
	testimonial domain.ImageAsset
}

// SynthesizerService generates marketing page documents
type SynthesizerService struct {
	deps   interfaces.Dependencies
	images interfaces.ImageSourcer
	apiKey string
	model  string
}

// NewSynthesizerService creates a new synthesizer. An empty apiKey puts the
// service permanently into template mode.
func NewSynthesizerService(deps interfaces.Dependencies, images interfaces.ImageSourcer, apiKey, model string) *SynthesizerService {
	return &SynthesizerService{
		deps:   deps,
		images: images,
		apiKey: apiKey,
		model:  model,
	}
}

// Synthesize produces a complete marketing page for the summary. It never
// fails: when the model is unconfigured, errors, or returns text that is
// not a complete document, the deterministic template fills in. The result
// always starts with a document marker.
func (s *SynthesizerService) Synthesize(ctx context.Context, summary domain.ProductSummary) string {
	imgs := s.gatherImages(ctx, summary)

	if generated, ok := s.generate(ctx, summary, imgs); ok {
		return generated
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("using deterministic page template", map[string]interface{}{
			"title": summary.Title,
		})
	}
	return renderFallback(summary, imgs)
}

// gatherImages sources the four section images. The three queries run
// concurrently; the sourcer is total so no error handling is needed.
func (s *SynthesizerService) gatherImages(ctx context.Context, summary domain.ProductSummary) pageImages {
	var imgs pageImages
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		imgs.hero = s.fetchOne(ctx, summary.Title+" product lifestyle")
	}()
	go func() {
		defer wg.Done()
		imgs.features = s.fetchN(ctx, summary.Title+" benefits features", featureImageCount)
	}()
	go func() {
		defer wg.Done()
		imgs.testimonial = s.fetchOne(ctx, testimonialQuery)
	}()
	wg.Wait()

	return imgs
}

func (s *SynthesizerService) fetchOne(ctx context.Context, query string) domain.ImageAsset {
	assets := s.fetchN(ctx, query, heroImageCount)
	return assets[0]
}

func (s *SynthesizerService) fetchN(ctx context.Context, query string, count int) []domain.ImageAsset {
	if s.images == nil {
		assets := make([]domain.ImageAsset, count)
		for i := range assets {
			assets[i] = domain.PlaceholderImage()
		}
		return assets
	}
	assets := s.images.FetchImages(ctx, query, count)
	for len(assets) < count {
		assets = append(assets, domain.PlaceholderImage())
	}
	return assets
}

// chatRequest and chatResponse mirror the completions wire format
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// generate makes the single model call. The bool result is false for every
// failure mode, including output that fails structural validation.
func (s *SynthesizerService) generate(ctx context.Context, summary domain.ProductSummary, imgs pageImages) (string, bool) {
	if s.apiKey == "" || s.deps.HTTPClient == nil {
		return "", false
	}

	payload, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are an expert landing page designer. Respond with a single complete HTML document and nothing else."},
			{Role: "user", Content: buildPrompt(summary, imgs)},
		},
	})
	if err != nil {
		return "", false
	}

	resp, err := s.deps.HTTPClient.PostWithHeaders(ctx, completionsEndpoint, bytes.NewReader(payload), map[string]string{
		"Authorization": "Bearer " + s.apiKey,
	})
	if err != nil {
		s.logDegraded("model request failed", err.Error())
		return "", false
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		s.logDegraded("model returned non-success status", fmt.Sprintf("status %d", resp.StatusCode()))
		return "", false
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		s.logDegraded("model body read failed", err.Error())
		return "", false
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Choices) == 0 {
		s.logDegraded("model payload malformed", "no choices")
		return "", false
	}

	doc := extractDocument(parsed.Choices[0].Message.Content)
	if doc == "" {
		s.logDegraded("model output failed structural validation", "no document markers")
		return "", false
	}

	return doc, true
}

// buildPrompt embeds the summary fields and resolved image URLs into the
// fixed structural brief.
func buildPrompt(summary domain.ProductSummary, imgs pageImages) string {
	var b strings.Builder
	b.WriteString("Create a complete, responsive marketing landing page as a single HTML document with embedded CSS.\n\n")
	fmt.Fprintf(&b, "Product: %s\n", summary.Title)
	fmt.Fprintf(&b, "Description: %s\n", summary.Description)
	fmt.Fprintf(&b, "Price: %s\n", summary.Price)
	fmt.Fprintf(&b, "Buy link: %s\n\n", summary.OriginalURL)
	b.WriteString("Use exactly these images:\n")
	fmt.Fprintf(&b, "- Hero: %s\n", imgs.hero.URL)
	fmt.Fprintf(&b, "- Feature 1: %s\n", imgs.features[0].URL)
	fmt.Fprintf(&b, "- Feature 2: %s\n", imgs.features[1].URL)
	fmt.Fprintf(&b, "- Testimonial: %s\n\n", imgs.testimonial.URL)
	b.WriteString("Required sections: hero with headline and call-to-action, product benefits, ")
	b.WriteString("social proof with the testimonial image, and a closing call-to-action showing the price. ")
	b.WriteString("Output only the HTML document, no explanation and no markdown fences.")
	return b.String()
}

// extractDocument strips markdown fences and extracts the document between
// its boundary markers. Returns "" when no complete document is present.
func extractDocument(raw string) string {
	text := strings.TrimSpace(raw)

	// Strip a surrounding code fence if the model added one anyway
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx >= 0 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	lower := lowerASCII(text)

	start := strings.Index(lower, "<!doctype")
	if start < 0 {
		start = strings.Index(lower, "<html")
	}
	end := strings.LastIndex(lower, "</html>")
	if start < 0 || end < 0 || end < start {
		return ""
	}

	return text[start : end+len("</html>")]
}

// lowerASCII folds only ASCII letters. The markers are ASCII, and unlike
// strings.ToLower this keeps every byte offset aligned with the input, so
// indexes found in the folded copy slice the original safely.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func (s *SynthesizerService) logDegraded(msg, reason string) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"reason": reason,
	})
}
