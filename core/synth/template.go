// ABOUTME: Deterministic fallback template for generated marketing pages
// ABOUTME: Guarantees a complete document when the generative model is unusable

package synth

import (
	"bytes"
	"html/template"

	"sitegen-api/core/domain"
)

// templateData holds the substitution slots of the fallback page.
type templateData struct {
	Title          string
	Description    string
	Price          string
	ProductURL     string
	HeroImage      string
	FeatureImages  []string
	TestimonialImg string
}

var fallbackTemplate = template.Must(template.New("fallback").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; color: #1a202c; line-height: 1.6; }
  .hero { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: #fff; padding: 80px 20px; text-align: center; }
  .hero img { max-width: 480px; width: 100%; border-radius: 12px; margin-top: 32px; }
  .hero h1 { font-size: 2.5rem; margin-bottom: 16px; }
  .hero p { font-size: 1.2rem; max-width: 640px; margin: 0 auto; }
  .cta { display: inline-block; margin-top: 24px; padding: 14px 36px; background: #f6ad55; color: #1a202c; font-weight: 700; border-radius: 8px; text-decoration: none; }
  .section { padding: 64px 20px; max-width: 960px; margin: 0 auto; }
  .section h2 { text-align: center; font-size: 2rem; margin-bottom: 40px; }
  .features { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 32px; }
  .feature img { width: 100%; border-radius: 8px; }
  .feature h3 { margin-top: 16px; }
  .testimonial { background: #f7fafc; text-align: center; }
  .testimonial img { width: 96px; height: 96px; border-radius: 50%; object-fit: cover; }
  .testimonial blockquote { font-size: 1.1rem; font-style: italic; max-width: 560px; margin: 24px auto; }
  .footer-cta { background: #2d3748; color: #fff; text-align: center; padding: 64px 20px; }
  .price { font-size: 2rem; font-weight: 700; margin: 16px 0; }
</style>
</head>
<body>
<section class="hero">
  <h1>{{.Title}}</h1>
  <p>{{.Description}}</p>
  <a class="cta" href="{{.ProductURL}}">Get it for {{.Price}}</a>
  <div><img src="{{.HeroImage}}" alt="{{.Title}}"></div>
</section>
<section class="section">
  <h2>Why {{.Title}}?</h2>
  <div class="features">
    {{range $i, $img := .FeatureImages}}
    <div class="feature">
      <img src="{{$img}}" alt="Feature">
      <h3>{{if eq $i 0}}Built to last{{else}}Loved by thousands{{end}}</h3>
      <p>{{if eq $i 0}}Premium materials and craftsmanship you can rely on, day after day.{{else}}Join a growing community of happy customers who made the switch.{{end}}</p>
    </div>
    {{end}}
  </div>
</section>
<section class="section testimonial">
  <h2>What customers say</h2>
  <img src="{{.TestimonialImg}}" alt="Happy customer">
  <blockquote>&ldquo;Exactly what I was looking for. The quality exceeded my expectations and shipping was fast.&rdquo;</blockquote>
  <p>&mdash; A verified buyer</p>
</section>
<section class="footer-cta">
  <h2>Ready to try {{.Title}}?</h2>
  <div class="price">{{.Price}}</div>
  <a class="cta" href="{{.ProductURL}}">Order now</a>
</section>
</body>
</html>
`))

// renderFallback builds the deterministic page. The template is fixed, so
// rendering cannot fail for any summary or image set.
func renderFallback(summary domain.ProductSummary, imgs pageImages) string {
	data := templateData{
		Title:          summary.Title,
		Description:    summary.Description,
		Price:          summary.Price,
		ProductURL:     summary.OriginalURL,
		HeroImage:      imgs.hero.URL,
		FeatureImages:  []string{imgs.features[0].URL, imgs.features[1].URL},
		TestimonialImg: imgs.testimonial.URL,
	}

	var buf bytes.Buffer
	if err := fallbackTemplate.Execute(&buf, data); err != nil {
		// Unreachable with a fixed template; keep the contract anyway
		return "<!DOCTYPE html><html><head><title>" + template.HTMLEscapeString(summary.Title) +
			"</title></head><body><h1>" + template.HTMLEscapeString(summary.Title) + "</h1></body></html>"
	}
	return buf.String()
}
