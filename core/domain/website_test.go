package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHTML = "<!DOCTYPE html><html><body>page</body></html>"

func TestNewWebsite(t *testing.T) {
	product := ProductSummary{Title: "Widget Pro", Price: "$49.99"}

	t.Run("valid website", func(t *testing.T) {
		site, err := NewWebsite("acc-1", "widget-pro-1700000000", product, validHTML)

		require.NoError(t, err)
		assert.NotEmpty(t, site.ID)
		assert.Equal(t, "acc-1", site.AccountID)
		assert.Equal(t, "widget-pro-1700000000", site.Slug)
		assert.Equal(t, product, site.Product)
		assert.Nil(t, site.Deployment)
		assert.Zero(t, site.Views)
		assert.Zero(t, site.Clicks)
		assert.True(t, site.IsActive)
		assert.False(t, site.CreatedAt.IsZero())
		assert.Equal(t, site.CreatedAt, site.UpdatedAt)
	})

	t.Run("unique IDs", func(t *testing.T) {
		a, err := NewWebsite("acc-1", "slug-1", product, validHTML)
		require.NoError(t, err)
		b, err := NewWebsite("acc-1", "slug-2", product, validHTML)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("html without doctype prefix accepted", func(t *testing.T) {
		site, err := NewWebsite("acc-1", "slug", product, "<html><body>x</body></html>")

		require.NoError(t, err)
		assert.NotNil(t, site)
	})

	t.Run("uppercase markers accepted", func(t *testing.T) {
		site, err := NewWebsite("acc-1", "slug", product, "<HTML><body>x</body></HTML>")

		require.NoError(t, err)
		assert.NotNil(t, site)

		site, err = NewWebsite("acc-1", "slug", product, "<!DOCTYPE HTML><HTML></HTML>")
		require.NoError(t, err)
		assert.NotNil(t, site)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name      string
			accountID string
			slug      string
			html      string
		}{
			{name: "empty account", accountID: "", slug: "slug", html: validHTML},
			{name: "empty slug", accountID: "acc-1", slug: "", html: validHTML},
			{name: "fragment html", accountID: "acc-1", slug: "slug", html: "<div>not a page</div>"},
			{name: "empty html", accountID: "acc-1", slug: "slug", html: ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				site, err := NewWebsite(tt.accountID, tt.slug, product, tt.html)

				assert.Nil(t, site)
				assert.Error(t, err)
			})
		}
	})
}

func TestWebsiteLiveURL(t *testing.T) {
	site := &Website{Slug: "widget-pro-1700000000"}

	t.Run("preview URL without deployment", func(t *testing.T) {
		assert.Equal(t, "http://localhost:8080/preview/widget-pro-1700000000",
			site.LiveURL("http://localhost:8080"))
	})

	t.Run("trailing slash on base URL", func(t *testing.T) {
		assert.Equal(t, "http://localhost:8080/preview/widget-pro-1700000000",
			site.LiveURL("http://localhost:8080/"))
	})

	t.Run("deployment URL wins", func(t *testing.T) {
		deployed := &Website{
			Slug:       "widget-pro-1700000000",
			Deployment: &DeploymentResult{LiveURL: "https://widget.netlify.app"},
		}
		assert.Equal(t, "https://widget.netlify.app", deployed.LiveURL("http://localhost:8080"))
	})

	t.Run("deployment without URL falls back to preview", func(t *testing.T) {
		deployed := &Website{
			Slug:       "widget-pro-1700000000",
			Deployment: &DeploymentResult{SiteID: "s-1"},
		}
		assert.Equal(t, "http://localhost:8080/preview/widget-pro-1700000000",
			deployed.LiveURL("http://localhost:8080"))
	})
}
