package synth

import (
	"context"
	"io"
	"strings"

	"sitegen-api/core/domain"
	"sitegen-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	postWithHeadersFunc func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return nil, nil
}

func (m *mockHTTPClient) GetWithHeaders(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return m.PostWithHeaders(ctx, url, body, nil)
}

func (m *mockHTTPClient) PostWithHeaders(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
	if m.postWithHeadersFunc != nil {
		return m.postWithHeadersFunc(ctx, url, body, headers)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockImageSourcer is a mock implementation of the ImageSourcer interface
type mockImageSourcer struct {
	fetchFunc func(ctx context.Context, query string, count int) []domain.ImageAsset
}

func (m *mockImageSourcer) FetchImages(ctx context.Context, query string, count int) []domain.ImageAsset {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, query, count)
	}
	assets := make([]domain.ImageAsset, count)
	for i := range assets {
		assets[i] = domain.PlaceholderImage()
	}
	return assets
}
