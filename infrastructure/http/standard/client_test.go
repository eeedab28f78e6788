package standard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode())
	}

	body, _ := io.ReadAll(resp.Body())
	if string(body) != "hello" {
		t.Errorf("body = %q, want hello", body)
	}
}

func TestGet_SetsDefaultUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if gotUA != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, userAgent)
	}
}

func TestGetWithHeaders_OverridesDefaults(t *testing.T) {
	var gotUA, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{
		"User-Agent":    "Mozilla/5.0",
		"Authorization": "Bearer token",
	})
	if err != nil {
		t.Fatalf("GetWithHeaders returned error: %v", err)
	}
	resp.Body().Close()

	if gotUA != "Mozilla/5.0" {
		t.Errorf("User-Agent = %q, want override", gotUA)
	}
	if gotAuth != "Bearer token" {
		t.Errorf("Authorization = %q, want Bearer token", gotAuth)
	}
}

func TestGet_RetriesOn5xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if resp.StatusCode() != 200 {
		t.Errorf("status = %d, want 200 after retries", resp.StatusCode())
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestGet_DoesNotRetryOn4xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if resp.StatusCode() != 404 {
		t.Errorf("status = %d, want 404", resp.StatusCode())
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestSingleAttemptGet_NoRetryOn5xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewSingleAttemptHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if resp.StatusCode() != 502 {
		t.Errorf("status = %d, want 502", resp.StatusCode())
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("calls = %d, want exactly 1", calls)
	}
}

func TestGet_UnreachableHost(t *testing.T) {
	client := NewStandardHTTPClient(500 * time.Millisecond)

	_, err := client.Get(context.Background(), "http://127.0.0.1:1")
	if err == nil {
		t.Error("Get should return error for unreachable host")
	}
}

func TestPostWithHeaders_SendsJSONContentType(t *testing.T) {
	var gotContentType, gotAuth string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.PostWithHeaders(context.Background(), server.URL,
		strings.NewReader(`{"name":"test-site"}`),
		map[string]string{"Authorization": "Bearer deploy-key"})
	if err != nil {
		t.Fatalf("PostWithHeaders returned error: %v", err)
	}
	resp.Body().Close()

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotAuth != "Bearer deploy-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody["name"] != "test-site" {
		t.Errorf("body = %v", gotBody)
	}
	if resp.StatusCode() != 201 {
		t.Errorf("status = %d, want 201", resp.StatusCode())
	}
}

func TestResponse_Header(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Deploy-Id", "d-123")
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.Header("X-Deploy-Id") != "d-123" {
		t.Errorf("Header = %q, want d-123", resp.Header("X-Deploy-Id"))
	}
	if resp.Header("Missing") != "" {
		t.Error("missing header should be empty string")
	}
}
