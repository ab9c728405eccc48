package transport_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-botsettings/pkg/transport"
)

func TestPostJSONSetsHeadersAndBody(t *testing.T) {
	var gotContentType, gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := transport.New(transport.WithHTTPClient(server.Client()))
	err := client.PostJSON(context.Background(), server.URL, []byte(`{"a":1}`), "tok-123")
	if err != nil {
		t.Fatalf("PostJSON: %v", err)
	}

	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q", gotContentType)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotBody != `{"a":1}` {
		t.Fatalf("body = %q", gotBody)
	}
}

func TestPostJSONOmitsAuthorizationWithoutToken(t *testing.T) {
	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := transport.New(transport.WithHTTPClient(server.Client()))
	if err := client.PostJSON(context.Background(), server.URL, nil, ""); err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if sawAuth {
		t.Fatal("Authorization header must be absent without a token")
	}
}

func TestPostJSONSurfacesServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"bot already active"}`))
	}))
	defer server.Close()

	client := transport.New(transport.WithHTTPClient(server.Client()))
	err := client.PostJSON(context.Background(), server.URL, nil, "")

	var apiErr *transport.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "bot already active" {
		t.Fatalf("Detail = %q", apiErr.Detail)
	}
}

func TestPostJSONGenericErrorWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := transport.New(transport.WithHTTPClient(server.Client()))
	err := client.PostJSON(context.Background(), server.URL, nil, "")

	var apiErr *transport.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	if apiErr.Detail != "" {
		t.Fatalf("Detail = %q, want empty", apiErr.Detail)
	}
}

func TestTokenSources(t *testing.T) {
	ctx := context.Background()

	if _, err := transport.StaticToken("  ").Token(ctx); err == nil {
		t.Fatal("empty static token must error")
	}
	token, err := transport.StaticToken("abc").Token(ctx)
	if err != nil || token != "abc" {
		t.Fatalf("StaticToken = %q, %v", token, err)
	}

	t.Setenv("BOTSETTINGS_TEST_TOKEN", "from-env")
	token, err = transport.EnvToken("BOTSETTINGS_TEST_TOKEN").Token(ctx)
	if err != nil || token != "from-env" {
		t.Fatalf("EnvToken = %q, %v", token, err)
	}
	if _, err := transport.EnvToken("BOTSETTINGS_TEST_TOKEN_MISSING").Token(ctx); err == nil {
		t.Fatal("missing env token must error")
	}
}
