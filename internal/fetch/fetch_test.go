package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"IntelFeed/internal/config"
)

func testConfig() config.FetchConfig {
	return config.FetchConfig{
		TimeoutSeconds:    5,
		UserAgent:         "Mozilla/5.0 (test)",
		RequestsPerSecond: 100,
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	var gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte("<html>ciao</html>"))
	}))
	defer server.Close()

	body, err := NewClient(testConfig(), nil).Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if body != "<html>ciao</html>" {
		t.Fatalf("unexpected body: %q", body)
	}
	if gotUA != "Mozilla/5.0 (test)" {
		t.Fatalf("unexpected user agent: %q", gotUA)
	}
	if !strings.Contains(gotAccept, "text/html") {
		t.Fatalf("unexpected accept header: %q", gotAccept)
	}
}

func TestGetNon2xxStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "errore interno", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := NewClient(testConfig(), nil).Get(context.Background(), server.URL); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestGetNetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	if _, err := NewClient(testConfig(), nil).Get(context.Background(), server.URL); err == nil {
		t.Fatal("expected error on closed server")
	}
}

func TestGetCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewClient(testConfig(), nil).Get(ctx, "https://example.org"); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}
