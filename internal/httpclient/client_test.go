package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWithProvider(t *testing.T) {
	ctx := WithProvider(context.Background(), "Stability")
	if got := ProviderFrom(ctx); got != "Stability" {
		t.Errorf("ProviderFrom() = %q; want Stability", got)
	}
	if got := ProviderFrom(context.Background()); got != "" {
		t.Errorf("ProviderFrom() on empty context = %q; want empty", got)
	}
}

func TestNewClients(t *testing.T) {
	if c := NewTextClient(); c.Timeout != TextTimeout {
		t.Errorf("text client timeout = %v; want %v", c.Timeout, TextTimeout)
	}
	if c := NewImageClient(); c.Timeout != ImageTimeout {
		t.Errorf("image client timeout = %v; want %v", c.Timeout, ImageTimeout)
	}
}

func TestInstrumentedClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	client := NewInstrumentedClient(5 * time.Second)
	req, err := http.NewRequestWithContext(WithProvider(context.Background(), "test"), http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() returned error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("status = %d; want %d", resp.StatusCode, http.StatusTeapot)
	}
}
