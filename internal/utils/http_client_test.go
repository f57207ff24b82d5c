package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Timeout(t *testing.T) {
	if got := NewHTTPClient("http://localhost", time.Second).GetClient().Timeout; got != time.Second {
		t.Errorf("timeout = %s, want 1s", got)
	}
	if got := NewHTTPClient("http://localhost", 0).GetClient().Timeout; got != 0 {
		t.Errorf("timeout = %s, want none", got)
	}
}

func TestHTTPClient_BaseURLAndHeaders(t *testing.T) {
	var gotPath, gotAgent, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/v1_1/demo/ping")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode())
	}
	if gotPath != "/v1_1/demo/ping" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAgent != UserAgent {
		t.Errorf("user agent = %q, want %q", gotAgent, UserAgent)
	}
	if gotAccept != "application/json" {
		t.Errorf("accept = %q", gotAccept)
	}
}
