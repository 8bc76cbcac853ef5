package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const orgDocument = `{"company_info": {"name": "Acme", "industry": "Software", "size": "50", "location": "Remote"}}`

func TestFetchFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acme.json")
	err := os.WriteFile(path, []byte(orgDocument), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	data, err := Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to fetch from file: %v", err)
	}

	if string(data) != orgDocument {
		t.Errorf("Expected content %q, got %q", orgDocument, string(data))
	}
}

func TestFetchFromFileErrors(t *testing.T) {
	blank := filepath.Join(t.TempDir(), "blank.yaml")
	err := os.WriteFile(blank, []byte("  \n"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	for _, path := range []string{"/nonexistent/acme.json", blank} {
		_, err = Fetch(context.Background(), path)
		if err == nil {
			t.Errorf("Expected error fetching %s, got nil", path)
		}
	}
}

func TestFetchFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "jd-agent/1.0" {
			t.Errorf("Unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(orgDocument))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL+"/acme.json")
	if err != nil {
		t.Fatalf("Failed to fetch from URL: %v", err)
	}

	if string(data) != orgDocument {
		t.Errorf("Expected document to be returned unchanged, got %q", string(data))
	}
}

func TestFetchFromURLErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := Fetch(context.Background(), server.URL)
			if err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestFetchFromURLCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := Fetch(ctx, server.URL)
	if err == nil {
		t.Error("Expected timeout error, got nil")
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "https://example.com/acme.yaml", want: true},
		{input: "http://localhost:8080/acme.json", want: true},
		{input: "./acme.json", want: false},
		{input: "ftp://example.com/acme.json", want: false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}
