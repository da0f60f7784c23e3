package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000/api/", 5*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.BaseURL != "http://localhost:3000/api" {
		t.Errorf("expected trailing slash to be trimmed, got %q", client.BaseURL)
	}
	if !client.AllowGetMethodPayload {
		t.Error("expected GET payloads to be allowed")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a/", 0)
	client2 := NewHTTPClient("http://b/", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

// TestNewHTTPClient_SendsGetBody verifies that the JSON body of a GET
// request reaches the server.
func TestNewHTTPClient_SendsGetBody(t *testing.T) {
	var gotBody, gotContentType, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = strings.TrimSpace(string(b))
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/api/", 0)
	_, err := client.R().SetBody(map[string]any{"AuthUsername": "alice"}).Get("role/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/role/" {
		t.Errorf("expected path /api/role/, got %q", gotPath)
	}
	if gotBody != `{"AuthUsername":"alice"}` {
		t.Errorf("unexpected body %q", gotBody)
	}
	if gotContentType != "application/json" {
		t.Errorf("unexpected content type %q", gotContentType)
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	if a == "" || b == "" {
		t.Fatal("expected non-empty identifiers")
	}
	if a == b {
		t.Fatalf("expected distinct identifiers, got %q twice", a)
	}
}
