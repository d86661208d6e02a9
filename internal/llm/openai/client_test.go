package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCompleteSendsAuthAndModel(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"recommended_titles\":[\"Backend Engineer\"]}"}}]}`))
	}))
	defer srv.Close()

	client, err := NewClient("sk-test", "gpt-4o-mini", srv.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	content, err := client.Complete(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !strings.Contains(content, "Backend Engineer") {
		t.Fatalf("unexpected content: %q", content)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[1].Content != "prompt text" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestCompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	client, err := NewClient("sk-test", "gpt-4o-mini", srv.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for API error response")
	}
}

func TestCompleteTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	client, err := NewClient("sk-test", "gpt-4o-mini", srv.URL, 30*time.Millisecond)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini", "", time.Second); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("sk-test", "", "", time.Second); err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestEmbeddingsURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "default", in: "", want: "https://api.openai.com/v1/embeddings"},
		{name: "chat endpoint", in: "https://proxy.test/v1/chat/completions", want: "https://proxy.test/v1/embeddings"},
		{name: "base url", in: "https://proxy.test/v1/", want: "https://proxy.test/v1/embeddings"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := embeddingsURL(tt.in); got != tt.want {
				t.Fatalf("embeddingsURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmbedOrdersByIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"index":1,"embedding":[0,1]},{"index":0,"embedding":[1,0]}]}`))
	}))
	defer srv.Close()

	client, err := NewEmbeddingClient("sk-test", "text-embedding-3-small", srv.URL+"/chat/completions", time.Second)
	if err != nil {
		t.Fatalf("new embedding client: %v", err)
	}
	client.apiURL = srv.URL

	vecs, err := client.Embed(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if len(vecs) != 2 || vecs[0][0] != 1 || vecs[1][1] != 1 {
		t.Fatalf("unexpected vectors: %v", vecs)
	}
}
