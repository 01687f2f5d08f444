package retrieval_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/solairajan18/solai-gateway/internal/retrieval"
)

func TestMemoryRetrieverRanksByOverlap(t *testing.T) {
	r := retrieval.NewMemoryRetriever([]retrieval.Document{
		{ID: "a", Content: "AWS Lambda and DynamoDB projects"},
		{ID: "b", Content: "favorite cooking recipes"},
		{ID: "c", Content: "AWS certification and cloud skills"},
	})

	docs, err := r.Search(context.Background(), "aws cloud skills", 2)
	if err != nil {
		t.Fatalf("Search err: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID != "c" {
		t.Fatalf("expected best match c, got %s", docs[0].ID)
	}
}

func TestMemoryRetrieverNoOverlap(t *testing.T) {
	r := retrieval.NewMemoryRetriever(retrieval.Seed())

	docs, err := r.Search(context.Background(), "zzzzz", 3)
	if err != nil {
		t.Fatalf("Search err: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no matches, got %d", len(docs))
	}
}

func TestMemoryRetrieverAddAndList(t *testing.T) {
	r := retrieval.NewMemoryRetriever(nil)

	err := r.Add(context.Background(), retrieval.Document{
		Content:  "plays Clash of Clans",
		Metadata: map[string]any{"category": "hobbies"},
	})
	if err != nil {
		t.Fatalf("Add err: %v", err)
	}
	if err := r.Add(context.Background(), retrieval.Document{Content: "  "}); err == nil {
		t.Fatal("expected error for empty content")
	}

	docs, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].ID == "" {
		t.Fatal("expected a minted document id")
	}
}

func TestClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/portfolio/query" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header: %q", got)
		}

		var req struct {
			Query string `json:"query"`
			TopK  int    `json:"top_k"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.TopK != 3 {
			t.Fatalf("unexpected top_k: %d", req.TopK)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"documents": []map[string]any{
				{"id": "skills_001", "content": "AWS, Terraform, Python"},
			},
		})
	}))
	defer srv.Close()

	client := retrieval.NewClient(srv.URL, "test-key", "portfolio")
	docs, err := client.Search(context.Background(), "skills", 3)
	if err != nil {
		t.Fatalf("Search err: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "skills_001" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
}

func TestClientSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := retrieval.NewClient(srv.URL, "test-key", "portfolio")
	if _, err := client.Search(context.Background(), "skills", 3); err == nil {
		t.Fatal("expected error for non-success status")
	}
}
