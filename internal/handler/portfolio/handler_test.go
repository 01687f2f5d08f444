package portfolio

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/solairajan18/solai-gateway/internal/retrieval"
)

func setupRouter() (*chi.Mux, *retrieval.MemoryRetriever) {
	retriever := retrieval.NewMemoryRetriever(nil)
	handler := New(retriever)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, retriever
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" || body["timestamp"] == "" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAddAndListDetails(t *testing.T) {
	r, _ := setupRouter()

	payload, _ := json.Marshal(map[string]any{
		"category": "hobbies",
		"content":  "Avid Clash of Clans player",
	})
	req := httptest.NewRequest(http.MethodPost, "/details", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/details", nil)
	listResp := httptest.NewRecorder()
	r.ServeHTTP(listResp, listReq)

	var body struct {
		Details []retrieval.Document `json:"details"`
	}
	if err := json.Unmarshal(listResp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Details) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(body.Details))
	}
	if body.Details[0].Metadata["category"] != "hobbies" {
		t.Fatalf("unexpected metadata: %v", body.Details[0].Metadata)
	}
}

func TestAddDetailValidation(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/details", bytes.NewReader([]byte(`{"category":"skills"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	badReq := httptest.NewRequest(http.MethodPost, "/details", bytes.NewReader([]byte(`not json`)))
	badResp := httptest.NewRecorder()
	r.ServeHTTP(badResp, badReq)

	if badResp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid body, got %d", badResp.Code)
	}
}
