package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRetriever ranks documents by word overlap with the query. It stands
// in for the remote vector store in tests and when no credentials are
// configured; overlap counting is a crude stand-in for nearest-neighbor
// search but keeps the REST surface functional.
type MemoryRetriever struct {
	mu   sync.RWMutex
	docs []Document
}

// NewMemoryRetriever preloads the retriever with the supplied documents.
func NewMemoryRetriever(docs []Document) *MemoryRetriever {
	return &MemoryRetriever{docs: append([]Document(nil), docs...)}
}

// Search returns up to topK documents sharing the most words with the query.
func (r *MemoryRetriever) Search(_ context.Context, query string, topK int) ([]Document, error) {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 || topK <= 0 {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	type scored struct {
		doc   Document
		score int
	}
	candidates := make([]scored, 0, len(r.docs))
	for _, doc := range r.docs {
		content := strings.ToLower(doc.Content)
		score := 0
		for _, w := range words {
			if strings.Contains(content, w) {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{doc: doc, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	results := make([]Document, len(candidates))
	for i, c := range candidates {
		results[i] = c.doc
	}
	return results, nil
}

// Add stores a document, minting an id from its category when absent.
func (r *MemoryRetriever) Add(_ context.Context, doc Document) error {
	if strings.TrimSpace(doc.Content) == "" {
		return fmt.Errorf("document content is required")
	}
	if doc.ID == "" {
		category, _ := doc.Metadata["category"].(string)
		if category == "" {
			category = "detail"
		}
		doc.ID = fmt.Sprintf("%s_%d", category, time.Now().UnixNano())
	}

	r.mu.Lock()
	r.docs = append(r.docs, doc)
	r.mu.Unlock()
	return nil
}

// List returns every stored document.
func (r *MemoryRetriever) List(_ context.Context) ([]Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Document(nil), r.docs...), nil
}
