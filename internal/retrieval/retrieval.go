// Package retrieval provides the portfolio context store behind the REST
// surface and the retrieval-augmented prompting path. The remote vector
// store is an opaque nearest-neighbor text store; only its HTTP contract
// is known here.
package retrieval

import "context"

// Document is one stored portfolio snippet with free-form metadata.
type Document struct {
	ID       string         `json:"id,omitempty"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Retriever finds the stored documents closest to a free-text query.
type Retriever interface {
	Search(ctx context.Context, query string, topK int) ([]Document, error)
	Add(ctx context.Context, doc Document) error
	List(ctx context.Context) ([]Document, error)
}
