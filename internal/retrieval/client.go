package retrieval

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to the remote vector-search API over HTTP.
type Client struct {
	http       *resty.Client
	collection string
}

// NewClient configures a resty client for the vector store.
func NewClient(baseURL, apiKey, collection string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(30 * time.Second)
	client.SetAuthToken(apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{http: client, collection: collection}
}

type queryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type documentsResponse struct {
	Documents []Document `json:"documents"`
}

// Search returns the topK nearest stored documents.
func (c *Client) Search(ctx context.Context, query string, topK int) ([]Document, error) {
	var result documentsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(queryRequest{Query: query, TopK: topK}).
		SetResult(&result).
		Post(fmt.Sprintf("/collections/%s/query", c.collection))
	if err != nil {
		return nil, fmt.Errorf("vector query: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("vector query failed: status=%d body=%s", resp.StatusCode(), resp.String())
	}
	return result.Documents, nil
}

// Add stores one document in the collection.
func (c *Client) Add(ctx context.Context, doc Document) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(doc).
		Post(fmt.Sprintf("/collections/%s/documents", c.collection))
	if err != nil {
		return fmt.Errorf("vector add: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("vector add failed: status=%d body=%s", resp.StatusCode(), resp.String())
	}
	return nil
}

// List fetches every document in the collection.
func (c *Client) List(ctx context.Context) ([]Document, error) {
	var result documentsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/collections/%s/documents", c.collection))
	if err != nil {
		return nil, fmt.Errorf("vector list: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("vector list failed: status=%d body=%s", resp.StatusCode(), resp.String())
	}
	return result.Documents, nil
}
