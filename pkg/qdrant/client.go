package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// EnsureCollection creates the collection if it does not exist yet.
// Qdrant returns 409 for an existing collection, which is treated as success.
func (c *Client) EnsureCollection(ctx context.Context, req CreateCollectionRequest) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, req.Name)

	status, err := c.do(ctx, http.MethodPut, url, req, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated && status != http.StatusConflict {
		return fmt.Errorf("qdrant API error: %d", status)
	}
	return nil
}

// UpsertPoints inserts or updates points in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collection string, req UpsertPointsRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points", c.baseURL, collection)

	status, err := c.do(ctx, http.MethodPut, url, req, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant API error: %d", status)
	}
	return nil
}

// Search runs a nearest-neighbor query and returns scored hits.
func (c *Client) Search(ctx context.Context, collection string, req SearchRequest) ([]ScoredPoint, error) {
	url := fmt.Sprintf("%s/collections/%s/points/search", c.baseURL, collection)

	var parsed searchResponse
	status, err := c.do(ctx, http.MethodPost, url, req, &parsed)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("qdrant API error: %d", status)
	}
	return parsed.Result, nil
}

// DeletePoints removes points by ID.
func (c *Client) DeletePoints(ctx context.Context, collection string, req DeletePointsRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points/delete", c.baseURL, collection)

	status, err := c.do(ctx, http.MethodPost, url, req, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant API error: %d", status)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, url string, body any, out any) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode qdrant response: %w", err)
		}
	}

	return resp.StatusCode, nil
}
