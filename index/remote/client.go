package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/silvanic/handbook/core"
	"github.com/silvanic/handbook/index"
)

const defaultTimeout = 30 * time.Second

// Config holds configuration for a remote vector search service.
type Config struct {
	// BaseURL is the service endpoint, e.g. "https://handbook-1a2b3c.svc.vector.example.com".
	BaseURL string

	// APIKey authenticates every request via the Api-Key header.
	APIKey string

	// Namespace optionally scopes queries and upserts to one namespace.
	Namespace string

	// Timeout bounds each HTTP request. Defaults to 30s.
	Timeout time.Duration
}

// Client implements index.Index against an HTTP vector search service
// speaking the common query/upsert JSON protocol: POST /query with a
// vector and topK, POST /vectors/upsert with id+values+metadata records.
// The sourceTag travels in the "source" metadata field.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

var _ index.Index = (*Client)(nil)

// NewClient creates a client for the remote index service.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, index.ErrBaseURLRequired
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, index.ErrAPIKeyRequired
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: slog.Default().With("component", "remote-index"),
	}, nil
}

// Close is a no-op; the client holds no persistent connections beyond the
// standard library's keep-alive pool.
func (c *Client) Close() error {
	return nil
}

type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
	Namespace       string    `json:"namespace,omitempty"`
}

type queryResponse struct {
	Matches []remoteMatch `json:"matches"`
}

type remoteMatch struct {
	ID       string            `json:"id"`
	Score    float32           `json:"score"`
	Metadata map[string]string `json:"metadata"`
}

// Query returns up to topK matches for the given vector, in the order and
// with the scores the service reports.
func (c *Client) Query(ctx context.Context, vector []float32, topK int) ([]core.Match, error) {
	if len(vector) == 0 {
		return nil, index.ErrEmptyVector
	}

	var resp queryResponse
	err := c.post(ctx, "/query", queryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: true,
		Namespace:       c.cfg.Namespace,
	}, &resp)
	if err != nil {
		return nil, err
	}

	matches := make([]core.Match, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		matches = append(matches, core.Match{
			SourceTag: m.Metadata["source"],
			Score:     m.Score,
		})
	}
	return matches, nil
}

type upsertRequest struct {
	Vectors   []upsertVector `json:"vectors"`
	Namespace string         `json:"namespace,omitempty"`
}

type upsertVector struct {
	ID       string            `json:"id"`
	Values   []float32         `json:"values"`
	Metadata map[string]string `json:"metadata"`
}

// Upsert stores or replaces the given records.
func (c *Client) Upsert(ctx context.Context, records ...index.Record) error {
	vectors := make([]upsertVector, 0, len(records))
	for _, record := range records {
		if len(record.Vector) == 0 {
			return index.ErrEmptyVector
		}
		vectors = append(vectors, upsertVector{
			ID:       record.ID,
			Values:   record.Vector,
			Metadata: map[string]string{"source": record.SourceTag},
		})
	}

	return c.post(ctx, "/vectors/upsert", upsertRequest{
		Vectors:   vectors,
		Namespace: c.cfg.Namespace,
	}, nil)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Api-Key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("index request failed", "path", path, "err", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("index request rejected", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("index service returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
