package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"portfolio_sync/internal/domain"
)

// Config holds source API client configuration.
type Config struct {
	BaseURL        string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the document-authoring API. Credentials are scoped per
// content type, so every call takes the token explicitly.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int

	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "source"),
	}
}

// FetchCollection walks a collection's cursor pagination until the API
// reports no further pages. On a hard failure it returns everything
// accumulated so far together with the error; callers treat the short
// result set as a soft failure and proceed.
func (c *Client) FetchCollection(ctx context.Context, token, collectionID string) ([]Item, error) {
	var all []Item
	cursor := ""

	for page := 0; ; page++ {
		url := fmt.Sprintf("%s/collections/%s/query", c.baseURL, collectionID)
		req := queryRequest{Cursor: cursor, PageSize: c.pageSize}

		var resp queryResponse
		if err := c.doWithRetry(ctx, token, http.MethodPost, url, req, &resp); err != nil {
			return all, fmt.Errorf("query page %d: %w", page, err)
		}

		all = append(all, resp.Results...)

		c.logger.Debug("fetched page",
			"collection", collectionID,
			"page", page,
			"items", len(resp.Results),
			"total", len(all),
		)

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	return all, nil
}

// FetchBlocks lists an item's content blocks, flattened for rendering.
func (c *Client) FetchBlocks(ctx context.Context, token, itemID string) ([]domain.Block, error) {
	url := fmt.Sprintf("%s/items/%s/blocks?pageSize=%d", c.baseURL, itemID, c.pageSize)

	var resp blockListResponse
	if err := c.doWithRetry(ctx, token, http.MethodGet, url, nil, &resp); err != nil {
		return nil, fmt.Errorf("list blocks for %s: %w", itemID, err)
	}

	blocks := make([]domain.Block, 0, len(resp.Results))
	for _, b := range resp.Results {
		blocks = append(blocks, domain.Block{
			Kind:     domain.BlockKind(b.Kind),
			Text:     joinSpans(b.Text),
			Language: b.Language,
		})
	}
	return blocks, nil
}

// CreateItem creates one source-side item in the given collection.
func (c *Client) CreateItem(ctx context.Context, token, collectionID string, props Properties) (*Item, error) {
	url := fmt.Sprintf("%s/items", c.baseURL)
	req := createItemRequest{ParentCollection: collectionID, Properties: props}

	var item Item
	if err := c.doWithRetry(ctx, token, http.MethodPost, url, req, &item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &item, nil
}

func (c *Client) doWithRetry(ctx context.Context, token, method, url string, body, out any) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.do(ctx, token, method, url, body, out)
		if err == nil {
			return nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) do(ctx context.Context, token, method, url string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "PortfolioSync/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("rate limited: %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
