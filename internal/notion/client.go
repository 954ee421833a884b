package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://api.notion.com"
	DefaultVersion = "2022-06-28"
)

// Client communicates with the Notion HTTP API.
type Client struct {
	baseURL    string
	token      string
	version    string
	httpClient *http.Client
	log        *slog.Logger

	// Stats aggregates the latency of every HTTP call made by the client.
	Stats *Stats

	maxConcurrency int
	sleep          func(context.Context, time.Duration) error
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL        string
	Token          string
	Version        string
	Timeout        time.Duration
	MaxConcurrency int
	StatsWindow    time.Duration
}

func NewClient(opts Options, log *slog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = 8
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: opts.BaseURL,
		token:   opts.Token,
		version: opts.Version,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		log:            log,
		Stats:          NewStats(opts.StatsWindow),
		maxConcurrency: opts.MaxConcurrency,
		sleep:          sleepContext,
	}
}

// do issues a single request and decodes a 200 response into out. Any other
// status becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Notion-Version", c.version)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.Stats.Record(time.Since(start), err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := newAPIError(resp.StatusCode, respBody)
		c.Stats.Record(time.Since(start), apiErr)
		return apiErr
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		err = fmt.Errorf("decode %s: %w", path, err)
		c.Stats.Record(time.Since(start), err)
		return err
	}
	c.Stats.Record(time.Since(start), nil)
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
