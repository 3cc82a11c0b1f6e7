package naver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client performs authenticated calls against the Naver Open API. It is
// stateless and safe for concurrent use.
type Client struct {
	cfg  *Config
	http *http.Client
	log  zerolog.Logger
}

// NewClient creates a client from a validated config.
func NewClient(cfg *Config, log zerolog.Logger) *Client {
	cfg = cfg.WithDefaults()
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
		log:  log.With().Str("component", "naver-client").Logger(),
	}
}

// Fetch builds the upstream request for req and executes it, returning the
// raw JSON payload. Non-2xx statuses surface as *UpstreamError; transport
// failures (timeout, connection refused) are wrapped and carry no retry.
func (c *Client) Fetch(ctx context.Context, req SearchRequest) ([]byte, error) {
	httpReq, err := BuildRequest(c.cfg, req)
	if err != nil {
		return nil, err
	}
	httpReq = httpReq.WithContext(ctx)

	c.log.Debug().
		Str("category", string(req.Category)).
		Str("query", req.Query).
		Msg("Calling Naver search API")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("naver api request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading naver api response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
