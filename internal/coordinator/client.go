// Package coordinator implements the HTTP client for the coordinating server.
package coordinator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/model"
	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/pkg/safe"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is where the coordinator listens unless configured otherwise.
const DefaultBaseURL = "http://localhost:8000"

const difficultyPrefix = "Difficulty: "

// RequestMetrics records outcome and duration of coordinator requests.
type RequestMetrics interface {
	Observe(operation string, err error, started time.Time)
}

// Client talks to the coordinator: fetch the chain tip, fetch the current
// difficulty, submit a mined block. The underlying HTTP client is reused
// across requests for connection pooling and holds no caller-visible state.
type Client struct {
	http    *resty.Client
	metrics RequestMetrics
}

// NewClient creates a Client for the coordinator at baseURL. A non-zero
// timeout bounds every request.
func NewClient(baseURL string, timeout time.Duration, metrics RequestMetrics) *Client {
	return &Client{
		http:    resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		metrics: metrics,
	}
}

// LastBlock fetches the current chain tip.
func (c *Client) LastBlock(ctx context.Context) (tip *model.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("last_block", err, started)
	}()

	resp, err := c.http.R().SetContext(ctx).Get("/last-block")
	if err != nil {
		return nil, fmt.Errorf("fetch last block: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch last block: unexpected status %s: %w", resp.Status(), ErrProtocol)
	}

	var block model.Block
	if err := json.Unmarshal(resp.Body(), &block); err != nil {
		return nil, fmt.Errorf("decode last block: %v: %w", err, ErrProtocol)
	}
	return &block, nil
}

// Difficulty fetches the current difficulty. The body must carry the literal
// prefix "Difficulty: " followed by an unsigned decimal.
func (c *Client) Difficulty(ctx context.Context) (difficulty uint32, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("difficulty", err, started)
	}()

	resp, err := c.http.R().SetContext(ctx).Get("/difficulty")
	if err != nil {
		return 0, fmt.Errorf("fetch difficulty: %w", err)
	}
	if !resp.IsSuccess() {
		return 0, fmt.Errorf("fetch difficulty: unexpected status %s: %w", resp.Status(), ErrProtocol)
	}

	body := string(resp.Body())
	raw, ok := strings.CutPrefix(body, difficultyPrefix)
	if !ok {
		return 0, fmt.Errorf("difficulty response %q missing %q prefix: %w", body, difficultyPrefix, ErrProtocol)
	}
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse difficulty %q: %w", raw, ErrProtocol)
	}
	difficulty, err = safe.Uint32(value)
	if err != nil {
		return 0, fmt.Errorf("difficulty overflow: %w", ErrProtocol)
	}
	return difficulty, nil
}

// SubmitBlock posts a mined block. A non-2xx status surfaces as a
// *SubmissionError carrying the status code and response body.
func (c *Client) SubmitBlock(ctx context.Context, block *model.Block) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("new_block", err, started)
	}()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(block).
		Post("/new-block")
	if err != nil {
		return fmt.Errorf("submit block: %w", err)
	}
	if !resp.IsSuccess() {
		return &SubmissionError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}
