package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/wanderto/wanderto-backend/internal/config"
	"github.com/wanderto/wanderto-backend/internal/domain"
)

// Client calls the external zero-shot text classification service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from NLP config. The configured timeout bounds every
// request in addition to any context deadline.
func New(cfg config.NLPConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "nlp"),
	}
}

// Classify submits the text for classification and returns the labels the
// service scored at or above the threshold. Network failures, non-200
// statuses, and undecodable bodies all surface as errors; the caller decides
// how to degrade.
func (c *Client) Classify(ctx context.Context, text string, threshold float64) ([]domain.CategoryScore, error) {
	payload, err := json.Marshal(classifyRequest{Text: text, Threshold: threshold})
	if err != nil {
		return nil, fmt.Errorf("nlp: encode request: %w", err)
	}

	c.log.DebugContext(ctx, "nlp request",
		slog.Int("text_len", len(text)),
		slog.Float64("threshold", threshold),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("nlp: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "nlp request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("nlp: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nlp: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nlp: read body: %w", err)
	}

	var decoded classifyResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("nlp: decode json: %w", err)
	}

	scores := make([]domain.CategoryScore, 0, len(decoded.Categories))
	for _, c := range decoded.Categories {
		scores = append(scores, domain.CategoryScore{
			Label: domain.Category(c.Label),
			Score: c.Score,
		})
	}

	c.log.DebugContext(ctx, "nlp response",
		slog.Int("status", resp.StatusCode),
		slog.Int("labels", len(scores)),
	)

	return scores, nil
}
