package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	rerrors "github.com/retriva/retriva/internal/errors"
)

// Reranker client defaults.
const (
	DefaultRerankerEndpoint = "http://localhost:9659"
	DefaultRerankerModel    = "reranker-small"
	DefaultRerankerTimeout  = 30 * time.Second
)

// HTTPRerankerConfig holds configuration for the cross-encoder client.
type HTTPRerankerConfig struct {
	// Endpoint is the reranker server URL.
	Endpoint string

	// Model is the reranker model alias.
	Model string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// Retry controls retries on transient failures.
	Retry rerrors.RetryConfig
}

// DefaultHTTPRerankerConfig returns the default reranker configuration.
func DefaultHTTPRerankerConfig() HTTPRerankerConfig {
	return HTTPRerankerConfig{
		Endpoint: DefaultRerankerEndpoint,
		Model:    DefaultRerankerModel,
		Timeout:  DefaultRerankerTimeout,
		Retry:    rerrors.DefaultRetryConfig(),
	}
}

// rerankRequest is the JSON request to the /rerank endpoint.
type rerankRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	Model     string   `json:"model,omitempty"`
}

// rerankResponse is the JSON response from the /rerank endpoint.
type rerankResponse struct {
	Results []struct {
		Index int     `json:"index"`
		Score float64 `json:"score"`
	} `json:"results"`
	Model string `json:"model"`
}

// HTTPReranker scores candidates via a cross-encoder served over HTTP.
type HTTPReranker struct {
	client *http.Client
	config HTTPRerankerConfig
	logger *slog.Logger
}

var _ Reranker = (*HTTPReranker)(nil)

// NewHTTPReranker creates a reranker client.
func NewHTTPReranker(cfg HTTPRerankerConfig, logger *slog.Logger) *HTTPReranker {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultRerankerEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultRerankerModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRerankerTimeout
	}
	if cfg.Retry.MaxRetries == 0 && cfg.Retry.InitialDelay == 0 {
		cfg.Retry = rerrors.DefaultRetryConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
	return &HTTPReranker{client: client, config: cfg, logger: logger}
}

// Score sends the query and candidates to the reranker and returns one
// relevance score per candidate, aligned by position. Transient failures
// are retried; persistent ones propagate to the caller.
func (r *HTTPReranker) Score(ctx context.Context, query string, candidates []string) ([]float64, error) {
	if len(candidates) == 0 {
		return []float64{}, nil
	}

	start := time.Now()
	scores, err := rerrors.RetryWithResult(ctx, r.config.Retry, func() ([]float64, error) {
		return r.doScore(ctx, query, candidates)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("rerank complete",
		slog.Int("candidates", len(candidates)),
		slog.Duration("elapsed", time.Since(start)))
	return scores, nil
}

func (r *HTTPReranker) doScore(ctx context.Context, query string, candidates []string) ([]float64, error) {
	body, err := json.Marshal(rerankRequest{
		Query:     query,
		Documents: candidates,
		Model:     r.config.Model,
	})
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.CodeRerankFailed, "failed to marshal rerank request")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	url := r.config.Endpoint + "/rerank"
	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.CodeRerankFailed, "failed to build rerank request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.CodeRerankUnavailable, "reranker unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		code := rerrors.CodeRerankFailed
		if resp.StatusCode >= http.StatusInternalServerError {
			code = rerrors.CodeRerankUnavailable
		}
		return nil, rerrors.New(code,
			fmt.Sprintf("rerank failed with status %d: %s", resp.StatusCode, string(respBody)))
	}

	var result rerankResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, rerrors.Wrap(err, rerrors.CodeRerankFailed, "failed to decode rerank response")
	}

	// The server may reorder results; realign by index.
	scores := make([]float64, len(candidates))
	for _, res := range result.Results {
		if res.Index < 0 || res.Index >= len(candidates) {
			return nil, rerrors.New(rerrors.CodeRerankFailed,
				fmt.Sprintf("rerank result index %d out of range", res.Index))
		}
		scores[res.Index] = res.Score
	}
	return scores, nil
}
