package preflight

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const probeTimeout = 3 * time.Second

// CheckEmbeddings probes the embedding backend. A down backend is a
// warning: retrieval degrades to lexical-only.
func (c *Checker) CheckEmbeddings(ctx context.Context, host string) CheckResult {
	result := CheckResult{
		Name:     "embeddings",
		Required: false,
	}

	if host == "" {
		result.Status = StatusWarn
		result.Message = "no embeddings host configured (lexical-only retrieval)"
		return result
	}

	// Ollama answers GET /api/tags on any healthy instance.
	if err := probe(ctx, strings.TrimRight(host, "/")+"/api/tags"); err != nil {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("unreachable: %v", err)
		result.Details = "Dense retrieval is disabled until the embeddings backend is up."
		return result
	}

	result.Status = StatusPass
	result.Message = "reachable"
	result.Details = fmt.Sprintf("Host: %s", host)
	return result
}

// CheckReranker probes the reranker service. An empty endpoint means
// reranking is intentionally disabled.
func (c *Checker) CheckReranker(ctx context.Context, endpoint string) CheckResult {
	result := CheckResult{
		Name:     "reranker",
		Required: false,
	}

	if endpoint == "" {
		result.Status = StatusPass
		result.Message = "disabled"
		return result
	}

	if err := probe(ctx, strings.TrimRight(endpoint, "/")+"/health"); err != nil {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("unreachable: %v", err)
		result.Details = "Queries fall back to keyword matching when reranking fails."
		return result
	}

	result.Status = StatusPass
	result.Message = "reachable"
	result.Details = fmt.Sprintf("Endpoint: %s", endpoint)
	return result
}

// CheckGeneration probes the OpenAI-compatible generation backend.
func (c *Checker) CheckGeneration(ctx context.Context, baseURL string) CheckResult {
	result := CheckResult{
		Name:     "generation",
		Required: false,
	}

	if baseURL == "" {
		result.Status = StatusWarn
		result.Message = "no generation backend configured (ask/chat unavailable)"
		return result
	}

	if err := probe(ctx, strings.TrimRight(baseURL, "/")+"/models"); err != nil {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("unreachable: %v", err)
		result.Details = "ask and chat answer with raw retrieved context when generation fails."
		return result
	}

	result.Status = StatusPass
	result.Message = "reachable"
	result.Details = fmt.Sprintf("Base URL: %s", baseURL)
	return result
}

// probe issues a GET and treats any HTTP response below 500 as alive.
func probe(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("http %d", resp.StatusCode)
	}
	return nil
}
