package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/retriva/retriva/internal/errors"
)

func fastRerankerConfig(endpoint string) HTTPRerankerConfig {
	return HTTPRerankerConfig{
		Endpoint: endpoint,
		Model:    "test-reranker",
		Timeout:  time.Second,
		Retry: rerrors.RetryConfig{
			MaxRetries:   2,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			Multiplier:   2.0,
		},
	}
}

func TestHTTPReranker_Score(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rerank", r.URL.Path)

		var req rerankRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "becas", req.Query)

		// Results arrive sorted by score, not input position.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"index": 1, "score": 0.9},
				{"index": 0, "score": 0.2},
			},
			"model": req.Model,
		})
	}))
	defer server.Close()

	r := NewHTTPReranker(fastRerankerConfig(server.URL), nil)
	scores, err := r.Score(context.Background(), "becas", []string{"doc a", "doc b"})

	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.9}, scores)
}

func TestHTTPReranker_EmptyCandidates(t *testing.T) {
	r := NewHTTPReranker(fastRerankerConfig("http://localhost:1"), nil)
	scores, err := r.Score(context.Background(), "becas", nil)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestHTTPReranker_ClientErrorFailsFast(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unknown model", http.StatusBadRequest)
	}))
	defer server.Close()

	r := NewHTTPReranker(fastRerankerConfig(server.URL), nil)
	_, err := r.Score(context.Background(), "becas", []string{"doc"})

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPReranker_ServerErrorRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{"index": 0, "score": 0.5}},
		})
	}))
	defer server.Close()

	r := NewHTTPReranker(fastRerankerConfig(server.URL), nil)
	scores, err := r.Score(context.Background(), "becas", []string{"doc"})

	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, scores)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPReranker_OutOfRangeIndex(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{"index": 7, "score": 0.5}},
		})
	}))
	defer server.Close()

	r := NewHTTPReranker(fastRerankerConfig(server.URL), nil)
	_, err := r.Score(context.Background(), "becas", []string{"doc"})

	require.Error(t, err)
	assert.Equal(t, rerrors.CodeRerankFailed, rerrors.GetCode(err))
}

func TestNoOpReranker(t *testing.T) {
	r := NewNoOpReranker()
	scores, err := r.Score(context.Background(), "q", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, scores)
}
