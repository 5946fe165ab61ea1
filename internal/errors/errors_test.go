package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesMetadataFromCode(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		category  Category
		severity  Severity
		retryable bool
	}{
		{"config", CodeInvalidConfig, CategoryConfig, SeverityFatal, false},
		{"corpus", CodeCorpusInvalid, CategoryIO, SeverityFatal, false},
		{"embedding unavailable", CodeEmbeddingUnavailable, CategoryUpstream, SeverityWarning, true},
		{"rerank failed", CodeRerankFailed, CategoryUpstream, SeverityError, false},
		{"validation", CodeEmptyQuery, CategoryValidation, SeverityError, false},
		{"internal", CodeSearchFailed, CategoryInternal, SeverityError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "boom")
			assert.Equal(t, tt.category, err.Category)
			assert.Equal(t, tt.severity, err.Severity)
			assert.Equal(t, tt.retryable, err.Retryable)
		})
	}
}

func TestError_Message(t *testing.T) {
	err := New(CodeEmbeddingFailed, "server returned no embeddings")
	assert.Equal(t, "[ERR_302_EMBEDDING_FAILED] server returned no embeddings", err.Error())
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, CodeEmbeddingUnavailable, "embedding server unreachable")

	require.NotNil(t, err)
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternal, "whatever"))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeRerankFailed, "scoring failed"))
	assert.True(t, stderrors.Is(err, New(CodeRerankFailed, "different message")))
	assert.False(t, stderrors.Is(err, New(CodeRerankUnavailable, "scoring failed")))
}

func TestWithDetail(t *testing.T) {
	err := New(CodeCorpusInvalid, "bad line").WithDetail("line", "12")
	assert.Equal(t, "12", err.Details["line"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeInternal, GetCode(New(CodeInternal, "x")))
	assert.Equal(t, "", GetCode(stderrors.New("plain")))
}

func TestFormatForLog(t *testing.T) {
	err := Wrap(stderrors.New("dial tcp"), CodeRerankUnavailable, "reranker unreachable").
		WithDetail("endpoint", "http://localhost:8080")

	fields := FormatForLog(err)
	assert.Equal(t, CodeRerankUnavailable, fields["error_code"])
	assert.Equal(t, "dial tcp", fields["cause"])
	assert.Equal(t, "http://localhost:8080", fields["detail_endpoint"])
	assert.Equal(t, true, fields["retryable"])
}
