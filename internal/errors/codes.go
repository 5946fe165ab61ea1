// Package errors provides structured error handling for Retriva.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Corpus and IO errors
//   - 3XX: Upstream service errors (embedding, reranker, generation)
//   - 4XX: Validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates corpus, file, and disk errors.
	CategoryIO Category = "IO"
	// CategoryUpstream indicates errors from dependent services.
	CategoryUpstream Category = "UPSTREAM"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates an unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates the operation failed but the process can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	CodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	CodeInvalidConfig  = "ERR_102_CONFIG_INVALID"

	// Corpus and IO errors (200-299)
	CodeCorpusNotFound = "ERR_201_CORPUS_NOT_FOUND"
	CodeCorpusInvalid  = "ERR_202_CORPUS_INVALID"
	CodeFeedbackWrite  = "ERR_203_FEEDBACK_WRITE"

	// Upstream service errors (300-399)
	CodeEmbeddingUnavailable = "ERR_301_EMBEDDING_UNAVAILABLE"
	CodeEmbeddingFailed      = "ERR_302_EMBEDDING_FAILED"
	CodeRerankUnavailable    = "ERR_303_RERANK_UNAVAILABLE"
	CodeRerankFailed         = "ERR_304_RERANK_FAILED"
	CodeGenerationFailed     = "ERR_305_GENERATION_FAILED"

	// Validation errors (400-499)
	CodeInvalidInput = "ERR_401_INVALID_INPUT"
	CodeEmptyQuery   = "ERR_402_QUERY_EMPTY"

	// Internal errors (500-599)
	CodeInternal     = "ERR_501_INTERNAL"
	CodeSearchFailed = "ERR_502_SEARCH_FAILED"
	CodeIndexFailed  = "ERR_503_INDEX_FAILED"
)

// categoryFromCode extracts the category from an error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryUpstream
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on the error code.
func severityFromCode(code string) Severity {
	switch code {
	case CodeConfigNotFound, CodeInvalidConfig, CodeCorpusNotFound, CodeCorpusInvalid:
		return SeverityFatal
	}
	if isRetryableCode(code) {
		return SeverityWarning
	}
	return SeverityError
}

// isRetryableCode reports whether an error code represents a transient failure.
func isRetryableCode(code string) bool {
	switch code {
	case CodeEmbeddingUnavailable, CodeRerankUnavailable:
		return true
	default:
		return false
	}
}
