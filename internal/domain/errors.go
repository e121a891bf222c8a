package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeEmbedding         = "EMBEDDING_ERROR"
	ErrCodeLLM               = "LLM_ERROR"
	ErrCodeDimensionMismatch = "DIMENSION_MISMATCH"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// NewEmbeddingError wraps a failure of the embedding provider.
func NewEmbeddingError(err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeEmbedding, "failed to generate embedding", err)
}

// NewLLMError wraps a completion provider failure after retries were exhausted.
func NewLLMError(attempts int, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeLLM,
		fmt.Sprintf("failed to get LLM response after %d attempts", attempts), err)
}

// NewDimensionMismatchError reports embeddings of differing length being compared.
func NewDimensionMismatchError(lenA, lenB int) *DomainError {
	return NewDomainError(ErrCodeDimensionMismatch,
		fmt.Sprintf("embedding dimensions don't match: (%d,) vs (%d,)", lenA, lenB))
}

// hasCode reports whether err is a DomainError carrying the given code.
func hasCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsEmbeddingError reports whether err is an embedding provider failure.
func IsEmbeddingError(err error) bool {
	return hasCode(err, ErrCodeEmbedding)
}

// IsLLMError reports whether err is a completion provider failure.
func IsLLMError(err error) bool {
	return hasCode(err, ErrCodeLLM)
}

// IsDimensionMismatch reports whether err is a dimension mismatch.
func IsDimensionMismatch(err error) bool {
	return hasCode(err, ErrCodeDimensionMismatch)
}

// Validation errors. Messages are user-facing and returned verbatim by the API.
var (
	ErrEmptyQuery = NewDomainError(ErrCodeValidation, "Empty query provided.")
)

// Authorization errors
var (
	ErrInvalidAPIToken = NewDomainError(ErrCodeUnauthorized, "Unauthorized")
)
