// Package errors provides standardized error handling for the generation pipeline.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Caller-input errors. Surfaced across the system boundary.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"

	// External-dependency failures. Recovered locally via the fallback
	// synthesizer; never surfaced as a job failure.
	ErrCodeEmbeddingUnavailable    ErrorCode = "EMBEDDING_UNAVAILABLE"
	ErrCodeServiceError            ErrorCode = "SERVICE_ERROR"
	ErrCodeGenerationTimeout       ErrorCode = "GENERATION_TIMEOUT"
	ErrCodeGenerationInvalidOutput ErrorCode = "GENERATION_INVALID_OUTPUT"

	// Internal errors.
	ErrCodeStoreNotReady  ErrorCode = "STORE_NOT_READY"
	ErrCodeJobStoreFailed ErrorCode = "JOB_STORE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidRequestError creates a non-retryable caller-input error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid generation request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable unknown-job error.
func NewNotFoundError(jobID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   "Job not found",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmbeddingUnavailableError creates a retryable embedding service error.
func NewEmbeddingUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmbeddingUnavailable,
		Message:   "Embedding service unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewServiceError creates a retryable generative-service error.
func NewServiceError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeServiceError,
		Message:   "Generative service error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationTimeoutError creates a retryable generation timeout error.
func NewGenerationTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationTimeout,
		Message:   "Generation exceeded timeout threshold",
		Details:   "generative service call did not complete in time",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationInvalidOutputError creates a non-retryable output contract error.
func NewGenerationInvalidOutputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationInvalidOutput,
		Message:   "Generated output violates the artifact contract",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreNotReadyError creates a retryable template store error.
func NewStoreNotReadyError() *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreNotReady,
		Message:   "Template store queried before catalog load",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewJobStoreFailedError creates a retryable job store error.
func NewJobStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeJobStoreFailed,
		Message:   "Job store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// CodeOf extracts the ErrorCode from err, unwrapping as needed. Returns an
// empty code when err carries no StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// Recoverable reports whether the error belongs to the external-dependency
// class that the fallback synthesizer absorbs. Caller-input and job store
// errors are not recoverable through fallback.
func Recoverable(err error) bool {
	switch CodeOf(err) {
	case ErrCodeEmbeddingUnavailable,
		ErrCodeServiceError,
		ErrCodeGenerationTimeout,
		ErrCodeGenerationInvalidOutput,
		ErrCodeStoreNotReady:
		return true
	default:
		return false
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "REQUEST") || strings.Contains(codeStr, "NOT_FOUND"):
		return "CALLER"
	case strings.Contains(codeStr, "EMBEDDING"):
		return "EMBEDDING"
	case strings.Contains(codeStr, "GENERATION") || strings.Contains(codeStr, "SERVICE"):
		return "GENERATION"
	case strings.Contains(codeStr, "STORE"):
		return "STORE"
	default:
		return "OTHER"
	}
}
