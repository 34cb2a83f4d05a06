// Package errors provides standardized error handling for the command engine.
//
// Business ambiguity (low confidence, missing fields, unknown intent) is never
// an error in this system. It travels as data on the Command. The codes below
// cover genuine infrastructure and programming failures only.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"
	ErrCodeCommandBuildFailed    ErrorCode = "COMMAND_BUILD_FAILED"

	ErrCodeDedupeCheckFailed ErrorCode = "DEDUPE_CHECK_FAILED"
	ErrCodeLeadPersistFailed ErrorCode = "LEAD_PERSIST_FAILED"
	ErrCodeCRMCreateFailed   ErrorCode = "CRM_CREATE_FAILED"
	ErrCodeAuditIndexFailed  ErrorCode = "AUDIT_INDEX_FAILED"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeInternal                 ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewInputValidationError creates a non-retryable error for malformed job input.
func NewInputValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   "Inbound command input failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCommandBuildError creates a non-retryable error for envelope construction bugs.
func NewCommandBuildError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCommandBuildFailed,
		Message:   "Command envelope construction failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLeadPersistError creates a retryable error for lead storage failures.
func NewLeadPersistError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLeadPersistFailed,
		Message:   "Failed to persist lead record",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCRMCreateError creates a retryable error for CRM lead creation failures.
func NewCRMCreateError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCRMCreateFailed,
		Message:   "Failed to create lead in CRM",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendError creates a retryable error for delivery failures.
func NewNotificationSendError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Failed to send notification",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// GetRetryCount maps error codes to the job retry budget used when failing jobs.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDedupeCheckFailed, ErrCodeLeadPersistFailed,
		ErrCodeCRMCreateFailed, ErrCodeNotificationSendFailed:
		return 3
	case ErrCodeAuditIndexFailed:
		return 1
	default:
		return 0
	}
}
