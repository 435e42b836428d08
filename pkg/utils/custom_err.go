package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidOtp         = errors.New("invalid or expired code")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")

	// ErrAINotConfigured means no completion credential is set. This is a
	// valid operating mode for the analysis path (deterministic fallback) but
	// a hard 503 for chat.
	ErrAINotConfigured = errors.New("completion backend not configured")
	// ErrAIUnavailable covers transient completion failures: network errors,
	// non-2xx statuses, empty responses.
	ErrAIUnavailable = errors.New("completion backend failed")
	// ErrInvalidAIResponse covers structurally bad completions: unparsable
	// JSON, missing required fields, out-of-enum profile values.
	ErrInvalidAIResponse = errors.New("invalid completion response")

	ErrPremiumRequired  = errors.New("premium required")
	ErrQuizNotCompleted = errors.New("quiz not completed")
	ErrCannotProceed    = errors.New("current step answer is missing or invalid")

	ErrPlanNotFound        = errors.New("plan not found")
	ErrPaymentProvider     = errors.New("payment provider error")
	ErrLibraryItemNotFound = errors.New("library item not found")
)
