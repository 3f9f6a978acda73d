// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for all CLI commands in numspect.
//
// STANDARDIZED PATTERN:
//   - Handlers print their own diagnostics and return an error
//   - main maps the returned error to a process exit code
//   - Structured error types carry context for JSON output
package cli

import (
	"errors"
	"fmt"
	"os"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates one or more arguments could not be processed
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or flags
	ExitUsageError = 2
)

// ErrArgumentsFailed signals that at least one argument could not be
// processed. The per-argument diagnostics have already been printed, so
// main only needs the exit code.
var ErrArgumentsFailed = errors.New("one or more arguments could not be processed")

// =============================================================================
// ERROR TYPES
// =============================================================================

// ValidationError represents a validation failure for user input.
type ValidationError struct {
	Field  string // Field that failed validation
	Value  string // Value that was provided
	Reason string // Why validation failed
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, value, reason string) error {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError displays an error in a consistent format.
//
// In JSON mode, outputs a structured JSON error envelope.
// In normal mode, displays a formatted error message on stderr, wrapped
// to the terminal width.
func DisplayError(err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		DisplayErrorJSON(err)
		return
	}

	prefix := "Error:"
	if IsStderrTTY() && ColorsEnabled() {
		prefix = ErrorStyle.Render(prefix)
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", prefix, WrapText(err.Error(), GetTerminalWidth()))
}

// DisplayErrorJSON outputs an error as a JSON envelope on stdout.
// Validation failures carry their structured fields in the data payload.
func DisplayErrorJSON(err error) {
	resp := NewJSONErrorResponse("", err)

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		resp.Data = map[string]interface{}{
			"error_type": "validation_error",
			"field":      validationErr.Field,
			"value":      validationErr.Value,
			"reason":     validationErr.Reason,
		}
	}

	resp.Print()
}

// GetExitCode determines the appropriate exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if IsValidationError(err) {
		return ExitUsageError
	}
	return ExitGeneralError
}

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
