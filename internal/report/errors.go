// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Structured error types for report composition.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never print and return nil)
//   - Let the caller decide how to display errors
//   - Use structured error types so the CLI can recover per argument

package report

import (
	"errors"
	"fmt"
)

// InsufficientWidthError reports a user-requested bit width smaller than
// the value's minimum required width.
type InsufficientWidthError struct {
	Value     int64 // the literal being inspected
	MinBits   uint  // minimum width the value needs
	Requested uint  // width the user asked for
}

func (e *InsufficientWidthError) Error() string {
	return fmt.Sprintf("%d requires at least %d bits", e.Value, e.MinBits)
}

// UnsupportedWidthError reports an effective bit width outside 1..64.
type UnsupportedWidthError struct {
	Bits int
}

func (e *UnsupportedWidthError) Error() string {
	return "unsupported bit size"
}

// IsInsufficientWidth checks if an error is an insufficient width error.
func IsInsufficientWidth(err error) bool {
	var e *InsufficientWidthError
	return errors.As(err, &e)
}

// IsUnsupportedWidth checks if an error is an unsupported width error.
func IsUnsupportedWidth(err error) bool {
	var e *UnsupportedWidthError
	return errors.As(err, &e)
}
