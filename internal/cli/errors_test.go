// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"arguments failed", ErrArgumentsFailed, ExitGeneralError},
		{"validation error", NewValidationError("bits", "xyz", "not a number"), ExitUsageError},
		{"wrapped validation error", fmt.Errorf("parse: %w", NewValidationError("flag", "--x", "unknown flag")), ExitUsageError},
		{"generic error", errors.New("boom"), ExitGeneralError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetExitCode(tc.err); got != tc.want {
				t.Errorf("GetExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("bits", "xyz", "cannot parse as a 32-bit unsigned integer")
	want := "invalid bits 'xyz': cannot parse as a 32-bit unsigned integer"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	err = NewValidationError("bits", "", "missing value")
	want = "invalid bits: missing value"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestDisplayError_JSONEnvelope(t *testing.T) {
	out := captureStdout(t, func() {
		DisplayError(NewValidationError("flag", "--frobnicate", "unknown flag"), true)
	})

	var resp JSONResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if resp.Success {
		t.Error("success should be false")
	}
	if resp.Error == nil || *resp.Error != "invalid flag '--frobnicate': unknown flag" {
		t.Errorf("error = %v", resp.Error)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T, want object", resp.Data)
	}
	if data["error_type"] != "validation_error" {
		t.Errorf("error_type = %v", data["error_type"])
	}
	if data["field"] != "flag" || data["value"] != "--frobnicate" {
		t.Errorf("structured fields = %v", data)
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe failed: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured output: %v", err)
	}
	return string(data)
}

func TestWrapError(t *testing.T) {
	base := errors.New("base")
	wrapped := WrapError(base, "context")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base with errors.Is")
	}
	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil should return nil")
	}
}
