// json_output.go - JSON output support for scripting and automation.
//
// Provides a standardized JSON envelope for all numspect commands so the
// tool can be composed with jq and log pipelines.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jeranaias/numspect/internal/report"
)

// JSONResponse is the standardized response format for all commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Error:     nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Data:      nil,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print outputs the JSON response to stdout.
func (r *JSONResponse) Print() error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// InspectResult is the per-argument result of the inspect command.
type InspectResult struct {
	Input  string         `json:"input"`
	Report *report.Report `json:"report,omitempty"`
	Error  *string        `json:"error,omitempty"`
}

// InspectData is the data payload of the inspect command.
type InspectData struct {
	Results []InspectResult `json:"results"`
}

// CodepointResult is the per-item result of the l2cp and cp2l commands.
type CodepointResult struct {
	Input     string  `json:"input"`
	Literal   string  `json:"lit,omitempty"`
	Codepoint string  `json:"uni,omitempty"`
	Value     uint32  `json:"value,omitempty"`
	Name      string  `json:"name,omitempty"`
	Error     *string `json:"error,omitempty"`
}

// CodepointData is the data payload of the l2cp and cp2l commands.
type CodepointData struct {
	Results []CodepointResult `json:"results"`
}

// VersionData is the data payload of the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version,omitempty"`
}
