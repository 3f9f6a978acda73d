// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and command handlers for
// numspect.
//
// The package covers:
//   - Argument parsing (commands, flags, integer literals)
//   - Command handlers (inspect, l2cp, cp2l, version, help)
//   - Terminal detection and text wrapping
//   - Shared lipgloss styles with NO_COLOR support
//   - JSON output for machine consumption
//
// Handlers print their own output and return an error only to signal the
// process exit code; main never prints.
package cli
