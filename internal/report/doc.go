// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report composes integer inspection reports from the numeric
// engine: it picks the effective bit width for a value, computes the
// unsigned encoding (identity or two's complement) and renders the
// labeled req/hex/dec/oct/bin/asc fields.
//
// All user-input problems are reported through structured error types
// (InsufficientWidthError, UnsupportedWidthError) so callers can recover
// per argument and keep processing.
package report
