// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package numeric implements the integer inspection engine: bit width
// computation, two's complement encoding, grouped numeral formatting and
// radix-prefixed literal parsing.
//
// Every function in this package is a pure, stateless computation over
// plain values. There is no I/O, no shared state and no initialization;
// all functions are safe to call concurrently.
//
// # Key Operations
//
//   - MinBits / StdBits: minimum and standard (8/16/32/64) bit widths
//   - TwosComplement: n-bit two's complement encoding of a magnitude
//   - BinString: fixed-width binary rendering with nibble/byte grouping
//   - AddSpacers: digit grouping for hex and decimal strings
//   - ParseInt: literal parsing with b/o/d/x radix prefixes
//   - Describe: ASCII descriptions for values in the 0-127 range
package numeric
