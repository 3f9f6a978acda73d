// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// parse.go - Integer literal parsing with radix prefixes.

package numeric

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned by ParseInt for an empty literal.
var ErrEmptyInput = errors.New("empty input")

// Radix identifies the numeral base selected by a literal's prefix letter.
type Radix int

const (
	Binary  Radix = 2
	Octal   Radix = 8
	Decimal Radix = 10
	Hex     Radix = 16
)

// radixForPrefix maps a single prefix letter to its radix.
func radixForPrefix(c byte) (Radix, bool) {
	switch c {
	case 'b':
		return Binary, true
	case 'o':
		return Octal, true
	case 'd':
		return Decimal, true
	case 'x':
		return Hex, true
	}
	return 0, false
}

// ParseInt parses a textual integer literal into a signed 64-bit value.
//
// Leading '0' characters are stripped first; a literal that was all zeros
// is the value 0. The remaining text may then carry a single radix prefix
// letter: 'b' (binary), 'o' (octal), 'd' (decimal) or 'x' (hex). Because
// zero-stripping happens before the prefix is inspected, "0x101" and
// "x101" parse identically (to 257). Without a prefix the literal is read
// as decimal. Invalid digits for the selected radix and values outside the
// int64 range are errors.
func ParseInt(text string) (int64, error) {
	if text == "" {
		return 0, ErrEmptyInput
	}

	trimmed := strings.TrimLeft(text, "0")
	if trimmed == "" {
		return 0, nil
	}

	radix := Decimal
	if r, ok := radixForPrefix(trimmed[0]); ok {
		radix = r
		trimmed = trimmed[1:]
	}

	value, err := strconv.ParseInt(trimmed, int(radix), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q as base-%d integer: %w", text, radix, err)
	}
	return value, nil
}
