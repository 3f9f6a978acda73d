// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ascii.go - ASCII descriptions for small integer values.

package numeric

// controlNames names the ASCII control and whitespace codes 0..32.
var controlNames = [33]string{
	"[null]",
	"[start of heading]",
	"[start of text]",
	"[end of text]",
	"[end of transmission]",
	"[enquiry]",
	"[acknowledge]",
	"[bell]",
	"[backspace]",
	"[horizontal tab]",
	"[line feed]",
	"[vertical tab]",
	"[form feed]",
	"[carriage return]",
	"[shift out]",
	"[shift in]",
	"[data link escape]",
	"[device control 1]",
	"[device control 2]",
	"[device control 3]",
	"[device control 4]",
	"[negative acknowledge]",
	"[synchronous idle]",
	"[end of transmission block]",
	"[cancel]",
	"[end of medium]",
	"[substitute]",
	"[escape]",
	"[file separator]",
	"[group separator]",
	"[record separator]",
	"[unit separator]",
	"[space]",
}

// Describe returns a string representation for values in the ASCII range:
// the character itself for printable codes, a bracketed name for control
// and whitespace codes and DEL. The second return is false for values
// outside 0..127.
func Describe(value int64) (string, bool) {
	if value < 0 || value > 127 {
		return "", false
	}
	if value == 127 {
		return "[del]", true
	}
	if value > 32 {
		return string(rune(value)), true
	}
	return controlNames[value], true
}
