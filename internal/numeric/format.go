// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// format.go - Grouped numeral string formatting.

package numeric

// AddSpacers inserts spacer after every blockLen characters of s, counted
// from the rightmost character. The result never starts with a spacer.
//
// Used to group hex digits in pairs ("1A2B" -> "1A 2B") and decimal digits
// in thousands ("123456" -> "123,456"). blockLen must be positive.
func AddSpacers(s string, spacer rune, blockLen int) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	out := make([]rune, 0, len(runes)+len(runes)/blockLen+1)
	for i := len(runes) - 1; i >= 0; i-- {
		out = append(out, runes[i])
		if (len(runes)-1-i)%blockLen == blockLen-1 {
			out = append(out, spacer)
		}
	}
	// Drop the spacer left dangling when the length is a multiple of blockLen.
	if out[len(out)-1] == spacer {
		out = out[:len(out)-1]
	}
	reverse(out)
	return string(out)
}

// BinString renders the low numBits bits of value as a binary string, most
// significant bit first, with '_' after every 4th and ' ' after every 8th
// bit counted from the least significant end. No separator follows the
// final (most significant) digit. numBits == 0 yields the empty string;
// bits above numBits are truncated away.
func BinString(value uint64, numBits uint) string {
	if numBits == 0 {
		return ""
	}
	out := make([]rune, 0, numBits+numBits/4+numBits/8)
	for i := uint(0); i < numBits; i++ {
		out = append(out, rune('0'+(value&1)))
		value >>= 1
		if i < numBits-1 {
			switch i % 8 {
			case 3:
				out = append(out, '_')
			case 7:
				out = append(out, ' ')
			}
		}
	}
	reverse(out)
	return string(out)
}

func reverse(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
