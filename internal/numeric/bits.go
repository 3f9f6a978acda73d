// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// bits.go - Bit width computation for signed 64-bit integers.

package numeric

import "math/bits"

// stdWidths are the conventional integer container widths, in ascending order.
var stdWidths = [...]uint{8, 16, 32, 64}

// MinBits returns the minimum number of bits required to represent value.
// For value >= 0 this is the width of the unsigned binary representation;
// for value < 0 it is the width of the minimal two's complement
// representation, sign bit included.
//
// MinBits(0) == 1 and the result is always in 1..64.
func MinBits(value int64) uint {
	switch {
	case value == 0:
		return 1
	case value > 0:
		return uint(bits.Len64(uint64(value)))
	default:
		// A magnitude m needs Len64(m-1)+1 two's complement bits.
		// The magnitude is computed in uint64 so MinInt64 does not overflow.
		mag := uint64(-(value + 1)) + 1
		return uint(bits.Len64(mag-1)) + 1
	}
}

// StdBits returns MinBits(value) rounded up to the smallest standard
// integer width: 8, 16, 32 or 64 bits.
func StdBits(value int64) uint {
	need := MinBits(value)
	for _, std := range stdWidths {
		if need <= std {
			return std
		}
	}
	// Unreachable for int64 input: MinBits never exceeds 64.
	return need
}
