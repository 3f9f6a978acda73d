// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// twos.go - Two's complement encoding.

package numeric

import (
	"fmt"
	"math"
)

// EncodingError reports a magnitude that does not fit in the requested
// two's complement width. Callers validate widths against MinBits before
// encoding, so seeing this error surface indicates a bug upstream.
type EncodingError struct {
	Magnitude uint64
	NumBits   uint
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("magnitude %d does not fit in %d bits", e.Magnitude, e.NumBits)
}

// TwosComplement returns the numBits-bit two's complement bit pattern of
// magnitude, the absolute value of a negative integer. The result is only
// meaningful paired with numBits: the same pattern reads differently at
// other widths.
//
// numBits must be in 1..64; widths are derived and bounds-checked
// internally, so a violation is a programming error and panics.
func TwosComplement(magnitude uint64, numBits uint) (uint64, error) {
	if numBits == 0 || numBits > 64 {
		panic(fmt.Sprintf("numeric: two's complement width %d out of range", numBits))
	}
	if magnitude == 0 {
		return 0, nil
	}
	if numBits < 64 {
		capacity := uint64(1) << numBits
		if magnitude >= capacity {
			return 0, &EncodingError{Magnitude: magnitude, NumBits: numBits}
		}
		return capacity - magnitude, nil
	}
	// 2^64 overflows uint64, so compute (2^64 - 1 - magnitude) + 1.
	return (math.MaxUint64 - magnitude) + 1, nil
}
