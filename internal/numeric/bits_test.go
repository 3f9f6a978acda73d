// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numeric

import (
	"math"
	"testing"
)

// =============================================================================
// MIN BITS TESTS
// =============================================================================

func TestMinBits_Positive(t *testing.T) {
	tests := []struct {
		value int64
		want  uint
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{5, 3},
		{254, 8},
		{255, 8},
		{256, 9},
		{257, 9},
		{math.MaxInt64, 63},
	}

	for _, tc := range tests {
		if got := MinBits(tc.value); got != tc.want {
			t.Errorf("MinBits(%d) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestMinBits_Negative(t *testing.T) {
	tests := []struct {
		value int64
		want  uint
	}{
		{-1, 1},
		{-2, 2},
		{-3, 3},
		{-4, 3},
		{-5, 4},
		{-127, 8},
		{-128, 8},
		{-129, 9},
		{-130, 9},
		{math.MinInt64, 64},
	}

	for _, tc := range tests {
		if got := MinBits(tc.value); got != tc.want {
			t.Errorf("MinBits(%d) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestMinBits_Range(t *testing.T) {
	// The result must stay in 1..64 across the whole input domain.
	values := []int64{
		0, 1, -1, 42, -42,
		math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64,
		math.MaxInt64 - 1, math.MinInt64 + 1,
	}
	for _, v := range values {
		got := MinBits(v)
		if got < 1 || got > 64 {
			t.Errorf("MinBits(%d) = %d, out of range 1..64", v, got)
		}
	}
}

// =============================================================================
// STD BITS TESTS
// =============================================================================

func TestStdBits(t *testing.T) {
	tests := []struct {
		value int64
		want  uint
	}{
		{0, 8},
		{1, 8},
		{255, 8},
		{256, 16},
		{-1, 8},
		{-128, 8},
		{-129, 16},
		{65535, 16},
		{65536, 32},
		{math.MaxInt32, 32},
		{int64(math.MaxInt32) + 1, 64},
		{math.MaxInt64, 64},
		{math.MinInt64, 64},
	}

	for _, tc := range tests {
		if got := StdBits(tc.value); got != tc.want {
			t.Errorf("StdBits(%d) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestStdBits_IsSmallestStandardWidth(t *testing.T) {
	widths := map[uint]bool{8: true, 16: true, 32: true, 64: true}
	values := []int64{0, 7, 255, 300, -1, -129, 1 << 40, math.MinInt64}
	for _, v := range values {
		std := StdBits(v)
		if !widths[std] {
			t.Errorf("StdBits(%d) = %d, not a standard width", v, std)
			continue
		}
		if std < MinBits(v) {
			t.Errorf("StdBits(%d) = %d < MinBits = %d", v, std, MinBits(v))
		}
		// No smaller standard width may fit.
		for w := range widths {
			if w < std && w >= MinBits(v) {
				t.Errorf("StdBits(%d) = %d, but %d already fits", v, std, w)
			}
		}
	}
}
