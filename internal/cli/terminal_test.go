// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"
)

func TestWrapText_ShortLineUnchanged(t *testing.T) {
	if got := WrapText("short", 40); got != "short" {
		t.Errorf("WrapText = %q, want %q", got, "short")
	}
}

func TestWrapText_WrapsAtWordBoundaries(t *testing.T) {
	// maxWidth 12 leaves an effective width of 10 after the margin
	got := WrapText("aaaa bbbb cccc dddd", 12)
	want := "aaaa bbbb\ncccc dddd"
	if got != want {
		t.Errorf("WrapText = %q, want %q", got, want)
	}
}

func TestWrapText_PreservesNewlines(t *testing.T) {
	got := WrapText("first\nsecond", 40)
	want := "first\nsecond"
	if got != want {
		t.Errorf("WrapText = %q, want %q", got, want)
	}
}

func TestWrapText_CountsDisplayWidth(t *testing.T) {
	// Each CJK word is 4 cells wide but 6 bytes long. With an effective
	// width of 10 two words fit per line; byte counting would put one.
	got := WrapText("ああ ああ ああ", 12)
	want := "ああ ああ\nああ"
	if got != want {
		t.Errorf("WrapText = %q, want %q", got, want)
	}
}

func TestWrapText_NeverExceedsWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog again and again"
	for _, width := range []int{12, 20, 30} {
		for _, line := range strings.Split(WrapText(text, width), "\n") {
			if len(line) > width {
				t.Errorf("width %d: line %q is too long", width, line)
			}
		}
	}
}
