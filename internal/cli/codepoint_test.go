// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"github.com/jeranaias/numspect/internal/config"
)

func TestNamesEnabled(t *testing.T) {
	tests := []struct {
		name     string
		configOn bool
		args     []string
		want     bool
	}{
		{"config default on", true, nil, true},
		{"config off", false, nil, false},
		{"flag forces on", false, []string{"--names"}, true},
		{"flag forces off", true, []string{"--no-names"}, false},
		{"names wins over no-names", false, []string{"--no-names", "--names"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Unicode.Names = tc.configOn
			p := NewArgParser(tc.args)
			if got := namesEnabled(p, cfg); got != tc.want {
				t.Errorf("namesEnabled = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRuneNames(t *testing.T) {
	if name := runenames.Name('A'); name != "LATIN CAPITAL LETTER A" {
		t.Errorf("Name('A') = %q", name)
	}
	if name := runenames.Name('€'); name != "EURO SIGN" {
		t.Errorf("Name('€') = %q", name)
	}
}

func TestCP2LInputDomain(t *testing.T) {
	// Surrogates and values past the unicode range must be rejected as
	// scalar values even though they fit the accepted input domain.
	tests := []struct {
		value int64
		valid bool
	}{
		{0, true},
		{65, true},
		{0x10FFFF, true},
		{0xD800, false},
		{0xDFFF, false},
		{0x110000, false},
		{cp2lMaxInput, false},
	}

	for _, tc := range tests {
		if got := utf8.ValidRune(rune(tc.value)); got != tc.valid {
			t.Errorf("ValidRune(%#x) = %v, want %v", tc.value, got, tc.valid)
		}
	}
}
