// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"reflect"
	"testing"
)

func TestArgParser_FlagsAndPositionals(t *testing.T) {
	p := NewArgParser([]string{"65", "--names", "b1010", "-h", "--json"})

	if !p.BoolFlag("names") {
		t.Error("names flag not detected")
	}
	if !p.BoolFlag("h") {
		t.Error("h flag not detected")
	}
	if !p.BoolFlag("json") {
		t.Error("json flag not detected")
	}
	if p.BoolFlag("missing") {
		t.Error("missing flag should be false")
	}

	want := []string{"65", "b1010"}
	if !reflect.DeepEqual(p.Positionals(), want) {
		t.Errorf("positionals = %v, want %v", p.Positionals(), want)
	}
}

func TestArgParser_NegativeLiteralsArePositional(t *testing.T) {
	p := NewArgParser([]string{"-1", "-42", "--no-names"})

	want := []string{"-1", "-42"}
	if !reflect.DeepEqual(p.Positionals(), want) {
		t.Errorf("positionals = %v, want %v", p.Positionals(), want)
	}
	if !p.BoolFlag("no-names") {
		t.Error("no-names flag not detected")
	}
}

func TestArgParser_Raw(t *testing.T) {
	args := []string{"a", "--json", "b"}
	p := NewArgParser(args)
	if !reflect.DeepEqual(p.Raw(), args) {
		t.Errorf("raw = %v, want %v", p.Raw(), args)
	}
}
