// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Lightweight argument parser for subcommands.
package cli

import "strings"

// ArgParser parses a subcommand's argument list into boolean flags and
// positional arguments. Arguments starting with '-' followed by a digit
// are treated as positionals so negative integer literals pass through.
type ArgParser struct {
	boolFlags   map[string]bool
	positionals []string
	raw         []string
}

// NewArgParser parses args into a new ArgParser.
func NewArgParser(args []string) *ArgParser {
	p := &ArgParser{
		boolFlags: make(map[string]bool),
		raw:       args,
	}
	for _, arg := range args {
		switch {
		case isNegativeLiteral(arg):
			p.positionals = append(p.positionals, arg)
		case strings.HasPrefix(arg, "--"):
			p.boolFlags[strings.TrimPrefix(arg, "--")] = true
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			p.boolFlags[strings.TrimPrefix(arg, "-")] = true
		default:
			p.positionals = append(p.positionals, arg)
		}
	}
	return p
}

// BoolFlag reports whether the named flag was given.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// Positionals returns the positional arguments in order.
func (p *ArgParser) Positionals() []string {
	return p.positionals
}

// Raw returns the original argument list.
func (p *ArgParser) Raw() []string {
	return p.raw
}
