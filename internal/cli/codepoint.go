// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// codepoint.go - Handlers for the l2cp and cp2l commands.
package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"github.com/jeranaias/numspect/internal/config"
	"github.com/jeranaias/numspect/internal/numeric"
)

// cp2lMaxInput is the largest accepted code point argument. Values above
// it are rejected before the scalar-value check, matching a u32 input
// domain.
const cp2lMaxInput = 0xFFFFFFFF

// HandleL2CP converts character literals to unicode code points.
// All positional arguments are concatenated, then each character is
// printed with its code point.
func HandleL2CP(args Args) error {
	p := NewArgParser(args.Raw)
	if p.BoolFlag("h") || p.BoolFlag("help") {
		fmt.Print(helpL2CP)
		return nil
	}

	cfg := config.Global()
	names := namesEnabled(p, cfg)
	jsonMode := args.JSON || cfg.Output.JSON || p.BoolFlag("json")

	var sb strings.Builder
	for _, arg := range p.Positionals() {
		sb.WriteString(arg)
	}
	text := sb.String()

	if jsonMode {
		return l2cpJSON(text, names)
	}

	if text != "" {
		PrintTermline()
	}
	for _, c := range text {
		fmt.Printf("%s %c\n", RenderLabel("lit:"), c)
		fmt.Printf("%s U+%04X\n", RenderLabel("uni:"), c)
		printName(c, names)
		PrintTermline()
	}
	return nil
}

// HandleCP2L converts unicode code points to character literals.
// Code points can be given in any of the four supported bases. ASCII
// control characters render as bracketed descriptions instead of raw
// control bytes.
func HandleCP2L(args Args) error {
	p := NewArgParser(args.Raw)
	if p.BoolFlag("h") || p.BoolFlag("help") {
		fmt.Print(helpCP2L)
		return nil
	}

	cfg := config.Global()
	names := namesEnabled(p, cfg)
	jsonMode := args.JSON || cfg.Output.JSON || p.BoolFlag("json")

	if jsonMode {
		return cp2lJSON(p.Positionals(), names)
	}

	positionals := p.Positionals()
	if len(positionals) > 0 {
		PrintTermline()
	}

	failed := false
	for _, arg := range positionals {
		value, err := numeric.ParseInt(arg)
		if err != nil {
			fmt.Printf("Error: cannot parse '%s' as an integer.\n", arg)
			failed = true
			PrintTermline()
			continue
		}
		if value < 0 || value > cp2lMaxInput {
			fmt.Printf("Error: invalid input '%s'.\n", arg)
			failed = true
			PrintTermline()
			continue
		}

		if desc, ok := numeric.Describe(value); ok {
			fmt.Printf("%s U+%04X\n", RenderLabel("uni:"), value)
			fmt.Printf("%s %s\n", RenderLabel("lit:"), desc)
			printName(rune(value), names)
			PrintTermline()
			continue
		}

		r := rune(value)
		if !utf8.ValidRune(r) {
			fmt.Printf("Error: %d is not a valid unicode scalar value.\n", uint32(value))
			failed = true
			PrintTermline()
			continue
		}

		fmt.Printf("%s U+%04X\n", RenderLabel("uni:"), r)
		fmt.Printf("%s %c\n", RenderLabel("lit:"), r)
		printName(r, names)
		PrintTermline()
	}

	if failed {
		return ErrArgumentsFailed
	}
	return nil
}

// namesEnabled resolves the unicode-name display setting from config and
// the --names / --no-names flag pair. Flags win over config.
func namesEnabled(p *ArgParser, cfg *config.Config) bool {
	names := cfg.Unicode.Names
	if p.BoolFlag("no-names") {
		names = false
	}
	if p.BoolFlag("names") {
		names = true
	}
	return names
}

// printName prints the official unicode name for a rune, dimmed.
func printName(r rune, enabled bool) {
	if !enabled {
		return
	}
	if name := runenames.Name(r); name != "" {
		fmt.Printf("%s %s\n", RenderLabel("nam:"), RenderConditional(DimStyle, name))
	}
}

func l2cpJSON(text string, names bool) error {
	data := CodepointData{}
	for _, c := range text {
		res := CodepointResult{
			Input:     string(c),
			Literal:   string(c),
			Codepoint: fmt.Sprintf("U+%04X", c),
			Value:     uint32(c),
		}
		if names {
			res.Name = runenames.Name(c)
		}
		data.Results = append(data.Results, res)
	}
	return NewJSONResponse("l2cp", data).Print()
}

func cp2lJSON(rawArgs []string, names bool) error {
	data := CodepointData{}
	failed := false

	for _, arg := range rawArgs {
		res := CodepointResult{Input: arg}

		value, err := numeric.ParseInt(arg)
		switch {
		case err != nil:
			msg := fmt.Sprintf("cannot parse '%s' as an integer", arg)
			res.Error = &msg
			failed = true
		case value < 0 || value > cp2lMaxInput:
			msg := fmt.Sprintf("invalid input '%s'", arg)
			res.Error = &msg
			failed = true
		case !utf8.ValidRune(rune(value)):
			msg := fmt.Sprintf("%d is not a valid unicode scalar value", uint32(value))
			res.Error = &msg
			failed = true
		default:
			r := rune(value)
			res.Codepoint = fmt.Sprintf("U+%04X", r)
			res.Value = uint32(r)
			if desc, ok := numeric.Describe(value); ok {
				res.Literal = desc
			} else {
				res.Literal = string(r)
			}
			if names {
				res.Name = runenames.Name(r)
			}
		}

		data.Results = append(data.Results, res)
	}

	resp := NewJSONResponse("cp2l", data)
	resp.Success = !failed
	if err := resp.Print(); err != nil {
		return err
	}
	if failed {
		return ErrArgumentsFailed
	}
	return nil
}
