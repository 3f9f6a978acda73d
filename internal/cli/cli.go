// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for numspect.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/jeranaias/numspect/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdInspect Command = iota
	CmdL2CP
	CmdCP2L
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Bits is the requested display width in bits. -1 means no --bits flag
	// was given and the width is chosen automatically.
	Bits int

	// JSON enables machine-readable output
	JSON bool

	// HelpTopic names the command whose help text was requested, if any
	HelpTopic string

	// Raw holds the remaining arguments after flag parsing
	Raw []string
}

const usageText = `numspect - integer inspection utility

  Integer conversion utility. Accepts integer input in [b]inary, [o]ctal,
  [d]ecimal, or he[x]adecimal base, then displays the number in all four
  bases.

  Use a single letter prefix to declare the base of the input, e.g. b1010.
  The base defaults to decimal if the prefix is omitted.

  This utility:

  - Accepts integer literals with a leading zero, e.g. 0x123.
  - Accepts multiple arguments.
  - Accepts input in the signed 64-bit integer range.
  - Displays the two's complement value for negative integers.

Usage:
  numspect [integers]

Arguments:
  [integers]            List of integers to convert.

Options:
  -b, --bits <n>        Number of binary digits to display. (Determines the
                        two's complement value for negative integers.)

Flags:
  -h, --help            Print this help text.
  -v, --version         Print the application's version number.
  --json                Output in JSON format.

Commands:
  l2cp, literal-to-codepoint    Convert character literals to code points.
  cp2l, codepoint-to-literal    Convert code points to character literals.

Command Help:
  help <command>        Print the specified command's help text.

Version: %s
`

const helpL2CP = `Usage: numspect l2cp|literal-to-codepoint [characters]

  Converts character literals to unicode code points, i.e. takes a list of
  character literals as input and prints out the unicode code point for each
  character in the list.

Arguments:
  [characters]      List of character literals.

Flags:
  -h, --help        Print this help text.
  --json            Output in JSON format.
  --names           Show the official unicode name for each character.
  --no-names        Suppress unicode names.
`

const helpCP2L = `Usage: numspect cp2l|codepoint-to-literal [integers]

  Converts unicode code points to character literals. Code points can be
  specified in binary, octal, decimal, or hexadecimal base.

Arguments:
  [integers]        List of unicode code points.

Flags:
  -h, --help        Print this help text.
  --json            Output in JSON format.
  --names           Show the official unicode name for each character.
  --no-names        Suppress unicode names.
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintCommandHelp prints the help text for a named command, falling back
// to the general usage text for unknown names.
func PrintCommandHelp(topic string) {
	switch strings.ToLower(topic) {
	case "l2cp", "literal-to-codepoint":
		fmt.Print(helpL2CP)
	case "cp2l", "codepoint-to-literal":
		fmt.Print(helpCP2L)
	default:
		PrintUsage()
	}
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("numspect version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// HandleVersion prints version information, as JSON when requested.
func HandleVersion(args Args) error {
	if args.JSON || config.Global().Output.JSON {
		return NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}).Print()
	}
	PrintVersion()
	return nil
}

// HandleHelp prints the general usage text or a command's help text.
func HandleHelp(args Args) {
	if args.HelpTopic != "" {
		PrintCommandHelp(args.HelpTopic)
		return
	}
	PrintUsage()
}

// Parse parses os.Args and returns the command and args.
// Usage errors are displayed and terminate the process.
func Parse() (Command, Args) {
	cmd, args, err := ParseFrom(os.Args[1:])
	if err != nil {
		DisplayError(err, args.JSON)
		os.Exit(ExitUsageError)
	}
	return cmd, args
}

// ParseFrom parses an explicit argument list. Split out from Parse so the
// parser can be tested without touching os.Args.
func ParseFrom(argv []string) (Command, Args, error) {
	remaining, parsedArgs, flags, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, parsedArgs, err
	}

	if flags.version {
		return CmdVersion, parsedArgs, nil
	}
	if flags.help {
		// "-h l2cp" and "l2cp -h" both show the command help
		if len(remaining) > 0 {
			parsedArgs.HelpTopic = remaining[0]
		}
		return CmdHelp, parsedArgs, nil
	}

	if len(remaining) == 0 {
		return CmdHelp, parsedArgs, nil
	}

	cmd := strings.ToLower(remaining[0])
	switch cmd {
	case "l2cp", "literal-to-codepoint":
		parsedArgs.Raw = remaining[1:]
		return CmdL2CP, parsedArgs, nil

	case "cp2l", "codepoint-to-literal":
		parsedArgs.Raw = remaining[1:]
		return CmdCP2L, parsedArgs, nil

	case "version":
		return CmdVersion, parsedArgs, nil

	case "help":
		if len(remaining) > 1 {
			parsedArgs.HelpTopic = remaining[1]
		}
		return CmdHelp, parsedArgs, nil

	default:
		// Everything else is a list of integer literals to inspect
		parsedArgs.Raw = remaining
		return CmdInspect, parsedArgs, nil
	}
}

// globalFlags records flags that change the dispatched command.
type globalFlags struct {
	help    bool
	version bool
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args, globalFlags, error) {
	var remaining []string
	var flags globalFlags
	parsedArgs := Args{Bits: -1}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-h", "--help":
			flags.help = true
		case "-v", "--version":
			flags.version = true
		case "--json":
			parsedArgs.JSON = true
		case "-b", "--bits":
			if i+1 >= len(args) {
				return nil, parsedArgs, flags, NewValidationError("bits", "", "missing value")
			}
			i++
			bits, err := parseBitsValue(args[i])
			if err != nil {
				return nil, parsedArgs, flags, err
			}
			parsedArgs.Bits = bits
		default:
			switch {
			case strings.HasPrefix(arg, "--bits="):
				bits, err := parseBitsValue(strings.TrimPrefix(arg, "--bits="))
				if err != nil {
					return nil, parsedArgs, flags, err
				}
				parsedArgs.Bits = bits
			case isNegativeLiteral(arg):
				// Negative integer literals look like flags but aren't
				remaining = append(remaining, arg)
			case strings.HasPrefix(arg, "-") && arg != "-":
				return nil, parsedArgs, flags, NewValidationError("flag", arg, "unknown flag")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs, flags, nil
}

// parseBitsValue parses the value of the --bits option.
func parseBitsValue(text string) (int, error) {
	bits, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, NewValidationError("bits", text,
			"cannot parse as a 32-bit unsigned integer")
	}
	return int(bits), nil
}

// isNegativeLiteral reports whether an argument starting with '-' is a
// negative integer literal rather than a flag.
func isNegativeLiteral(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	return arg[1] >= '0' && arg[1] <= '9'
}
