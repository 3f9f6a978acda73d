// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// inspect.go - Handler for the default integer inspection command.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/numspect/internal/config"
	"github.com/jeranaias/numspect/internal/numeric"
	"github.com/jeranaias/numspect/internal/report"
)

// HandleInspect converts each argument and prints a multi-base report.
// Arguments that fail to parse or encode produce an error line and
// processing continues with the next argument.
func HandleInspect(args Args) error {
	cfg := config.Global()

	bits := args.Bits
	if bits < 0 && cfg.Output.Bits > 0 {
		bits = cfg.Output.Bits
	}

	jsonMode := args.JSON || cfg.Output.JSON
	if jsonMode {
		return inspectJSON(args.Raw, bits)
	}

	if len(args.Raw) == 0 {
		return nil
	}

	failed := false
	PrintTermline()
	for _, arg := range args.Raw {
		value, err := numeric.ParseInt(arg)
		if err != nil {
			fmt.Printf("Error: cannot parse '%s' as a 64-bit signed integer.\n", arg)
			failed = true
			PrintTermline()
			continue
		}

		rep, err := report.Build(value, widthFor(bits))
		if err != nil {
			fmt.Println(describeReportError(err))
			failed = true
			PrintTermline()
			continue
		}

		fmt.Println(styleReportLabels(rep.Render()))
		PrintTermline()
	}

	if failed {
		return ErrArgumentsFailed
	}
	return nil
}

// inspectJSON emits a single JSON envelope covering all arguments.
func inspectJSON(rawArgs []string, bits int) error {
	data := InspectData{Results: make([]InspectResult, 0, len(rawArgs))}
	failed := false

	for _, arg := range rawArgs {
		res := InspectResult{Input: arg}

		value, err := numeric.ParseInt(arg)
		if err != nil {
			msg := fmt.Sprintf("cannot parse '%s' as a 64-bit signed integer", arg)
			res.Error = &msg
			failed = true
			data.Results = append(data.Results, res)
			continue
		}

		rep, err := report.Build(value, widthFor(bits))
		if err != nil {
			msg := err.Error()
			res.Error = &msg
			failed = true
			data.Results = append(data.Results, res)
			continue
		}

		res.Report = rep
		data.Results = append(data.Results, res)
	}

	resp := NewJSONResponse("inspect", data)
	resp.Success = !failed
	if err := resp.Print(); err != nil {
		return err
	}
	if failed {
		return ErrArgumentsFailed
	}
	return nil
}

// styleReportLabels applies LabelStyle to the "req:"/"hex:" line label
// prefixes. Returns the text unchanged when colors are disabled, so piped
// output stays byte-identical to the raw report.
func styleReportLabels(s string) string {
	if !ColorsEnabled() {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if len(line) > 4 && line[3] == ':' && line[4] == ' ' {
			lines[i] = RenderLabel(line[:4]) + line[4:]
		}
	}
	return strings.Join(lines, "\n")
}

// widthFor translates the CLI bits value into the report package's
// convention. Negative means no width was requested; zero is passed
// through so an explicit --bits 0 is rejected as unsupported.
func widthFor(bits int) int {
	if bits < 0 {
		return report.AutoBits
	}
	return bits
}

// describeReportError renders a Build failure as a user-facing error line.
func describeReportError(err error) string {
	var insufficient *report.InsufficientWidthError
	if errors.As(err, &insufficient) {
		return fmt.Sprintf("Error: %d requires at least %d bits.",
			insufficient.Value, insufficient.MinBits)
	}

	var unsupported *report.UnsupportedWidthError
	if errors.As(err, &unsupported) {
		return "Error: unsupported bit size."
	}

	return "Error: " + err.Error() + "."
}
