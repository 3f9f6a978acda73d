// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/jeranaias/numspect/internal/numeric"
	"github.com/jeranaias/numspect/internal/report"
)

func TestWidthFor(t *testing.T) {
	tests := []struct {
		bits int
		want int
	}{
		{-1, report.AutoBits},
		{-5, report.AutoBits},
		{0, 0},
		{8, 8},
		{64, 64},
	}

	for _, tc := range tests {
		if got := widthFor(tc.bits); got != tc.want {
			t.Errorf("widthFor(%d) = %d, want %d", tc.bits, got, tc.want)
		}
	}
}

func TestDescribeReportError(t *testing.T) {
	_, err := report.Build(300, 8)
	if err == nil {
		t.Fatal("Build(300, 8) should have failed")
	}
	want := "Error: 300 requires at least 9 bits."
	if got := describeReportError(err); got != want {
		t.Errorf("describeReportError = %q, want %q", got, want)
	}

	_, err = report.Build(1, 65)
	if err == nil {
		t.Fatal("Build(1, 65) should have failed")
	}
	want = "Error: unsupported bit size."
	if got := describeReportError(err); got != want {
		t.Errorf("describeReportError = %q, want %q", got, want)
	}
}

func TestStyleReportLabels_PlainWhenColorsDisabled(t *testing.T) {
	rep, err := report.Build(255, report.AutoBits)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Colors are disabled under the test runner (stdout is not a TTY),
	// so the rendered report must pass through byte-identical.
	rendered := rep.Render()
	if styled := styleReportLabels(rendered); styled != rendered {
		t.Errorf("styleReportLabels altered plain output:\n%q\n%q", rendered, styled)
	}
}

func TestInspectJSON_CollectsResults(t *testing.T) {
	// Drive the result assembly through the same paths inspectJSON uses,
	// checking success and failure entries side by side.
	data := InspectData{}
	for _, arg := range []string{"255", "nonsense"} {
		res := InspectResult{Input: arg}
		value, err := numeric.ParseInt(arg)
		if err == nil {
			var rep *report.Report
			rep, err = report.Build(value, report.AutoBits)
			res.Report = rep
		}
		if err != nil {
			msg := err.Error()
			res.Report = nil
			res.Error = &msg
		}
		data.Results = append(data.Results, res)
	}

	if len(data.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(data.Results))
	}
	if data.Results[0].Report == nil || data.Results[0].Error != nil {
		t.Error("first result should carry a report")
	}
	if data.Results[1].Report != nil || data.Results[1].Error == nil {
		t.Error("second result should carry an error")
	}
}
