// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// report.go - Report composition for a single inspected integer.

package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/numspect/internal/numeric"
)

// AutoBits selects the default width in Build: the minimum width for
// non-negative values and the standard container width for negative ones.
const AutoBits = -1

// Report describes a single integer across bases at a specific bit width.
// The Unsigned field is the bit pattern shown in the hex/dec/oct/bin
// fields and is only meaningful together with NumBits.
type Report struct {
	Value    int64  `json:"value"`
	MinBits  uint   `json:"min_bits"`
	StdBits  uint   `json:"std_bits"`
	NumBits  uint   `json:"num_bits"`
	Unsigned uint64 `json:"unsigned"`
	Hex      string `json:"hex"`
	Dec      string `json:"dec"`
	Oct      string `json:"oct"`
	Bin      string `json:"bin"`
	ASCII    string `json:"ascii,omitempty"`
}

// Build computes the inspection report for value. bits is the requested
// width, or AutoBits (any negative value) for the default: MinBits for
// non-negative values and StdBits for negative ones, so negative numbers
// land in a conventional two's complement container width rather than the
// tightest fit.
func Build(value int64, bits int) (*Report, error) {
	minBits := numeric.MinBits(value)
	stdBits := numeric.StdBits(value)

	var numBits uint
	switch {
	case bits >= 0:
		numBits = uint(bits)
	case value >= 0:
		numBits = minBits
	default:
		numBits = stdBits
	}

	if numBits == 0 || numBits > 64 {
		return nil, &UnsupportedWidthError{Bits: int(numBits)}
	}
	if numBits < minBits {
		return nil, &InsufficientWidthError{Value: value, MinBits: minBits, Requested: numBits}
	}

	unsigned := uint64(value)
	if value < 0 {
		mag := uint64(-(value + 1)) + 1
		enc, err := numeric.TwosComplement(mag, numBits)
		if err != nil {
			// numBits was validated against MinBits above; a misfit here
			// is an internal invariant violation, not a user error.
			panic(err)
		}
		unsigned = enc
	}

	r := &Report{
		Value:    value,
		MinBits:  minBits,
		StdBits:  stdBits,
		NumBits:  numBits,
		Unsigned: unsigned,
		Hex:      numeric.AddSpacers(fmt.Sprintf("%X", unsigned), ' ', 2),
		Dec:      numeric.AddSpacers(strconv.FormatUint(unsigned, 10), ',', 3),
		Oct:      strconv.FormatUint(unsigned, 8),
		Bin:      numeric.BinString(unsigned, numBits),
	}
	if desc, ok := numeric.Describe(value); ok {
		r.ASCII = desc
	}
	return r, nil
}

// Render returns the report as labeled text lines without a trailing
// newline.
func (r *Report) Render() string {
	var b strings.Builder

	plural := "s"
	if r.MinBits == 1 {
		plural = ""
	}
	if r.Value >= 0 {
		fmt.Fprintf(&b, "req: %d bit%s (unsigned)\n", r.MinBits, plural)
	} else {
		fmt.Fprintf(&b, "req: %d bit%s (signed), showing %d-bit two's complement\n",
			r.MinBits, plural, r.NumBits)
	}

	fmt.Fprintf(&b, "hex: %s\n", r.Hex)
	fmt.Fprintf(&b, "dec: %s\n", r.Dec)
	fmt.Fprintf(&b, "oct: %s\n", r.Oct)
	fmt.Fprintf(&b, "bin: %s", r.Bin)
	if r.ASCII != "" {
		fmt.Fprintf(&b, "\nasc: %s", r.ASCII)
	}
	return b.String()
}
