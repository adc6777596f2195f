// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package savedata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func cellCmp() cmp.Option {
	return cmp.AllowUnexported(Cell{})
}

func TestInfer(t *testing.T) {
	tests := []struct {
		in   string
		want Cell
	}{
		{"123", IntCell(123)},
		{"-45", IntCell(-45)},
		{"0", IntCell(0)},
		{"00123", IntCell(123)},
		{"3.14", FloatCell(3.14)},
		{"-0.5", FloatCell(-0.5)},
		{".5", FloatCell(0.5)},
		{"1.", FloatCell(1)},
		{"abc", TextCell("abc")},
		{"", TextCell("")},
		{"12.3.4", TextCell("12.3.4")},
		{"-", TextCell("-")},
		{"--1", TextCell("--1")},
		{"1-2", TextCell("1-2")},
		{"1e5", TextCell("1e5")},
		{" 7", TextCell(" 7")},
		{"٣", TextCell("٣")}, // non-ASCII digits are text
		// Values that pass the pattern but overflow fall back to text.
		{"9223372036854775807", IntCell(9223372036854775807)},
		{"9223372036854775808", TextCell("9223372036854775808")},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			if diff := cmp.Diff(test.want, Infer(test.in), cellCmp()); diff != "" {
				t.Errorf("Infer(%q) mismatch (-want +got):\n%s", test.in, diff)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{IntCell(500), "500"},
		{IntCell(-45), "-45"},
		{FloatCell(3.14), "3.14"},
		{FloatCell(-0.5), "-0.5"},
		// A whole-valued float keeps its decimal point so its kind
		// survives a re-parse.
		{FloatCell(1), "1.0"},
		{TextCell("Alice"), "Alice"},
		{TextCell(""), ""},
	}
	for _, test := range tests {
		if got := test.cell.String(); got != test.want {
			t.Errorf("%v.String() = %q, want %q", test.cell.Kind(), got, test.want)
		}
	}
}

func TestRenderedCellReinfersSameKind(t *testing.T) {
	cells := []Cell{IntCell(0), IntCell(-7), FloatCell(2.5), FloatCell(10), TextCell("x"), TextCell("")}
	for _, c := range cells {
		got := Infer(c.String())
		if diff := cmp.Diff(c, got, cellCmp()); diff != "" {
			t.Errorf("Infer(%q) mismatch (-want +got):\n%s", c.String(), diff)
		}
	}
}
