// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package savedata

import (
	"strconv"
	"strings"
)

// A Kind discriminates the scalar types a Cell can hold. There are no
// boolean, date or null kinds; anything that is not recognizably numeric
// is Text.
type Kind int

const (
	Text Kind = iota
	Integer
	Float
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	default:
		return "Text"
	}
}

// A Cell is one typed scalar value occupying a row/column position.
// The zero Cell is the empty Text cell.
type Cell struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntCell returns an Integer cell.
func IntCell(v int64) Cell { return Cell{kind: Integer, i: v} }

// FloatCell returns a Float cell.
func FloatCell(v float64) Cell { return Cell{kind: Float, f: v} }

// TextCell returns a Text cell.
func TextCell(s string) Cell { return Cell{kind: Text, s: s} }

// Kind reports the cell's scalar type.
func (c Cell) Kind() Kind { return c.kind }

// Int returns the integer value. It is zero unless Kind is Integer.
func (c Cell) Int() int64 { return c.i }

// Float returns the floating-point value. It is zero unless Kind is Float.
func (c Cell) Float() float64 { return c.f }

// Text returns the text value. It is empty unless Kind is Text.
func (c Cell) Text() string { return c.s }

// String renders the cell in its natural textual form: decimal for
// Integer, shortest non-exponential decimal for Float (with a decimal
// point forced so the result re-infers as a Float), verbatim for Text.
func (c Cell) String() string {
	switch c.kind {
	case Integer:
		return strconv.FormatInt(c.i, 10)
	case Float:
		s := strconv.FormatFloat(c.f, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	default:
		return c.s
	}
}

// Infer converts raw field text to a typed cell. The rules are applied in
// priority order:
//
//  1. Float: after stripping at most one leading "-", the text consists of
//     ASCII digits and exactly one decimal point, with at least one digit.
//  2. Integer: all ASCII digits, or exactly one leading "-" followed by
//     all digits.
//  3. Text otherwise, including the empty string.
//
// Numeric text whose value does not fit the native representation falls
// back to Text.
func Infer(s string) Cell {
	if isFloatText(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return FloatCell(f)
		}
		return TextCell(s)
	}
	if isIntText(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntCell(n)
		}
		return TextCell(s)
	}
	return TextCell(s)
}

func isFloatText(s string) bool {
	s = strings.TrimPrefix(s, "-")
	dots, digits := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			dots++
		case c >= '0' && c <= '9':
			digits++
		default:
			return false
		}
	}
	return dots == 1 && digits > 0
}

func isIntText(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
