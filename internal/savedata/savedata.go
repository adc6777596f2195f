// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package savedata converts between the envelope's decoded plaintext and an
// in-memory set of named, typed tables.
//
// The plaintext is a sequence of table sections. A section starts at a line
// whose first three characters are "###", immediately followed by the table
// name. The first subsequent line with more than one tab-separated field is
// the header; every later non-blank line is a data row, tab-split and
// zipped positionally against the header. Cell types are inferred from the
// text (see Infer) and preserved across a round trip.
//
// Column order is not re-derivable from rows, which are plain maps. Parse
// therefore captures each table's header order in a HeaderOrder side table,
// and Format consults it when re-emitting.
package savedata

import "sort"

// Marker is the prefix of a table-section start line. The table name
// follows it immediately, with no separator.
const Marker = "###"

// A Row maps column names to cell values. Rows carry no column order of
// their own.
type Row map[string]Cell

// A Table is a named, ordered collection of rows.
type Table struct {
	Name string
	Rows []Row
}

// A Set holds the tables of one save session in their original order.
// A Set is created fresh by every Parse call and fully replaces any prior
// session data.
type Set struct {
	tables []*Table
	index  map[string]int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{index: map[string]int{}}
}

// Tables returns the tables in order. The slice is shared with the Set;
// callers may mutate the tables but not the slice itself.
func (s *Set) Tables() []*Table { return s.tables }

// Len reports the number of tables.
func (s *Set) Len() int { return len(s.tables) }

// Lookup returns the table with the given name, or nil.
func (s *Set) Lookup(name string) *Table {
	if i, ok := s.index[name]; ok {
		return s.tables[i]
	}
	return nil
}

// Add returns the table with the given name, appending an empty one if it
// does not exist yet. An existing table keeps its position and rows.
func (s *Set) Add(name string) *Table {
	if t := s.Lookup(name); t != nil {
		return t
	}
	t := &Table{Name: name}
	s.index[name] = len(s.tables)
	s.tables = append(s.tables, t)
	return t
}

// HeaderOrder records the column order captured from each table's header
// line, keyed by table name. It is the authoritative order for
// re-emission; Format never recomputes it from rows.
type HeaderOrder map[string][]string

// Columns returns the column order to use when emitting t: the captured
// order if one exists for t's name, otherwise the sorted column names of
// t's first row. Sorting makes the fallback deterministic, since rows are
// unordered maps. A nil HeaderOrder is valid and always falls back.
func (h HeaderOrder) Columns(t *Table) []string {
	if cols, ok := h[t.Name]; ok {
		return cols
	}
	if len(t.Rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(t.Rows[0]))
	for col := range t.Rows[0] {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
