// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package savedata

import (
	"context"
	"fmt"
	"strings"

	"github.com/bagaspratmanta/YLSE/internal/derrors"
	"github.com/bagaspratmanta/YLSE/internal/log"
)

// LongRowMode controls what happens to a data row that has more fields
// than its table's header.
type LongRowMode int

const (
	// LongRowTruncate drops the extra fields and logs a warning.
	LongRowTruncate LongRowMode = iota
	// LongRowSkip drops the whole row silently.
	LongRowSkip
	// LongRowReject fails the parse with derrors.BadTableStructure.
	LongRowReject
)

func (m LongRowMode) String() string {
	switch m {
	case LongRowSkip:
		return "skip"
	case LongRowReject:
		return "reject"
	default:
		return "truncate"
	}
}

type parseOptions struct {
	longRows LongRowMode
}

// A ParseOption configures Parse.
type ParseOption func(*parseOptions)

// WithLongRows sets the handling of data rows longer than their header.
func WithLongRows(mode LongRowMode) ParseOption {
	return func(o *parseOptions) { o.longRows = mode }
}

// Parse converts plaintext to a fresh table set plus the header order
// captured from each table's header line.
//
// Lines before any table marker are ignored. Within a section, single-field
// lines before the header are skipped, short data rows are right-padded
// with empty Text cells, and long rows are handled per the LongRowMode
// (default: truncated with a logged warning). Blank lines are skipped; a
// blank line is an empty line, so rows whose cells are all empty strings
// still round-trip. A repeated marker for a name already seen resets that
// table's rows but keeps its position.
func Parse(ctx context.Context, data string, opts ...ParseOption) (_ *Set, _ HeaderOrder, err error) {
	defer derrors.Wrap(&err, "savedata.Parse(%d bytes)", len(data))

	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	set := NewSet()
	order := HeaderOrder{}
	var cur *Table
	var headers []string

	for ln, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, Marker) {
			cur = set.Add(line[len(Marker):])
			cur.Rows = nil
			headers = nil
			continue
		}
		if cur == nil {
			continue
		}
		parts := strings.Split(line, "\t")
		if headers == nil {
			// The first multi-field line is the header. Anything
			// narrower before it is not tabular data.
			if len(parts) > 1 {
				headers = parts
				order[cur.Name] = parts
			}
			continue
		}
		if len(parts) > len(headers) {
			switch o.longRows {
			case LongRowReject:
				return nil, nil, fmt.Errorf("%w: table %q line %d has %d fields for %d columns",
					derrors.BadTableStructure, cur.Name, ln+1, len(parts), len(headers))
			case LongRowSkip:
				continue
			default:
				log.Warningf(ctx, "savedata: table %q line %d has %d fields for %d columns; truncating",
					cur.Name, ln+1, len(parts), len(headers))
				parts = parts[:len(headers)]
			}
		}
		row := make(Row, len(headers))
		for i, col := range headers {
			v := ""
			if i < len(parts) {
				v = parts[i]
			}
			row[col] = Infer(v)
		}
		cur.Rows = append(cur.Rows, row)
	}
	return set, order, nil
}
