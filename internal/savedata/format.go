// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package savedata

import "strings"

// Format converts a table set back to plaintext, emitting tables in set
// order. Each table starts with its marker line; a non-empty table is
// followed by its header line and one tab-joined line per row; a blank
// separator line ends every table, empty or not.
//
// Columns follow order.Columns: the order captured at parse time when one
// exists, even if individual rows' key sets differ. A row's missing
// columns render as empty strings, symmetric with the padding rule in
// Parse, so Parse(Format(set)) reproduces the set whenever a header order
// was captured.
func Format(set *Set, order HeaderOrder) string {
	var sb strings.Builder
	for _, t := range set.Tables() {
		sb.WriteString(Marker)
		sb.WriteString(t.Name)
		sb.WriteByte('\n')
		if len(t.Rows) > 0 {
			cols := order.Columns(t)
			sb.WriteString(strings.Join(cols, "\t"))
			sb.WriteByte('\n')
			for _, row := range t.Rows {
				for i, col := range cols {
					if i > 0 {
						sb.WriteByte('\t')
					}
					if c, ok := row[col]; ok {
						sb.WriteString(c.String())
					}
				}
				sb.WriteByte('\n')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
