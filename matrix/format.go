// SPDX-License-Identifier: MIT

// Package matrix: textual rendering.

package matrix

import "strings"

// Formatting literals.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtEllipsis = "…"

	// _maxRender caps the rendered window at 5×5 cells; anything beyond
	// is summarized with an ellipsis marker.
	_maxRender = 5
)

// String renders at most a _maxRender×_maxRender window of cells, one row
// per line, with "…" marking truncated columns and a final "…" line for
// truncated rows. Intended for diagnostics, not hot paths.
// Complexity: O(min(r,5) * min(c,5)).
func (m *Matrix) String() string {
	if m == nil {
		return _fmtRowOpen + _fmtRowClose
	}
	rs, cs := m.r, m.c
	if rs > _maxRender {
		rs = _maxRender
	}
	if cs > _maxRender {
		cs = _maxRender
	}
	var b strings.Builder
	for i := 0; i < rs; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < cs; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.cells[base+j].String())
		}
		if cs < m.c {
			b.WriteString(_fmtSep)
			b.WriteString(_fmtEllipsis)
		}
		b.WriteString(_fmtRowClose)
	}
	if rs < m.r {
		b.WriteString(_fmtEllipsis)
		b.WriteString("\n")
	}

	return b.String()
}
