package matrix

import (
	"fmt"
	"strings"
)

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
	fmtValue    = "%.2f"
)

// String renders m as a bracketed grid, one "[a, b, ...]" line per row.
// Display only.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString(fmtRowOpen)
		for j, v := range m.data[i*m.cols : (i+1)*m.cols] {
			if j > 0 {
				b.WriteString(fmtSep)
			}
			fmt.Fprintf(&b, fmtValue, v)
		}
		b.WriteString(fmtRowClose)
	}
	return b.String()
}

// FormatRow renders every entry of m on a single bracketed line in
// row-major order, e.g. "[ 0.01, 0.97, 0.02 ]". An empty matrix renders
// as "[]".
//
// Used by the example drivers to print a transposed output vector.
func FormatRow(m *Matrix) string {
	if len(m.data) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[ ")
	for i, v := range m.data {
		if i > 0 {
			b.WriteString(fmtSep)
		}
		fmt.Fprintf(&b, fmtValue, v)
	}
	b.WriteString(" ]")
	return b.String()
}
