package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows as space-aligned columns without borders. Cell widths
// are measured with ANSI escapes stripped, so styled cells line up with
// plain ones.
type Table struct {
	cols    int
	rows    [][]string
	padding int
}

// NewTable creates a table with a fixed number of columns.
func NewTable(cols int) *Table {
	return &Table{cols: cols, padding: 2}
}

// SetPadding sets the gap between columns.
func (tb *Table) SetPadding(padding int) {
	tb.padding = padding
}

// AddRow appends a row. Cells beyond the column count are dropped; missing
// cells render empty.
func (tb *Table) AddRow(cells ...string) {
	row := make([]string, tb.cols)
	copy(row, cells)
	tb.rows = append(tb.rows, row)
}

// String renders the rows left-aligned. The last column is never padded.
func (tb *Table) String() string {
	if len(tb.rows) == 0 {
		return ""
	}

	widths := tb.columnWidths()
	gap := strings.Repeat(" ", tb.padding)

	var b strings.Builder
	for _, row := range tb.rows {
		parts := make([]string, len(row))
		for i, cell := range row {
			if i < len(row)-1 {
				cell += strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			}
			parts[i] = cell
		}
		b.WriteString(strings.Join(parts, gap))
		b.WriteByte('\n')
	}
	return b.String()
}

func (tb *Table) columnWidths() []int {
	widths := make([]int, tb.cols)
	for _, row := range tb.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// List renders indented bullet items, one per line.
type List struct {
	items  []string
	indent string
	bullet string
}

// NewList creates a list with a two-space indent and a dot bullet.
func NewList() *List {
	return &List{indent: "  ", bullet: "•"}
}

// SetIndent sets the indentation string.
func (ls *List) SetIndent(indent string) {
	ls.indent = indent
}

// SetBullet sets the bullet character.
func (ls *List) SetBullet(bullet string) {
	ls.bullet = bullet
}

// Add appends an item.
func (ls *List) Add(item string) {
	ls.items = append(ls.items, item)
}

// String renders the list.
func (ls *List) String() string {
	var b strings.Builder
	for _, item := range ls.items {
		fmt.Fprintf(&b, "%s%s %s\n", ls.indent, ls.bullet, item)
	}
	return b.String()
}
