package logger

import (
	"fmt"
	"io"
	"strings"
)

type Table struct {
	out         io.Writer
	headers     []string
	rows        [][]string
	columnWidth []int
}

func NewTable(headers []string, out io.Writer) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	return &Table{
		out:         out,
		headers:     headers,
		columnWidth: widths,
	}
}

func (t *Table) AddRow(cells ...string) {
	if len(cells) > len(t.headers) {
		cells = cells[:len(t.headers)]
	} else if len(cells) < len(t.headers) {
		padded := make([]string, len(t.headers))
		copy(padded, cells)
		cells = padded
	}

	for i, cell := range cells {
		if len(cell) > t.columnWidth[i] {
			t.columnWidth[i] = len(cell)
		}
	}

	t.rows = append(t.rows, cells)
}

func (t *Table) Print() {
	var sb strings.Builder

	sb.WriteString(t.border("┌", "┬", "┐"))
	t.writeRow(&sb, t.headers)
	sb.WriteString(t.border("├", "┼", "┤"))

	for _, row := range t.rows {
		t.writeRow(&sb, row)
	}

	sb.WriteString(t.border("└", "┴", "┘"))

	fmt.Fprint(t.out, sb.String())
}

func (t *Table) border(left, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range t.columnWidth {
		sb.WriteString(strings.Repeat("─", width+2))
		if i < len(t.columnWidth)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
	return sb.String()
}

func (t *Table) writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("│")
	for i, cell := range cells {
		sb.WriteString(fmt.Sprintf(" %-*s │", t.columnWidth[i], cell))
	}
	sb.WriteString("\n")
}
