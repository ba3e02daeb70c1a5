package csvpeek

import (
	"fmt"
	"io"
	"strings"
)

const (
	prettyVertical = "|"
	prettyCross    = "+"
	prettyRule     = "-"
)

// writePretty renders t as bar-framed, fixed-width columns. The header, when
// present, is followed by a dashed rule; data rows have none.
func writePretty(w io.Writer, t *Table, maxWidth int) error {
	widths := Widths(t.Header, t.Rows, maxWidth)
	if len(widths) == 0 {
		return nil
	}

	if t.Header != nil {
		if err := drawRow(w, t.Header, widths, maxWidth); err != nil {
			return err
		}
		if err := drawRule(w, widths); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := drawRow(w, row, widths, maxWidth); err != nil {
			return err
		}
	}
	return nil
}

// drawRule writes "+---+---+", each segment two wider than its column to
// cover the cell padding.
func drawRule(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString(prettyCross)
	for _, width := range widths {
		sb.WriteString(strings.Repeat(prettyRule, width+2))
		sb.WriteString(prettyCross)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// drawRow writes "| a | b |". Cells past the end of a short row are blank.
func drawRow(w io.Writer, cells Row, widths []int, maxWidth int) error {
	var sb strings.Builder
	sb.WriteString(prettyVertical)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(padRight(Ellipsis(cell, maxWidth), width))
		sb.WriteString(" ")
		sb.WriteString(prettyVertical)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
