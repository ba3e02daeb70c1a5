package csvpeek

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

func writeMarkdown(w io.Writer, t *Table) error {
	if t.Header == nil {
		return fmt.Errorf("%w: format %q requires a header row", ErrMissingHeader, Markdown)
	}

	header := escapeMarkdown(t.Header)
	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = escapeMarkdown(row)
	}

	// Minimum 3 for the separator dashes.
	widths := Widths(header, rows, 0)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdown(row Row) Row {
	out := make(Row, len(row))
	for i, cell := range row {
		out[i] = markdownEscaper.Replace(cell)
	}
	return out
}

func writeMarkdownRow(w io.Writer, cells Row, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = cell + strings.Repeat(" ", max(0, width-runewidth.StringWidth(cell)))
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
