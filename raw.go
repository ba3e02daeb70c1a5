package csvpeek

import (
	"io"
	"strconv"
	"strings"
)

func writeRaw(w io.Writer, t *Table) error {
	if t.Header != nil {
		if err := writeRawRow(w, t.Header); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := writeRawRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeRawRow quotes every field so embedded separators and quotes cannot
// shift the visible column count.
func writeRawRow(w io.Writer, row Row) error {
	quoted := make([]string, len(row))
	for i, field := range row {
		quoted[i] = strconv.Quote(field)
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
