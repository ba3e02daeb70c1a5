package csvpeek

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, t *Table) error {
	if t.Header != nil {
		if _, err := fmt.Fprintln(w, strings.Join(t.Header, "\t")); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
