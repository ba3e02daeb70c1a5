package csvpeek

import (
	"fmt"
	"io"
	"slices"
	"text/template"
)

// TemplateRow is the value a go-template format executes on, once per data
// row.
type TemplateRow struct {
	Index  int // 0-based position among the rendered rows
	Fields Row
	Header Row
}

// Field returns the field under the header column called name, or "" when
// there is no such column or the row is too short.
func (r TemplateRow) Field(name string) string {
	i := slices.Index(r.Header, name)
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

func writeGoTemplate(w io.Writer, tmplStr string, t *Table) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for i, row := range t.Rows {
		if err := tmpl.Execute(w, TemplateRow{Index: i, Fields: row, Header: t.Header}); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
