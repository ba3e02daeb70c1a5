package csvpeek

import (
	"encoding/json"
	"io"
)

// document is the JSON and YAML shape of a Table. Column order is kept by
// using arrays rather than objects keyed by header name.
type document struct {
	Header Row   `json:"header,omitempty" yaml:"header,omitempty"`
	Rows   []Row `json:"rows" yaml:"rows"`
}

func newDocument(t *Table) document {
	rows := t.Rows
	if rows == nil {
		rows = []Row{}
	}
	return document{Header: t.Header, Rows: rows}
}

func writeJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(newDocument(t))
}
