package csvpeek

import (
	"encoding/json"
	"io"
)

// writeJSONL writes one JSON array per line, header first.
func writeJSONL(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if t.Header != nil {
		if err := enc.Encode(t.Header); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
