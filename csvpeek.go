package csvpeek

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrFileUnreadable    = errors.New("file unreadable")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrMissingHeader     = errors.New("missing header")
	ErrColumnNotFound    = errors.New("column not found")
	ErrOutOfRange        = errors.New("column index out of range")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Row is an ordered sequence of text fields.
type Row []string

// Table is a selected header and set of rows, ready to render.
// Header is nil when the source has no header row.
type Table struct {
	Header Row
	Rows   []Row
}

// HasHeader reports whether the table carries a header row.
func (t *Table) HasHeader() bool { return t.Header != nil }

// Format represents an output format.
type Format string

const (
	Raw      Format = "raw"
	Pretty   Format = "pretty"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Raw, Pretty, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each data row using a Go
// text/template. See [TemplateRow] for the value the template executes on.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

type renderOptions struct {
	maxWidth int
}

// Option tunes rendering.
type Option func(*renderOptions)

// WithMaxWidth caps pretty column widths at n display columns. Values of zero
// or less keep [DefaultMaxWidth].
func WithMaxWidth(n int) Option {
	return func(o *renderOptions) {
		if n > 0 {
			o.maxWidth = n
		}
	}
}

func newRenderOptions(opts []Option) renderOptions {
	o := renderOptions{maxWidth: DefaultMaxWidth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Write renders t in format f and writes it to w.
func Write(w io.Writer, f Format, t *Table, opts ...Option) error {
	if t == nil {
		t = &Table{}
	}
	o := newRenderOptions(opts)
	switch f {
	case Raw:
		return writeRaw(w, t)
	case Pretty:
		return writePretty(w, t, o.maxWidth)
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	case HTML:
		return writeHTML(w, t)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes. Nothing is returned
// when rendering fails, so callers never emit a partial table.
func Marshal(f Format, t *Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
