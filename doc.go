// Package csvpeek selects and renders windows of delimited text files.
//
// A [Source] decodes a CSV/TSV stream into rows of text fields and can rewind
// to its start. [Select] picks the rows to show for a [Selection]:
//
//   - [Head] → the first N data rows
//   - [Tail] → the last N data rows, found with a counting pass and a rewind
//   - [Column] → one field per row, located by [ByIndex] or [ByName]
//
// The resulting [Table] is rendered with [Write] or [Marshal]:
//
//	f, err := csvpeek.Open("wine.csv", csvpeek.Options{Comma: ',', HasHeader: true})
//	if err != nil { ... }
//	defer f.Close()
//	t, err := csvpeek.Select(f, csvpeek.Tail(5))
//	if err != nil { ... }
//	out, err := csvpeek.Marshal(csvpeek.Pretty, t)
//
// # Raw
//
// Each row on its own line, every field Go-quoted and joined by commas:
//
//	"a","b","c"
//
// # Pretty
//
// Fixed-width columns framed with bars. Column widths come from [Widths] and
// never exceed [DefaultMaxWidth] (see [WithMaxWidth]); longer fields are cut
// by [Ellipsis]:
//
//	| a     | b |
//	+-------+---+
//	| alpha | 1 |
//
// # Other formats
//
// CSV, TSV, Markdown, HTML, JSON, JSONL, YAML and [GoTemplate] are also
// available. Use [ParseFormat] to convert a CLI flag string into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrFileUnreadable]: the input could not be opened
//   - [ErrMalformedRecord]: the decoder rejected a record
//   - [ErrMissingHeader]: a header was required but the source has none
//   - [ErrColumnNotFound]: no header field matches the column name
//   - [ErrOutOfRange]: a column index beyond a row's fields
//   - [ErrInvalidSelection]: a negative row count
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidTemplate]: invalid go-template syntax
package csvpeek
