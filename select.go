package csvpeek

import (
	"fmt"
	"slices"
	"strconv"
)

// Mode identifies how a [Selection] picks rows.
type Mode int

const (
	ModeHead Mode = iota
	ModeTail
	ModeColumn
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeHead:
		return "head"
	case ModeTail:
		return "tail"
	case ModeColumn:
		return "column"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Locator references a single column, either by 1-based index or by header
// name.
type Locator struct {
	name   string
	index  int
	byName bool
}

// ByIndex locates the column at 1-based position i.
func ByIndex(i int) Locator { return Locator{index: i} }

// ByName locates the header field equal to name. Matching is exact and
// case-sensitive.
func ByName(name string) Locator { return Locator{name: name, byName: true} }

// String returns the locator as given on the command line.
func (l Locator) String() string {
	if l.byName {
		return strconv.Quote(l.name)
	}
	return strconv.Itoa(l.index)
}

// resolve returns the 0-based column index. Index locators are not checked
// against any row here; range errors surface on first access.
func (l Locator) resolve(header Row) (int, error) {
	if !l.byName {
		return l.index - 1, nil
	}
	if header == nil {
		return 0, fmt.Errorf("%w: column %q needs a header row", ErrMissingHeader, l.name)
	}
	i := slices.Index(header, l.name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, l.name)
	}
	return i, nil
}

// Selection describes which part of a source to show.
type Selection struct {
	Mode    Mode
	N       int
	Locator Locator
}

// Head selects the first n data rows.
func Head(n int) Selection { return Selection{Mode: ModeHead, N: n} }

// Tail selects the last n data rows.
func Tail(n int) Selection { return Selection{Mode: ModeTail, N: n} }

// Column selects one field from every row.
func Column(l Locator) Selection { return Selection{Mode: ModeColumn, Locator: l} }

// String describes the selection for logs.
func (s Selection) String() string {
	if s.Mode == ModeColumn {
		return "column(" + s.Locator.String() + ")"
	}
	return s.Mode.String() + "(" + strconv.Itoa(s.N) + ")"
}

// Select reads src according to sel and returns the rows to render. src must
// be positioned on its first data row, as returned by [NewReader] or [Open].
//
// Row counts larger than the data clamp silently. Any decode error aborts the
// whole selection.
func Select(src Source, sel Selection) (*Table, error) {
	switch sel.Mode {
	case ModeHead:
		return selectHead(src, sel.N)
	case ModeTail:
		return selectTail(src, sel.N)
	case ModeColumn:
		return selectColumn(src, sel.Locator)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSelection, sel.Mode)
	}
}

func checkCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative row count %d", ErrInvalidSelection, n)
	}
	return nil
}

func selectHead(src Source, n int) (*Table, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	t := &Table{Header: src.Header()}
	if n == 0 {
		return t, nil
	}
	rows, err := take(src, 0, n)
	if err != nil {
		return nil, err
	}
	t.Rows = rows
	return t, nil
}

func selectTail(src Source, n int) (*Table, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	if n == 0 {
		return &Table{Header: src.Header()}, nil
	}

	total, err := count(src)
	if err != nil {
		return nil, err
	}
	show := min(n, total)
	skip := total - show

	// The header is re-read by Rewind, so skip only counts data rows.
	if err := src.Rewind(); err != nil {
		return nil, err
	}
	t := &Table{Header: src.Header()}
	if show == 0 {
		return t, nil
	}
	rows, err := take(src, skip, show)
	if err != nil {
		return nil, err
	}
	t.Rows = rows
	return t, nil
}

// count consumes src to the end and returns the number of data rows.
func count(src Source) (int, error) {
	n := 0
	for _, err := range src.Records() {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// take skips skip data rows, then collects up to n rows.
func take(src Source, skip, n int) ([]Row, error) {
	rows := make([]Row, 0, min(n, 1024))
	seen := 0
	for row, err := range src.Records() {
		if err != nil {
			return nil, err
		}
		if seen < skip {
			seen++
			continue
		}
		rows = append(rows, row)
		if len(rows) == n {
			break
		}
	}
	return rows, nil
}

func selectColumn(src Source, l Locator) (*Table, error) {
	header := src.Header()
	idx, err := l.resolve(header)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	if header != nil {
		field, err := fieldAt(header, idx)
		if err != nil {
			return nil, fmt.Errorf("%w in header", err)
		}
		t.Header = Row{field}
	}

	line := 0
	for row, err := range src.Records() {
		if err != nil {
			return nil, err
		}
		line++
		field, err := fieldAt(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%w in data row %d", err, line)
		}
		t.Rows = append(t.Rows, Row{field})
	}
	return t, nil
}

func fieldAt(row Row, idx int) (string, error) {
	if idx < 0 || idx >= len(row) {
		return "", fmt.Errorf("%w: column %d of %d", ErrOutOfRange, idx+1, len(row))
	}
	return row[idx], nil
}
