package csvpeek

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultMaxWidth is the widest a pretty column may be, in display columns.
const DefaultMaxWidth = 20

// Widths returns one display width per column of header and rows. Each width
// is the widest field in that column, capped at maxWidth; a maxWidth of zero
// or less means no cap. Rows may be shorter or longer than the header;
// missing fields contribute nothing.
func Widths(header Row, rows []Row, maxWidth int) []int {
	widths := make([]int, colCount(header, rows))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	if maxWidth > 0 {
		for i, w := range widths {
			if w > maxWidth {
				widths[i] = maxWidth
			}
		}
	}
	return widths
}

func colCount(header Row, rows []Row) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Ellipsis shortens s to at most maxWidth display columns. Longer strings
// keep their first maxWidth-3 columns followed by "...". Strings that fit, or
// a maxWidth of zero or less, are returned unchanged.
func Ellipsis(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// padRight left-justifies s in a field of width display columns.
func padRight(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
