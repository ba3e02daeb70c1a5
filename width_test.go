package csvpeek_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/csvpeek"
)

func TestWidths(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 25)
	tests := map[string]struct {
		header csvpeek.Row
		rows   []csvpeek.Row
		max    int
		want   []int
	}{
		"header only": {
			header: csvpeek.Row{"name", "id"},
			max:    20,
			want:   []int{4, 2},
		},
		"rows widen header": {
			header: csvpeek.Row{"a", "bb"},
			rows:   []csvpeek.Row{{"ccc", "d"}, {"e", "ffff"}},
			max:    20,
			want:   []int{3, 4},
		},
		"no header": {
			rows: []csvpeek.Row{{"alpha"}, {"be"}},
			max:  20,
			want: []int{5},
		},
		"rows longer than header": {
			header: csvpeek.Row{"h1"},
			rows:   []csvpeek.Row{{"a", "bbbb"}},
			max:    20,
			want:   []int{2, 4},
		},
		"rows shorter than header": {
			header: csvpeek.Row{"h1", "h2", "h3"},
			rows:   []csvpeek.Row{{"abc"}},
			max:    20,
			want:   []int{3, 2, 2},
		},
		"clamped": {
			header: csvpeek.Row{"h"},
			rows:   []csvpeek.Row{{long}},
			max:    20,
			want:   []int{20},
		},
		"exactly max": {
			rows: []csvpeek.Row{{strings.Repeat("y", 20)}},
			max:  20,
			want: []int{20},
		},
		"no cap": {
			rows: []csvpeek.Row{{long}},
			max:  0,
			want: []int{25},
		},
		"wide runes": {
			rows: []csvpeek.Row{{"日本"}},
			max:  20,
			want: []int{4},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, csvpeek.Widths(tt.header, tt.rows, tt.max))
		})
	}
}

func TestWidthsEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, csvpeek.Widths(nil, nil, csvpeek.DefaultMaxWidth))
}

func TestWidthsIgnoreUnselectedRows(t *testing.T) {
	t.Parallel()
	// The long row is outside the head window and must not widen the column.
	input := "k\nshort\n" + strings.Repeat("z", 18) + "\n"
	tbl, err := csvpeek.Select(newSource(t, input, true), csvpeek.Head(1))
	if assert.NoError(t, err) {
		assert.Equal(t, []int{5}, csvpeek.Widths(tbl.Header, tbl.Rows, csvpeek.DefaultMaxWidth))
	}
}

func TestEllipsis(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		max   int
		want  string
	}{
		"short":      {input: "hello", max: 20, want: "hello"},
		"exact":      {input: strings.Repeat("a", 20), max: 20, want: strings.Repeat("a", 20)},
		"twenty-one": {input: strings.Repeat("a", 21), max: 20, want: strings.Repeat("a", 17) + "..."},
		"long":       {input: "Supercalifragilisticexpialidocious", max: 20, want: "Supercalifragilis..."},
		"empty":      {input: "", max: 20, want: ""},
		"tiny max":   {input: "abcdef", max: 3, want: "abc"},
		"no max":     {input: "abcdef", max: 0, want: "abcdef"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, csvpeek.Ellipsis(tt.input, tt.max))
		})
	}
}

func TestEllipsisLength(t *testing.T) {
	t.Parallel()
	got := csvpeek.Ellipsis(strings.Repeat("q", 25), 20)
	assert.Len(t, got, 20)
	assert.True(t, strings.HasSuffix(got, "..."))
	for n := range 21 {
		s := strings.Repeat("w", n)
		assert.Equal(t, s, csvpeek.Ellipsis(s, 20))
	}
}
