package csvpeek

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

func TestWriteRawRow(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, writeRawRow(&buf, Row{"a", "b,c", `"`}))
	assert.Equal(t, `"a","b,c","\""`+"\n", buf.String())
}

func TestWriteRawRowEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, writeRawRow(&buf, Row{}))
	assert.Equal(t, "\n", buf.String())
}

func TestWriteRawRowError(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, writeRawRow(&errWriterInternal{}, Row{"a"}), errInternalWrite)
}

func TestPadRight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abc", padRight("abc", 2))
	// "你" is two columns wide.
	assert.Equal(t, "你 ", padRight("你", 3))
}

func TestColCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, colCount(nil, nil))
	assert.Equal(t, 2, colCount(Row{"a", "b"}, []Row{{"1"}}))
	assert.Equal(t, 3, colCount(Row{"a"}, []Row{{"1"}, {"1", "2", "3"}}))
}

func TestDrawRule(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, drawRule(&buf, []int{1, 4}))
	assert.Equal(t, "+---+------+\n", buf.String())
}

func TestDrawRowPadsMissingCells(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, drawRow(&buf, Row{"x"}, []int{2, 1}, DefaultMaxWidth))
	assert.Equal(t, "| x  |   |\n", buf.String())
}

func TestDrawErrors(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	assert.Error(t, drawRule(w, []int{1}))
	assert.Error(t, drawRow(w, Row{"a"}, []int{1}, DefaultMaxWidth))
}

func TestFieldAt(t *testing.T) {
	t.Parallel()
	got, err := fieldAt(Row{"a", "b"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = fieldAt(Row{"a", "b"}, 2)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "column 3 of 2")

	_, err = fieldAt(Row{"a"}, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestLocatorResolve(t *testing.T) {
	t.Parallel()
	i, err := ByName("b").resolve(Row{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = ByIndex(3).resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = ByName("b").resolve(nil)
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestWriteCSVLargeDataError(t *testing.T) {
	t.Parallel()
	// Large data exceeds the bufio buffer (4096 bytes), failing before Flush.
	big := strings.Repeat("x", 5000)
	err := writeCSV(&errWriterInternal{}, &Table{Rows: []Row{{big}}})
	assert.Error(t, err)
}

func TestWriteMarkdownPadsShortRows(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, writeMarkdown(&buf, &Table{Header: Row{"a", "b"}, Rows: []Row{{"1"}}}))
	assert.Equal(t, "| a   | b   |\n| --- | --- |\n| 1   |     |\n", buf.String())
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
