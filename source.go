package csvpeek

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source decodes a delimited stream into rows and can rewind to its start.
// Records yields data rows from the current position; the header, when the
// source declares one, is never yielded by Records.
type Source interface {
	Header() Row
	Records() iter.Seq2[Row, error]
	Rewind() error
}

// Options configures how a [Reader] decodes its input.
type Options struct {
	// Comma is the field separator. When zero, ',' is used.
	Comma rune

	// HasHeader makes the first record of the stream the header.
	HasHeader bool
}

// Reader is a [Source] over an io.ReadSeeker. It is not safe for concurrent
// use.
type Reader struct {
	rs     io.ReadSeeker
	opt    Options
	cr     *csv.Reader
	header Row
}

// NewReader returns a Reader positioned on the first data row of rs.
func NewReader(rs io.ReadSeeker, opt Options) (*Reader, error) {
	if opt.Comma == 0 {
		opt.Comma = ','
	}
	if !validComma(opt.Comma) {
		return nil, fmt.Errorf("invalid separator %q", opt.Comma)
	}
	r := &Reader{rs: rs, opt: opt}
	if err := r.start(); err != nil {
		return nil, err
	}
	return r, nil
}

func validComma(r rune) bool {
	return r != '"' && r != '\r' && r != '\n' && r != 0xFFFD
}

// start builds a fresh decoder over the stream and consumes the header.
// The stream must already be at offset zero.
func (r *Reader) start() error {
	// A leading byte-order mark is dropped; everything else passes through
	// untouched.
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r.rs, dec))
	cr.Comma = r.opt.Comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	r.cr = cr
	r.header = nil

	if !r.opt.HasHeader {
		return nil
	}
	rec, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return decodeError(err)
	}
	if err := checkUTF8(cr, rec); err != nil {
		return err
	}
	r.header = Row(rec)
	return nil
}

// Header returns the header row, or nil when the source has none.
func (r *Reader) Header() Row { return r.header }

// Records yields the remaining data rows in order. Iteration stops after the
// first error.
func (r *Reader) Records() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for {
			rec, err := r.cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err == nil {
				err = checkUTF8(r.cr, rec)
			} else {
				err = decodeError(err)
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(Row(rec), nil) {
				return
			}
		}
	}
}

// Rewind moves back to the start of the stream and re-reads the header.
func (r *Reader) Rewind() error {
	if _, err := r.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rewind: %w", ErrFileUnreadable, err)
	}
	return r.start()
}

// checkUTF8 rejects records holding fields that are not valid UTF-8.
func checkUTF8(cr *csv.Reader, rec []string) error {
	for i, field := range rec {
		if !utf8.ValidString(field) {
			line, col := cr.FieldPos(i)
			return fmt.Errorf("%w: invalid UTF-8 on line %d, column %d", ErrMalformedRecord, line, col)
		}
	}
	return nil
}

func decodeError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return fmt.Errorf("%w: %w", ErrFileUnreadable, err)
}

// File is a [Reader] over a file on disk.
type File struct {
	*Reader
	f *os.File
}

// Open opens path for reading. Filesystem errors are wrapped with
// [ErrFileUnreadable] and remain matchable with errors.Is (for example
// fs.ErrNotExist).
func Open(path string, opt Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	r, err := NewReader(f, opt)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &File{Reader: r, f: f}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.f.Name() }

// Close releases the underlying file handle.
func (f *File) Close() error { return f.f.Close() }
