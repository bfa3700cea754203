/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: table.go
Description: In-memory delimited table. Holds a normalized header and row-major typed
cells produced by the inference package, and exposes copy-returning row and column
accessors used by the statistics aggregator.
*/

package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/kleascm/statust/pkg/inference"
	"github.com/kleascm/statust/pkg/types"
)

var (
	// ErrSourceUnavailable means the source could not be opened or read
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrDecodeFailure means a line was not valid UTF-8 text
	ErrDecodeFailure = errors.New("line is not valid text")
	// ErrIndexOutOfRange means a row or column index is past the table bounds
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrRowArity means a row is too short for the requested column
	ErrRowArity = errors.New("row shorter than header")
)

// DefaultDelimiter separates fields when no other delimiter is configured
const DefaultDelimiter = ","

// Option configures table loading
type Option func(*options)

type options struct {
	delimiter string
}

// WithDelimiter sets the field delimiter. An empty delimiter keeps the default.
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		if delimiter != "" {
			o.delimiter = delimiter
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Table is a header plus rows of inferred values. It is not modified
// after construction; accessors hand out copies.
type Table struct {
	header []string
	data   [][]types.Value
}

// New builds a table from an already normalized header and typed rows
func New(header []string, rows [][]types.Value) *Table {
	t := &Table{
		header: append([]string(nil), header...),
		data:   make([][]types.Value, len(rows)),
	}
	for i, row := range rows {
		t.data[i] = append([]types.Value(nil), row...)
	}
	return t
}

// Read loads a table from a file. Compressed and HTML sources are
// recognized by extension.
func Read(path string, opts ...Option) (*Table, error) {
	o := buildOptions(opts)

	src, err := OpenSource(path, o.delimiter)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ReadLines(src, opts...)
}

// ReadLines builds a table from raw delimited lines. The first line is the
// header; rows are accepted whatever their arity.
func ReadLines(r io.Reader, opts ...Option) (*Table, error) {
	o := buildOptions(opts)
	t := &Table{}

	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read line %d: %w: %w", lineNo, ErrSourceUnavailable, err)
		}
		if line == "" && err == io.EOF {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrDecodeFailure)
		}

		fields := strings.Split(line, o.delimiter)
		if lineNo == 1 {
			t.header = make([]string, len(fields))
			for i, field := range fields {
				t.header[i] = inference.NormalizeHeader(field)
			}
		} else {
			t.data = append(t.data, inference.InferRow(fields))
		}

		if err == io.EOF {
			break
		}
	}

	return t, nil
}

// Header returns a copy of the column names
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int { return len(t.data) }

// NumCols returns the header length
func (t *Table) NumCols() int { return len(t.header) }

// Row returns a copy of row i, or false when i is out of range
func (t *Table) Row(i int) ([]types.Value, bool) {
	if i < 0 || i >= len(t.data) {
		return nil, false
	}
	return append([]types.Value(nil), t.data[i]...), true
}

// Col returns the value at column i for every row. Indexes past the header
// give ErrIndexOutOfRange; a row without that cell gives ErrRowArity.
func (t *Table) Col(i int) ([]types.Value, error) {
	if i < 0 || i >= len(t.header) {
		return nil, fmt.Errorf("column %d of %d: %w", i, len(t.header), ErrIndexOutOfRange)
	}

	col := make([]types.Value, len(t.data))
	for r, row := range t.data {
		if i >= len(row) {
			// Rows are numbered as in the file, the header being line 1.
			return nil, fmt.Errorf("line %d has %d cells, column %q needs %d: %w",
				r+2, len(row), t.header[i], i+1, ErrRowArity)
		}
		col[r] = row[i]
	}
	return col, nil
}

// ColumnIndex returns the position of the last column called name, matching
// the way a later duplicate replaces an earlier one in reports.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i := len(t.header) - 1; i >= 0; i-- {
		if t.header[i] == name {
			return i, true
		}
	}
	return -1, false
}
