/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: source.go
Description: Line sources for table loading. Opens plain delimited files as well as gzip
and zstd compressed files, and flattens the first table of an HTML document into
delimited lines so every source feeds the same reader.
*/

package frame

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// SourceFormat names how a source file is decoded before line splitting
type SourceFormat string

const (
	SourcePlain SourceFormat = "plain"
	SourceGzip  SourceFormat = "gzip"
	SourceZstd  SourceFormat = "zstd"
	SourceHTML  SourceFormat = "html"
)

// DetectSourceFormat picks a source format from the file extension
func DetectSourceFormat(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return SourceGzip
	case ".zst", ".zstd":
		return SourceZstd
	case ".html", ".htm":
		return SourceHTML
	default:
		return SourcePlain
	}
}

// OpenSource opens path and returns a reader yielding raw text lines.
// The caller closes the returned reader.
func OpenSource(path string, delimiter string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w: %w", path, ErrSourceUnavailable, err)
	}

	switch DetectSourceFormat(path) {
	case SourceGzip:
		zr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to open gzip stream %s: %w: %w", path, ErrSourceUnavailable, err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, file}}, nil

	case SourceZstd:
		dec, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to open zstd stream %s: %w: %w", path, ErrSourceUnavailable, err)
		}
		rc := dec.IOReadCloser()
		return &stackedCloser{Reader: rc, closers: []io.Closer{rc, file}}, nil

	case SourceHTML:
		defer file.Close()
		lines, err := HTMLTableLines(file, delimiter)
		if err != nil {
			return nil, fmt.Errorf("failed to parse html %s: %w: %w", path, ErrSourceUnavailable, err)
		}
		return io.NopCloser(strings.NewReader(lines)), nil

	default:
		return file, nil
	}
}

// HTMLTableLines renders the first <table> in an HTML document as
// delimited text, one line per <tr>. Cell text is trimmed since it
// carries the markup's indentation.
func HTMLTableLines(r io.Reader, delimiter string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return "", fmt.Errorf("no <table> element found")
	}

	var b strings.Builder
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("th, td").Map(func(_ int, cell *goquery.Selection) string {
			return strings.TrimSpace(cell.Text())
		})
		b.WriteString(strings.Join(cells, delimiter))
		b.WriteByte('\n')
	})
	return b.String(), nil
}

// stackedCloser closes a decoder before the file underneath it
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
