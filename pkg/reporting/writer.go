/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: Report sink for describe results. Renders a report as text blocks, JSON or
an HTML page, and writes it to a file that is optionally gzip or zstd compressed based
on its extension.
*/

package reporting

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/kleascm/statust/pkg/analysis"
	"github.com/kleascm/statust/pkg/frame"
)

// ErrUnknownFormat means the report format name is not recognized
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects the report rendering
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// ParseFormat validates a format name. Empty means text.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// FormatForPath infers the format from a file name, looking past a
// compression suffix
func FormatForPath(path string) Format {
	base := strings.ToLower(filepath.Base(path))
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, ".zst")

	switch filepath.Ext(base) {
	case ".json":
		return FormatJSON
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// Document is a report plus the metadata rendered around it
type Document struct {
	Title       string
	Source      string
	SessionID   string
	GeneratedAt time.Time
	Report      *analysis.Report
}

// NewDocument wraps a report with a fresh session ID and timestamp
func NewDocument(source string, report *analysis.Report) *Document {
	return &Document{
		Title:       "statust describe",
		Source:      source,
		SessionID:   uuid.New().String(),
		GeneratedAt: time.Now(),
		Report:      report,
	}
}

// Write renders doc to w in the given format
func Write(w io.Writer, format Format, doc *Document) error {
	switch format {
	case FormatText, "":
		return WriteText(w, doc.Report)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatHTML:
		return writeHTML(w, doc)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteText writes one block per column, each preceded by a rule line
func WriteText(w io.Writer, report *analysis.Report) error {
	for _, res := range report.Results() {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", frame.RuleLine, res.Block()); err != nil {
			return err
		}
	}
	return nil
}

// FileWriter writes reports to a file
type FileWriter struct {
	Path   string
	Format Format
	Source string
}

// NewFileWriter creates a writer whose format follows the path extension
func NewFileWriter(path, source string) *FileWriter {
	return &FileWriter{
		Path:   path,
		Format: FormatForPath(path),
		Source: source,
	}
}

// WriteOne writes a single column result
func (fw *FileWriter) WriteOne(res analysis.Result) error {
	return fw.WriteMany(analysis.NewReport(res))
}

// WriteMany writes a full report
func (fw *FileWriter) WriteMany(report *analysis.Report) error {
	if dir := filepath.Dir(fw.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	file, err := os.Create(fw.Path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	out, err := compressedWriter(file, fw.Path)
	if err != nil {
		return fmt.Errorf("failed to set up report compression: %w", err)
	}

	if err := Write(out, fw.Format, NewDocument(fw.Source, report)); err != nil {
		out.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return file.Close()
}

// compressedWriter wraps file in a compressor chosen by extension. Closing
// the result flushes the compressor but leaves the file open.
func compressedWriter(file *os.File, path string) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return gzip.NewWriter(file), nil
	case ".zst":
		return zstd.NewWriter(file)
	default:
		return nopWriteCloser{file}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
