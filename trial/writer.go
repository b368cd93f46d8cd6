package trial

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Writer streams trial records as CSV lines, optionally preceded by the
// column header. Records are flushed as they arrive, so a run killed
// partway through keeps its completed trials.
type Writer struct {
	csv  *csv.Writer
	file *os.File
}

// NewWriter wraps an output stream.
func NewWriter(w io.Writer, header bool) (*Writer, error) {
	writer := &Writer{csv: csv.NewWriter(w)}
	if header {
		if err := writer.csv.Write(Header); err != nil {
			return nil, fmt.Errorf("failed to write record header: %w", err)
		}
		writer.csv.Flush()
		if err := writer.csv.Error(); err != nil {
			return nil, fmt.Errorf("failed to write record header: %w", err)
		}
	}
	return writer, nil
}

// NewFileWriter creates path and streams records into it.
func NewFileWriter(path string, header bool) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	writer, err := NewWriter(f, header)
	if err != nil {
		f.Close()
		return nil, err
	}
	writer.file = f
	return writer, nil
}

// Write appends one record.
func (w *Writer) Write(record Record) error {
	if err := w.csv.Write(record.Fields()); err != nil {
		return fmt.Errorf("failed to write record row: %w", err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("failed to flush record row: %w", err)
	}
	return nil
}

// Close closes the output file when the writer owns one.
func (w *Writer) Close() error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
	}
	return nil
}
