// Package statement turns opaque statement documents into raw transactions:
// text extraction (with a fallback strategy), transaction locating by
// date/amount dialects, and statement-period resolution.
package statement

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Document is one opaque statement source: a display name (used as the
// source ID in transactions and reports) and a re-readable byte stream.
type Document interface {
	// Name returns the display name, e.g. the original filename.
	Name() string
	// Open returns a fresh reader over the document bytes. Every call
	// starts at the beginning.
	Open() (io.ReadCloser, error)
}

// FileDocument is a Document backed by a file on disk.
type FileDocument struct {
	Path string
}

func (d FileDocument) Name() string { return filepath.Base(d.Path) }

func (d FileDocument) Open() (io.ReadCloser, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("statement: opening %s: %w", d.Path, err)
	}
	return f, nil
}

// BytesDocument is a Document held in memory, used by tests and callers that
// already have the file contents.
type BytesDocument struct {
	DisplayName string
	Data        []byte
}

func (d BytesDocument) Name() string { return d.DisplayName }

func (d BytesDocument) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(d.Data)), nil
}

// readAll drains a fresh reader over doc.
func readAll(doc Document) ([]byte, error) {
	rc, err := doc.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("statement: reading %s: %w", doc.Name(), err)
	}
	return data, nil
}

// fileExt returns the lower-cased extension of the document name.
func fileExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
