// Package fs provides file-based persistence for the output document.
package fs

import (
	"context"
	"encoding/json"
	"os"

	"kbbiwords"
)

// DefaultFilename is the output path used when none is configured.
const DefaultFilename = "kbbiWords.json"

// Ensure Writer implements kbbiwords.DocumentWriter at compile time.
var _ kbbiwords.DocumentWriter = (*Writer)(nil)

// Writer writes documents as indented JSON files. The target file is
// created or truncated unconditionally; there is no atomic
// write-then-rename, so a failed write may leave a partial file.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDocument writes the document to path as JSON with two-space
// indentation. Non-ASCII characters are written literally, not escaped.
// File-level failures return an EINTERNAL error.
func (w *Writer) WriteDocument(ctx context.Context, doc *kbbiwords.Document, path string) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return kbbiwords.Errorf(kbbiwords.EINTERNAL, "create %s: %v", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		return kbbiwords.Errorf(kbbiwords.EINTERNAL, "encode %s: %v", path, err)
	}

	if err := f.Close(); err != nil {
		return kbbiwords.Errorf(kbbiwords.EINTERNAL, "close %s: %v", path, err)
	}

	return nil
}
