package mock

import (
	"context"

	"kbbiwords"
)

var _ kbbiwords.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of kbbiwords.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *kbbiwords.Document, path string) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *kbbiwords.Document, path string) error {
	return w.WriteDocumentFn(ctx, doc, path)
}
