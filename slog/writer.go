package slog

import (
	"context"
	"log/slog"
	"time"

	"kbbiwords"
)

// Ensure LoggingWriter implements kbbiwords.DocumentWriter.
var _ kbbiwords.DocumentWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a DocumentWriter with debug logging.
type LoggingWriter struct {
	next   kbbiwords.DocumentWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next kbbiwords.DocumentWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteDocument logs the write and delegates to the wrapped writer.
func (w *LoggingWriter) WriteDocument(ctx context.Context, doc *kbbiwords.Document, path string) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write document",
			"path", path,
			"words", len(doc.KBBI),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, doc, path)
}
