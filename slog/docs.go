package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/docs"
	"github.com/google/uuid"
)

var _ docsearch.DocsService = (*LoggingDocsService)(nil)

// LoggingDocsService wraps a DocsService with request logging. Each call
// gets a request id; the output hash makes identical bundles easy to spot.
type LoggingDocsService struct {
	next   docsearch.DocsService
	logger *slog.Logger
}

// NewLoggingDocsService creates a new LoggingDocsService.
func NewLoggingDocsService(next docsearch.DocsService, logger *slog.Logger) *LoggingDocsService {
	return &LoggingDocsService{next: next, logger: logger}
}

// GetDocs delegates to the wrapped service and logs the request.
func (s *LoggingDocsService) GetDocs(ctx context.Context, query, library string) (out string, err error) {
	requestID := uuid.NewString()
	defer func(begin time.Time) {
		attrs := []any{
			"request_id", requestID,
			"library", library,
			"query", query,
			"chars", len([]rune(out)),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "err", docsearch.ErrorMessage(err), "code", docsearch.ErrorCode(err))
		} else {
			attrs = append(attrs, "hash", docs.ContentHash(out))
		}
		s.logger.Log(ctx, levelFor(err), "get docs", attrs...)
	}(time.Now())
	return s.next.GetDocs(ctx, query, library)
}
