package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sift"
	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestID returns the request ID LoggingService attached to ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Ensure LoggingService implements sift.Service.
var _ sift.Service = (*LoggingService)(nil)

// LoggingService wraps a Service with logging. Each call is tagged with a
// request_id that LoggingFetcher repeats on the fetch it causes.
type LoggingService struct {
	next   sift.Service
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next sift.Service, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// SearchWeb delegates to the wrapped service and logs the operation.
func (s *LoggingService) SearchWeb(ctx context.Context, query string, maxResults int) (out string, err error) {
	ctx, id := withRequestID(ctx)
	defer func(begin time.Time) {
		s.log("web search", id, begin, err,
			"query", query,
			"max", maxResults,
			"bytes", len(out),
		)
	}(time.Now())
	return s.next.SearchWeb(ctx, query, maxResults)
}

// SearchNews delegates to the wrapped service and logs the operation.
func (s *LoggingService) SearchNews(ctx context.Context, query string, maxResults int) (out string, err error) {
	ctx, id := withRequestID(ctx)
	defer func(begin time.Time) {
		s.log("news search", id, begin, err,
			"query", query,
			"max", maxResults,
			"bytes", len(out),
		)
	}(time.Now())
	return s.next.SearchNews(ctx, query, maxResults)
}

// FetchContent delegates to the wrapped service and logs the operation.
func (s *LoggingService) FetchContent(ctx context.Context, url string, maxLength int) (out string, err error) {
	ctx, id := withRequestID(ctx)
	defer func(begin time.Time) {
		s.log("fetch content", id, begin, err,
			"url", url,
			"max", maxLength,
			"bytes", len(out),
		)
	}(time.Now())
	return s.next.FetchContent(ctx, url, maxLength)
}

func (s *LoggingService) log(msg, id string, begin time.Time, err error, args ...any) {
	attrs := append([]any{"request_id", id}, args...)
	attrs = append(attrs, "duration", time.Since(begin))
	if err != nil {
		attrs = append(attrs, "code", sift.ErrorCode(err), "err", err)
		s.logger.Error(msg, attrs...)
		return
	}
	s.logger.Info(msg, attrs...)
}

func withRequestID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, requestIDKey{}, id), id
}
