// Package services holds the application core: the snapshot store, the
// categorization and deduplication engines, and the services behind each
// port.
package services

import (
	"context"
	"log/slog"

	"github.com/condobooks/condo_books_app/internal/middleware"
)

// BaseService provides logging helpers shared by all services. The
// logger travels on the request context so log lines carry the request
// ID without any service-level plumbing.
type BaseService struct{}

// NewBaseService creates a new BaseService instance.
func NewBaseService() BaseService {
	return BaseService{}
}

// GetLogger retrieves the request-scoped logger from the context.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.LoggerFromCtx(ctx)
}

// LogInfo logs at info level with the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, args...)
}

// LogWarn logs at warn level with the request-scoped logger.
func (s *BaseService) LogWarn(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).WarnContext(ctx, msg, args...)
}

// LogError logs at error level with the request-scoped logger.
func (s *BaseService) LogError(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).ErrorContext(ctx, msg, args...)
}
