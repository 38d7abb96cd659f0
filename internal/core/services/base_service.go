package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/middleware"
	"github.com/SscSPs/liq_planning_app/internal/platform/config"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock       func() time.Time
	ledgerScope config.LedgerScope
}

// ServiceOption is a functional option shared by all services
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, mainly for tests
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithLedgerScope selects shared or per-user visibility of records
func WithLedgerScope(scope config.LedgerScope) ServiceOption {
	return func(s *BaseService) {
		s.ledgerScope = scope
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{clock: time.Now, ledgerScope: config.LedgerScopeShared}
	for _, option := range options {
		option(&base)
	}
	return base
}

// now returns the current instant from the configured clock
func (s *BaseService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

// today returns the current calendar day
func (s *BaseService) today() time.Time {
	return domain.DateOnly(s.now())
}

// owner returns the created_by filter for reads and deletes
func (s *BaseService) owner(userID string) string {
	if s.ledgerScope == config.LedgerScopeUser {
		return userID
	}
	return ""
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
