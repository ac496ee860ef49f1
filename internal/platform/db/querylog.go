package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// queryLogger forwards executed statements to slog at debug level.
// It is the observability hook for the storage layer: every query is
// reported with its duration and affected row count.
type queryLogger struct {
	logger *slog.Logger
}

func newQueryLogger(logger *slog.Logger) gormlogger.Interface {
	if logger == nil {
		logger = slog.Default()
	}
	return queryLogger{logger: logger}
}

func (l queryLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l queryLogger) Info(ctx context.Context, format string, args ...interface{}) {
	l.logger.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l queryLogger) Warn(ctx context.Context, format string, args ...interface{}) {
	l.logger.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l queryLogger) Error(ctx context.Context, format string, args ...interface{}) {
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

func (l queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	attrs := []any{
		"sql", sql,
		"rows", rows,
		"duration", time.Since(begin).String(),
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		attrs = append(attrs, "error", err.Error())
		l.logger.DebugContext(ctx, "query failed", attrs...)
		return
	}
	l.logger.DebugContext(ctx, "query", attrs...)
}
