package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kisxo/ita-api/internal/logger"
)

// gormLogConfig mirrors gormlogger.Config for the fields the adapter honours
type gormLogConfig struct {
	SlowThreshold             time.Duration
	LogLevel                  gormlogger.LogLevel
	IgnoreRecordNotFoundError bool
}

// gormLogAdapter routes GORM's statement log into the application logger
type gormLogAdapter struct {
	log logger.Logger
	cfg gormLogConfig
}

func newGormLogger(log logger.Logger, cfg gormLogConfig) gormlogger.Interface {
	return &gormLogAdapter{log: log.With("logger", "gorm"), cfg: cfg}
}

func (l *gormLogAdapter) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.cfg.LogLevel = level
	return &next
}

func (l *gormLogAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.cfg.LogLevel >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.cfg.LogLevel >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.cfg.LogLevel >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, args...), nil)
	}
}

// Trace logs one executed statement. A lookup miss is not an error.
func (l *gormLogAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.cfg.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.cfg.LogLevel >= gormlogger.Error &&
		!(l.cfg.IgnoreRecordNotFoundError && errors.Is(err, gorm.ErrRecordNotFound)):
		sql, rows := fc()
		l.log.Error("SQL failed", err, "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.cfg.SlowThreshold != 0 && elapsed > l.cfg.SlowThreshold && l.cfg.LogLevel >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warn("Slow SQL", "sql", sql, "rows", rows, "elapsed", elapsed, "threshold", l.cfg.SlowThreshold)
	case l.cfg.LogLevel >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug("SQL", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
