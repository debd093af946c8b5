// Package logger configures the process-wide zerolog logger.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the global logger. It is replaced by Init.
var Logger = log.Logger

// Config selects level and output format.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json or pretty
	TimeFormat string
}

// Init builds the global logger from cfg and writes to out (stdout when nil).
// An unparsable level falls back to info.
func Init(cfg Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if out == nil {
		out = os.Stdout
	}
	if cfg.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}
	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = Logger
	return Logger
}

type ctxKey struct{}

// Ctx returns the logger attached with WithContext, then one attached by
// zerolog itself, then the global logger. A disabled logger attached with
// WithContext is returned as is.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zerolog.Logger); ok {
		return l
	}
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &Logger
	}
	return l
}

// WithContext attaches l to ctx. Unlike zerolog.Logger.WithContext it keeps
// disabled loggers, so a Nop logger silences everything downstream.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, &l)
}
