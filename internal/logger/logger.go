package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yukikurage/studentorg/internal/config"
	gormlogger "gorm.io/gorm/logger"
)

// Setup installs the process-wide slog logger.
func Setup(cfg *config.Config) {
	slog.SetDefault(New(os.Stdout, cfg))
}

func New(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "json" || cfg.IsRelease() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GormLevel maps the configured level onto GORM's SQL logger.
func GormLevel(cfg *config.Config) gormlogger.LogLevel {
	switch ParseLevel(cfg.LogLevel) {
	case slog.LevelDebug:
		return gormlogger.Info
	case slog.LevelError:
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}
