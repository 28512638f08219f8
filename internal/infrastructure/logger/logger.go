package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

// SlogLogger adapts a *slog.Logger to the printf-style IAppLogger.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger creates a logger writing to stderr. format is "text" or "json";
// level is debug, info, warn or error.
func NewSlogLogger(level, format string) usecasecontract.IAppLogger {
	return NewSlogLoggerTo(os.Stderr, level, format)
}

// NewSlogLoggerTo is NewSlogLogger with an explicit writer.
func NewSlogLoggerTo(w io.Writer, level, format string) usecasecontract.IAppLogger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &SlogLogger{log: slog.New(h).With("app", "pet-likes")}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Debugf logs a debug message.
func (l *SlogLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

// Infof logs an info message.
func (l *SlogLogger) Infof(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *SlogLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func (l *SlogLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}
