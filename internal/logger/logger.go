package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a scoped wrapper around the default slog logger. Scope fields
// (package, file, function) are attached to every record it writes.
type Logger struct {
	pkg      string
	file     string
	function string
	args     []any
}

func New(pkg string) Logger {
	return Logger{pkg: pkg}
}

// Init installs the process-wide slog handler. Production logs JSON,
// everything else logs text.
func Init(w io.Writer, production bool, level string) {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
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

func (l Logger) File(name string) Logger {
	l.file = name
	return l
}

func (l Logger) Function(name string) Logger {
	l.function = name
	return l
}

// With returns a copy that adds args to every record.
func (l Logger) With(args ...any) Logger {
	merged := make([]any, 0, len(l.args)+len(args))
	merged = append(merged, l.args...)
	l.args = append(merged, args...)
	return l
}

func (l Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

func (l Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Er logs err without returning it.
func (l Logger) Er(msg string, err error, args ...any) {
	l.log(slog.LevelError, msg, append(args, "error", err)...)
}

// ErMsg logs msg at error level without returning an error.
func (l Logger) ErMsg(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

// Err logs err and returns it wrapped with msg.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.Er(msg, err, args...)
	if err == nil {
		return errors.New(msg)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs msg and returns it as a new error.
func (l Logger) Error(msg string, args ...any) error {
	l.ErMsg(msg, args...)
	return errors.New(msg)
}

// ErrMsg returns msg as an error after logging it.
func (l Logger) ErrMsg(msg string) error {
	return l.Error(msg)
}

func (l Logger) log(level slog.Level, msg string, args ...any) {
	base := slog.Default()
	ctx := context.Background()
	if !base.Enabled(ctx, level) {
		return
	}

	attrs := make([]any, 0, len(l.args)+len(args)+6)
	if l.pkg != "" {
		attrs = append(attrs, "package", l.pkg)
	}
	if l.file != "" {
		attrs = append(attrs, "file", l.file)
	}
	if l.function != "" {
		attrs = append(attrs, "function", l.function)
	}
	attrs = append(attrs, l.args...)
	attrs = append(attrs, args...)

	base.Log(ctx, level, msg, attrs...)
}
