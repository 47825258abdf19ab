package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level name to a slog level. Unknown names are info.
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

// InitLogger installs the default logger. Records go to logFile as JSON
// and, when console is set, to stdout as text. The TUI must not log to
// the console since it owns the terminal.
func InitLogger(level, logFile string, console bool) (io.Closer, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var (
		handlers []slog.Handler
		closer   io.Closer = nopCloser{}
	)
	if console {
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, opts))
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closer = f
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = slog.NewJSONHandler(io.Discard, opts)
	case 1:
		handler = handlers[0]
	default:
		handler = &multiHandler{handlers: handlers}
	}
	slog.SetDefault(slog.New(handler))

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hh := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hh[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: hh}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	hh := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hh[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: hh}
}
