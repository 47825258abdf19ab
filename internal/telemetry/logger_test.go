package telemetry

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHandler struct {
	mu      sync.Mutex
	records []slog.Record
	attrs   []slog.Attr
	group   string
	enabled bool
}

func (h *mockHandler) Enabled(context.Context, slog.Level) bool {
	return h.enabled
}

func (h *mockHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &mockHandler{enabled: h.enabled, attrs: append(h.attrs, attrs...), group: h.group}
}

func (h *mockHandler) WithGroup(name string) slog.Handler {
	return &mockHandler{enabled: h.enabled, attrs: h.attrs, group: name}
}

func (h *mockHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

func TestMultiHandler(t *testing.T) {
	h1, h2 := &mockHandler{enabled: true}, &mockHandler{enabled: false}
	multi := &multiHandler{handlers: []slog.Handler{h1, h2}}

	assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	require.NoError(t, multi.Handle(context.Background(), rec))
	assert.Equal(t, 1, h1.count())
	assert.Equal(t, 0, h2.count())

	wa, ok := multi.WithAttrs([]slog.Attr{slog.String("k", "v")}).(*multiHandler)
	require.True(t, ok)
	for _, h := range wa.handlers {
		assert.Len(t, h.(*mockHandler).attrs, 1)
	}

	wg, ok := multi.WithGroup("api").(*multiHandler)
	require.True(t, ok)
	for _, h := range wg.handlers {
		assert.Equal(t, "api", h.(*mockHandler).group)
	}
}

func TestInitLoggerFile(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	path := filepath.Join(t.TempDir(), "stockr.log")
	c, err := InitLogger("debug", path, false)
	require.NoError(t, err)

	slog.Debug("fetch done", "rid", "inventory/products")
	require.NoError(t, c.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"fetch done"`)
	assert.Contains(t, string(raw), `"rid":"inventory/products"`)
}

func TestInitLoggerBadPath(t *testing.T) {
	_, err := InitLogger("info", filepath.Join(t.TempDir(), "missing", "x.log"), false)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	uu := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for k, e := range uu {
		assert.Equal(t, e, ParseLevel(k), k)
	}
}
