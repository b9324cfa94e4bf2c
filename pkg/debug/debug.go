// Package debug provides category-scoped diagnostic logging for the qyl
// client.
//
// Categories select what is logged (QYL_DEBUG), the level selects how much
// (QYL_LOG_LEVEL):
//
//	QYL_DEBUG=transport,streaming QYL_LOG_LEVEL=TRACE qyl deployments list
//
// Categories: transport, serialization, streaming, auth, config, mcp, all.
// Levels: ERROR, WARN, INFO, DEBUG, TRACE. At TRACE, request and response
// bodies are logged in full.
package debug

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync/atomic"
)

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// bodyPreview bounds body logging below TRACE.
const bodyPreview = 512

var categories atomic.Pointer[map[string]bool]

func init() {
	setCategories(os.Getenv("QYL_DEBUG"))
}

func setCategories(s string) {
	m := parseCategories(s)
	categories.Store(&m)
}

// Init configures categories, level and output format. The environment
// overrides the configured values. format is "text" (default) or "json".
func Init(configCategories, configLevel, format string) {
	Setup(os.Stderr, configCategories, configLevel, format)
}

// Setup is Init with an explicit destination.
func Setup(w io.Writer, configCategories, configLevel, format string) {
	cats := os.Getenv("QYL_DEBUG")
	if cats == "" {
		cats = configCategories
	}
	setCategories(cats)

	level := os.Getenv("QYL_LOG_LEVEL")
	if level == "" {
		level = configLevel
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level), ReplaceAttr: levelNames}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

func levelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

// Enabled reports whether category is switched on.
func Enabled(category string) bool {
	m := *categories.Load()
	return m["all"] || m[category]
}

// Log emits a debug record tagged with category.
func Log(category, msg string, args ...any) {
	if !Enabled(category) {
		return
	}
	slog.Debug(msg, append([]any{"debug", category}, args...)...)
}

// Trace emits a trace record tagged with category.
func Trace(category, msg string, args ...any) {
	if !Enabled(category) {
		return
	}
	slog.Log(context.Background(), LevelTrace, msg, append([]any{"debug", category}, args...)...)
}

// TraceEnabled reports whether trace output for category would be written.
func TraceEnabled(category string) bool {
	return Enabled(category) && slog.Default().Enabled(context.Background(), LevelTrace)
}

// Body logs a payload: in full at TRACE, as a short preview at DEBUG.
func Body(category, label string, body []byte) {
	if len(body) == 0 || !Enabled(category) {
		return
	}
	if TraceEnabled(category) {
		Trace(category, label, "body", string(body))
		return
	}
	Log(category, label, "body", Truncate(string(body), bodyPreview), "bytes", len(body))
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Categories returns the enabled categories, sorted.
func Categories() []string {
	m := *categories.Load()
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Truncate cuts s to maxLen bytes and marks the cut with "...".
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func parseCategories(s string) map[string]bool {
	m := make(map[string]bool)
	for _, cat := range strings.Split(s, ",") {
		cat = strings.ToLower(strings.TrimSpace(cat))
		if cat != "" {
			m[cat] = true
		}
	}
	return m
}
