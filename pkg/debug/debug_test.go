package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func withCategories(t *testing.T, s string) {
	t.Helper()
	orig := categories.Load()
	t.Cleanup(func() { categories.Store(orig) })
	setCategories(s)
}

func withDefaultLogger(t *testing.T) {
	t.Helper()
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })
}

func TestParseCategories(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]bool
	}{
		{"empty", "", map[string]bool{}},
		{"single", "transport", map[string]bool{"transport": true}},
		{"multiple", "transport,streaming", map[string]bool{"transport": true, "streaming": true}},
		{"with spaces", " transport , auth ", map[string]bool{"transport": true, "auth": true}},
		{"case folded", "TRANSPORT,Auth", map[string]bool{"transport": true, "auth": true}},
		{"empty segments", "transport,,auth", map[string]bool{"transport": true, "auth": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCategories(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("len(got) = %d, want %d", len(got), len(tt.want))
			}
			for k := range tt.want {
				if !got[k] {
					t.Errorf("category %q missing", k)
				}
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	withCategories(t, "transport,auth")

	if !Enabled("transport") || !Enabled("auth") {
		t.Error("configured categories should be enabled")
	}
	if Enabled("streaming") {
		t.Error("streaming should not be enabled")
	}
}

func TestEnabledAll(t *testing.T) {
	withCategories(t, "all")

	for _, c := range []string{"transport", "serialization", "anything"} {
		if !Enabled(c) {
			t.Errorf("%s should be enabled via all", c)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"TRACE", LevelTrace},
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetupEnvironmentOverridesConfig(t *testing.T) {
	withCategories(t, "")
	withDefaultLogger(t)
	t.Setenv("QYL_DEBUG", "streaming")
	t.Setenv("QYL_LOG_LEVEL", "")

	var buf bytes.Buffer
	Setup(&buf, "transport", "DEBUG", "text")

	if Enabled("transport") {
		t.Error("config categories should be overridden by QYL_DEBUG")
	}
	Log("streaming", "frame", "id", "7")
	if !strings.Contains(buf.String(), "debug=streaming") || !strings.Contains(buf.String(), "id=7") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestBodyPreviewAndTrace(t *testing.T) {
	withCategories(t, "")
	withDefaultLogger(t)
	t.Setenv("QYL_DEBUG", "")
	t.Setenv("QYL_LOG_LEVEL", "")
	long := strings.Repeat("x", 600)

	var buf bytes.Buffer
	Setup(&buf, "transport", "DEBUG", "json")
	Body("transport", "response body", []byte(long))
	if strings.Contains(buf.String(), long) {
		t.Error("DEBUG level logged the full body")
	}
	if !strings.Contains(buf.String(), `"bytes":600`) {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	Setup(&buf, "transport", "TRACE", "json")
	Body("transport", "response body", []byte(long))
	if !strings.Contains(buf.String(), long) || !strings.Contains(buf.String(), `"level":"TRACE"`) {
		t.Errorf("TRACE output = %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("this is a long string", 10); got != "this is a ..." {
		t.Errorf("Truncate long = %q", got)
	}
}

func TestDisabledCategoryIsSilent(t *testing.T) {
	withCategories(t, "")
	withDefaultLogger(t)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})))
	Log("transport", "hidden")
	Trace("transport", "hidden")
	Body("transport", "hidden", []byte("{}"))
	if buf.Len() != 0 {
		t.Errorf("disabled category wrote %q", buf.String())
	}
}
