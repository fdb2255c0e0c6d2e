package logging

import (
	"log/slog"
	"strings"
	"testing"
)

type captureWriter struct {
	lines []string
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.lines = append(w.lines, string(p))
	return len(p), nil
}

func newCapturedLogger(t *testing.T, level string) (*slog.Logger, *captureWriter) {
	t.Helper()
	w := &captureWriter{}
	lvlVar := new(slog.LevelVar)
	lvlVar.Set(parseLevel(level))
	return slog.New(newConsoleHandler(w, lvlVar)), w
}

func TestConsoleHandlerFormatsLine(t *testing.T) {
	logger, w := newCapturedLogger(t, "info")
	logger = logger.With(String("component", "scanner"))

	logger.Info("scan complete", Int("files", 3), String("root", "/tmp/data"))

	if len(w.lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(w.lines))
	}
	line := w.lines[0]
	if !strings.Contains(line, "INFO scanner: scan complete") {
		t.Errorf("line %q missing component prefix", line)
	}
	if !strings.Contains(line, "files=3") || !strings.Contains(line, "root=/tmp/data") {
		t.Errorf("line %q missing attrs", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	logger, w := newCapturedLogger(t, "info")
	logger.Warn("insert failed", String("filename", "my report.pdf"))

	if len(w.lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(w.lines))
	}
	if !strings.Contains(w.lines[0], `filename="my report.pdf"`) {
		t.Errorf("line %q missing quoted value", w.lines[0])
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	logger, w := newCapturedLogger(t, "warn")
	logger.Info("dropped")
	logger.Error("kept")

	if len(w.lines) != 1 || !strings.Contains(w.lines[0], "kept") {
		t.Fatalf("lines = %v, want only the error line", w.lines)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
}
