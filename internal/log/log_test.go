package log

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, LevelWarn)

	l.Debug("not logged")
	l.Info("not logged")
	l.Warn("warned")
	l.Error("errored")

	out := buf.String()
	if strings.Contains(out, "not logged") {
		t.Error("messages below the level should be dropped")
	}
	if !strings.Contains(out, "[WARN] statekit: warned") {
		t.Errorf("missing warn line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] statekit: errored") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestFormatArgs(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, LevelDebug)

	l.Info("capacity %d", 10)

	if !strings.Contains(buf.String(), "capacity 10") {
		t.Errorf("args not formatted: %q", buf.String())
	}
}

func TestWithField(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, LevelDebug).WithField("component", "watcher")

	l.Info("started")

	if !strings.Contains(buf.String(), "component=watcher") {
		t.Errorf("field not rendered: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, LevelError)

	l.Info("dropped")
	l.SetLevel(LevelDebug)
	l.Info("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Errorf("level change not applied: %q", out)
	}
}
