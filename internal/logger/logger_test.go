package logger

import (
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, false, false)

	l.Debug("hidden")
	l.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message leaked at INFO level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("info message missing: %q", out)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, true, false)

	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("verbose logger dropped debug message: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, false, false)
	l.SetLevel("error")

	l.Warn("quiet")
	l.Error("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("warn message leaked at ERROR level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("error message missing: %q", out)
	}
}

func TestParseLevelFallback(t *testing.T) {
	if parseLevel("bogus") != LevelInfo {
		t.Error("unknown level name should fall back to INFO")
	}
	if parseLevel("WARNING") != LevelWarn {
		t.Error("level names should be case-insensitive")
	}
}
