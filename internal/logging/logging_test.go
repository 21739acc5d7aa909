package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	logger.Debug("hidden", "tick", 1)
	logger.Info("spawn", "score", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level:\n%s", out)
	}
	if !strings.Contains(out, "spawn") || !strings.Contains(out, "score=3") {
		t.Errorf("info line missing key/value pairs:\n%s", out)
	}
	if !strings.Contains(out, Prefix) {
		t.Errorf("output should carry the %q prefix:\n%s", Prefix, out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "chatty"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flappy.log")
	logger, closer, err := OpenFile(path, "debug")
	if err != nil {
		t.Fatalf("OpenFile error: %v", err)
	}
	logger.Debug("restart", "run", 2)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "run=2") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
}
