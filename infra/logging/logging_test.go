package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_WritesToFileAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reels.log")
	l, closer, err := Open(path, "warn")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	l.Info("hidden")
	l.WithField("video_id", "video_1").Warn("like failed")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	text := string(data)
	if strings.Contains(text, "hidden") {
		t.Fatalf("info entry must be filtered at warn level: %q", text)
	}
	if !strings.Contains(text, "like failed") || !strings.Contains(text, "video_id=video_1") {
		t.Fatalf("unexpected log content: %q", text)
	}
}

func TestOpen_RejectsUnknownLevel(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
