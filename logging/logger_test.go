package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSinkReceivesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	log := New(Config{File: path, Debug: true})
	log.Debugw("contact", "side", "bottom")
	log.Infow("started", "world", "demo")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"DEBUG", "contact", "side", "bottom", "INFO", "started"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log missing %q:\n%s", want, out)
		}
	}
}

func TestInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	log := New(Config{File: path})
	log.Debugw("hidden")
	log.Infow("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("unexpected log contents:\n%s", data)
	}
}

func TestInitReplacesGlobal(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	got := Init(Config{})
	if got != Log || got == prev {
		t.Fatalf("Init did not replace Log")
	}
	Sync()
}

func TestQuietSkipsStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.log")
	log := New(Config{File: path, Quiet: true})
	log.Infow("file only")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "file only") {
		t.Fatalf("quiet logger lost the file sink:\n%s", data)
	}
}
