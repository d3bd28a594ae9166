package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

// initFile points the global logger at a fresh file with no console output.
func initFile(t *testing.T, level string, cfg FileConfig) {
	t.Helper()
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	t.Cleanup(func() {
		Sync()
		_ = InitWithFileConfig("info", FileConfig{}, false)
	})
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "test.log")

	// 1MB is the smallest size lumberjack rotates at.
	initFile(t, "debug", FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	})

	// ~230 bytes per line, comfortably past 1MB.
	payload := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("entry %d: %s", i, payload)
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}

	var rotated []string
	for _, e := range entries {
		name := e.Name()
		if name != "test.log" && strings.HasPrefix(name, "test-") && strings.HasSuffix(name, ".log") {
			rotated = append(rotated, name)
		}
	}

	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("current log file missing: %v", err)
	}
	if len(rotated) == 0 {
		t.Fatalf("expected at least one rotated file, got %v", entries)
	}
	for _, name := range rotated {
		// test-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") {
			t.Errorf("rotated file %s lacks a timestamp", name)
		}
	}
}

func TestLogLevels(t *testing.T) {
	all := []string{"DEBUG", "INFO", "WARN", "ERROR"}

	tests := []struct {
		level string
		first int // index into all of the lowest level written
	}{
		{"debug", 0},
		{"info", 1},
		{"warn", 2},
		{"error", 3},
		{"bogus", 1},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "levels.log")
			initFile(t, tt.level, FileConfig{Path: logFile, MaxSizeMB: 10})

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			out := readLog(t, logFile)
			for i, lvl := range all {
				got := strings.Contains(out, lvl)
				if want := i >= tt.first; got != want {
					t.Errorf("level %s present = %v, want %v", lvl, got, want)
				}
			}
		})
	}
}

func TestDefaultFileConfig(t *testing.T) {
	got := DefaultFileConfig("/tmp/cubewalk.log")
	want := FileConfig{
		Path:       "/tmp/cubewalk.log",
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
	if got != want {
		t.Errorf("DefaultFileConfig = %+v, want %+v", got, want)
	}
}

func TestNamedComponent(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	initFile(t, "info", FileConfig{Path: logFile, MaxSizeMB: 1})

	Named("camera").Info("ready")

	out := readLog(t, logFile)
	if !strings.Contains(out, "camera") || !strings.Contains(out, "ready") {
		t.Errorf("expected named entry in log output, got %q", out)
	}
}

func TestDisabledOutputIsNop(t *testing.T) {
	initFile(t, "debug", FileConfig{})

	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected no-op logger when console and file output are disabled")
	}
	// Must not panic.
	Info("discarded")
	Sugar.Debugf("discarded %d", 1)
}
