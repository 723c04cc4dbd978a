package logging

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetLogFilePath(t *testing.T) {
	appName := "restdeck"
	logPath, err := getLogFilePath(appName)
	if err != nil {
		t.Fatalf("getLogFilePath failed: %v", err)
	}

	if logPath == "" {
		t.Error("getLogFilePath returned empty path")
	}
	if !filepath.IsAbs(logPath) {
		t.Errorf("getLogFilePath returned relative path: %s", logPath)
	}

	homeDir, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		expected := filepath.Join(homeDir, "Library", "Logs", appName, appName+".log")
		if logPath != expected {
			t.Errorf("macOS path mismatch: got %s, want %s", logPath, expected)
		}
	case "linux":
		expected := filepath.Join(homeDir, ".local", "state", appName, appName+".log")
		if logPath != expected {
			t.Errorf("Linux path mismatch: got %s, want %s", logPath, expected)
		}
	}
}

func TestInitLogger(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", tmpDir)
		t.Setenv("LOCALAPPDATA", filepath.Join(tmpDir, "AppData", "Local"))
	}

	tests := []struct {
		name  string
		debug bool
	}{
		{"info level", false},
		{"debug level", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := InitLogger("restdeck-test", tt.debug)
			if err != nil {
				t.Fatalf("InitLogger failed: %v", err)
			}
			logger.Info("test message")
		})
	}
}

func TestRotateIfNeeded_NoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")
	if err := rotateIfNeeded(path); err != nil {
		t.Fatalf("rotateIfNeeded on missing file: %v", err)
	}
}

func TestRotateIfNeeded_SmallFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restdeck.log")
	if err := os.WriteFile(path, []byte("small"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := rotateIfNeeded(path); err != nil {
		t.Fatalf("rotateIfNeeded: %v", err)
	}
	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("small log file should not be rotated")
	}
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	if logger == nil {
		t.Fatal("NewNopLogger returned nil")
	}
	logger.Error("discarded")
}
