package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	settingsFile   = "config.json"
	filePermission = 0644
	dirPermission  = 0755
)

// FileStore persists settings as a JSON file in the platform
// configuration directory, under an application-named subfolder.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a store rooted at the platform config directory
// (e.g. ~/.config/restdeck/config.json on Linux).
func NewFileStore(appName string, logger *slog.Logger) (*FileStore, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("determine config directory: %w", err)
	}
	return &FileStore{
		path:   filepath.Join(configDir, appName, settingsFile),
		logger: logger,
	}, nil
}

// NewFileStoreAt creates a store with an explicit file path, used by
// tests and the RESTDECK_CONFIG_DIR override.
func NewFileStoreAt(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Path returns the settings file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the settings file. A missing file or parse failure yields
// defaults, never an error.
func (s *FileStore) Load() Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("settings unreadable, using defaults",
				slog.String("path", s.path),
				slog.Any("error", err))
		}
		return Settings{}
	}

	var cfg Settings
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Warn("settings malformed, using defaults",
			slog.String("path", s.path),
			slog.Any("error", err))
		return Settings{}
	}

	s.logger.Debug("loaded settings", slog.String("path", s.path))
	return cfg
}

// Save writes the settings file, creating the parent directory if needed.
func (s *FileStore) Save(cfg Settings) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := atomicWriteFile(s.path, data, filePermission); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	s.logger.Debug("saved settings",
		slog.String("path", s.path),
		slog.String("last_opened_folder", cfg.LastOpenedFolder))
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp
// file in the same directory, syncing, then renaming over the target path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	// Clean up temp file on any failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
