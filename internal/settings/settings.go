// Package settings persists user-facing configuration. The configuration
// is an explicit value handed to its consumers and saved through a Store
// port, so tests can substitute an in-memory store.
package settings

// Settings holds the persisted user configuration.
type Settings struct {
	// LastOpenedFolder is the workspace folder restored at startup.
	// Empty means no folder has been opened yet.
	LastOpenedFolder string `json:"last_opened_folder,omitempty"`
}

// Store loads and saves settings. Both operations are best-effort: a
// missing or malformed settings file loads as defaults, and a failed save
// is reported but never fatal.
type Store interface {
	Load() Settings
	Save(Settings) error
}
