// Package workspace keeps an in-memory index of saved request files
// synchronized with a folder on disk. The store is driven by a single
// logical owner (the presentation thread); operations are synchronous and
// idempotent, and every filesystem failure degrades to an empty or
// unchanged state with nothing louder than a log line.
package workspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/restdeck/restdeck/internal/domain"
	apperrors "github.com/restdeck/restdeck/internal/errors"
	"github.com/restdeck/restdeck/internal/settings"
)

// NoSelection is the selected-index value meaning "nothing selected".
const NoSelection = -1

// Store owns the workspace index. Entries are exclusively owned by the
// store; callers hold only indexes into it.
type Store struct {
	logger   *slog.Logger
	settings settings.Store

	folder   string
	entries  []domain.Entry
	selected int

	onFolderChanged func(folder string)
}

// NewStore creates a workspace store. The settings store persists the
// last opened folder whenever the folder changes.
func NewStore(cfg settings.Store, logger *slog.Logger) *Store {
	return &Store{
		logger:   logger,
		settings: cfg,
		selected: NoSelection,
	}
}

// SetOnFolderChanged registers the hook invoked after the workspace
// folder changes. The app layer uses it to re-initialize the repository
// status reader.
func (s *Store) SetOnFolderChanged(fn func(folder string)) {
	s.onFolderChanged = fn
}

// Folder returns the current workspace folder, empty when none is open.
func (s *Store) Folder() string {
	return s.folder
}

// Entries returns the current index. Callers must not mutate it.
func (s *Store) Entries() []domain.Entry {
	return s.entries
}

// Selected returns the selected index, or NoSelection.
func (s *Store) Selected() int {
	return s.selected
}

// Select sets the selection. Out-of-range indexes clear it.
func (s *Store) Select(index int) {
	if index < 0 || index >= len(s.entries) {
		s.selected = NoSelection
		return
	}
	s.selected = index
}

// Open sets the workspace folder, persists it to settings, and rescans.
// Selection survives when the previously selected path is still listed.
func (s *Store) Open(folder string) {
	s.folder = folder

	cfg := s.settings.Load()
	cfg.LastOpenedFolder = folder
	if err := s.settings.Save(cfg); err != nil {
		s.logger.Warn("failed to persist workspace folder",
			slog.String("folder", folder),
			slog.Any("error", err))
	}

	s.Rescan()

	s.logger.Info("opened workspace folder",
		slog.String("folder", folder),
		slog.Int("entries", len(s.entries)))

	if s.onFolderChanged != nil {
		s.onFolderChanged(folder)
	}
}

// Rescan rebuilds the index wholesale from the folder's direct children.
// An unreadable folder yields an empty index, not an error. Selection is
// re-resolved by path: it survives when the selected file still exists.
func (s *Store) Rescan() {
	selectedPath := s.selectedPath()

	s.entries = scanFolder(s.folder, s.logger)
	s.selected = s.indexOfPath(selectedPath)
}

// Save writes the request to the workspace. With an associated index the
// entry's existing path is overwritten; otherwise a new filename is
// synthesized from the request name. A no-op when no folder is open.
// After the write the index is rescanned and the written file selected.
func (s *Store) Save(req domain.Request, associated int) {
	if s.folder == "" {
		s.logger.Debug("save skipped, no workspace folder")
		return
	}

	name := req.Name
	synthesized := name == ""
	if synthesized {
		name = defaultRequestName(len(s.entries))
	}

	var path string
	switch {
	case associated >= 0 && associated < len(s.entries):
		path = s.entries[associated].Path
	case synthesized:
		// the synthesized name is already filename-safe, keep it verbatim
		path = filepath.Join(s.folder, name+savedExtension)
	default:
		path = filepath.Join(s.folder, fileNameForSave(name)+savedExtension)
	}

	record := domain.RecordFromRequest(req)
	record.Name = name

	data, err := encodeRecord(record)
	if err != nil {
		s.logger.Error("failed to encode request",
			slog.String("name", name),
			slog.Any("error", err))
		return
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		s.logger.Error("failed to write request file",
			slog.String("path", path),
			slog.Any("error", err))
		// fall through: the rescan below re-resolves selection, which
		// clears it when the path never appeared
	} else {
		s.logger.Info("saved request",
			slog.String("name", name),
			slog.String("path", path))
	}

	s.entries = scanFolder(s.folder, s.logger)
	s.selected = s.indexOfPath(path)
}

// Load reads the entry at index back into composer state. Returns nil on
// a missing or unparseable file with no state change; on success the
// entry becomes the selection.
func (s *Store) Load(index int) *domain.Request {
	if index < 0 || index >= len(s.entries) {
		return nil
	}

	entry := s.entries[index]
	record, err := decodeRecordFile(entry.Path)
	if err != nil {
		s.logger.Warn("failed to load request",
			slog.String("path", entry.Path),
			slog.Any("error", err))
		return nil
	}

	req := record.ToRequest()
	s.selected = index

	s.logger.Debug("loaded request",
		slog.String("path", entry.Path),
		slog.String("method", string(req.Method)))
	return &req
}

// Rename renames the entry's file on disk. Fails with a sentinel when no
// folder is open, the index is stale, or the sanitized name comes out
// empty. On success the index is rescanned so the sort invariant holds
// immediately, with selection following the renamed file.
func (s *Store) Rename(index int, newName string) error {
	if s.folder == "" {
		return apperrors.ErrNoWorkspaceFolder
	}
	if index < 0 || index >= len(s.entries) {
		return apperrors.ErrStaleEntry
	}

	sanitized := sanitizeRename(newName)
	if sanitized == "" {
		return apperrors.ErrEmptyName
	}

	entry := s.entries[index]
	if !eligibleExtensions[filepath.Ext(sanitized)] {
		// keep the file's own extension so a YAML record stays YAML
		sanitized += filepath.Ext(entry.Path)
	}
	newPath := filepath.Join(s.folder, sanitized)
	if newPath == entry.Path {
		return nil
	}

	if err := os.Rename(entry.Path, newPath); err != nil {
		s.logger.Warn("failed to rename request file",
			slog.String("from", entry.Path),
			slog.String("to", newPath),
			slog.Any("error", err))
		return apperrors.FilesystemError{Op: "rename", Path: entry.Path, Err: err}
	}

	s.logger.Info("renamed request",
		slog.String("from", entry.Path),
		slog.String("to", newPath))

	followPath := s.selectedPath()
	if s.selected == index {
		followPath = newPath
	}
	s.entries = scanFolder(s.folder, s.logger)
	s.selected = s.indexOfPath(followPath)
	return nil
}

// Delete removes the entry's file and drops it from the index. A failed
// removal leaves everything unchanged. Selection follows the index-shift
// rule: deleting the selected entry clears the selection, deleting an
// earlier entry shifts it down by one.
func (s *Store) Delete(index int) {
	if index < 0 || index >= len(s.entries) {
		return
	}

	entry := s.entries[index]
	if err := os.Remove(entry.Path); err != nil {
		s.logger.Warn("failed to delete request file",
			slog.String("path", entry.Path),
			slog.Any("error", err))
		return
	}

	s.entries = append(s.entries[:index], s.entries[index+1:]...)

	switch {
	case s.selected == index:
		s.selected = NoSelection
	case s.selected > index:
		s.selected--
	}

	s.logger.Info("deleted request", slog.String("path", entry.Path))
}

// selectedPath returns the path of the selected entry, or "".
func (s *Store) selectedPath() string {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return ""
	}
	return s.entries[s.selected].Path
}

func (s *Store) indexOfPath(path string) int {
	if path == "" {
		return NoSelection
	}
	for i, e := range s.entries {
		if e.Path == path {
			return i
		}
	}
	return NoSelection
}

// scanFolder lists the folder's direct children, keeps eligible request
// files, infers their methods best-effort, and sorts by display name.
func scanFolder(folder string, logger *slog.Logger) []domain.Entry {
	if folder == "" {
		return nil
	}

	children, err := os.ReadDir(folder)
	if err != nil {
		logger.Warn("workspace folder unreadable",
			slog.String("folder", folder),
			slog.Any("error", err))
		return nil
	}

	var entries []domain.Entry
	for _, child := range children {
		if child.IsDir() {
			continue
		}
		if !eligibleExtensions[filepath.Ext(child.Name())] {
			continue
		}
		path := filepath.Join(folder, child.Name())
		entries = append(entries, domain.Entry{
			Name:   displayName(path),
			Path:   path,
			Method: inferMethod(path),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
