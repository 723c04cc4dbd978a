package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNoWorkspaceFolder is returned when a folder-scoped operation runs
	// before any workspace folder has been opened.
	ErrNoWorkspaceFolder = errors.New("no workspace folder open")

	// ErrStaleEntry is returned when an index into the workspace no longer
	// refers to an entry (the index was rebuilt underneath the caller).
	ErrStaleEntry = errors.New("stale workspace entry")

	// ErrEmptyName is returned when a sanitized request name comes out empty.
	ErrEmptyName = errors.New("empty request name")

	// ErrRepositoryAbsent marks the valid "no version control" state: the
	// workspace folder is not inside a git repository. Callers treat it as
	// "no status available", never as a failure.
	ErrRepositoryAbsent = errors.New("no git repository")
)

// FilesystemError wraps a failed file operation with the operation name and
// path for logging. All filesystem failures are non-fatal: the component
// that hits one degrades to an empty or unchanged state.
type FilesystemError struct {
	Op   string // "scan", "read", "write", "rename", "remove"
	Path string
	Err  error
}

func (e FilesystemError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e FilesystemError) Unwrap() error {
	return e.Err
}

// ParseError wraps a malformed saved-request file. The file still appears
// in the workspace index with an unknown method.
type ParseError struct {
	Path string
	Err  error
}

func (e ParseError) Error() string {
	return "parse " + e.Path + ": " + e.Err.Error()
}

func (e ParseError) Unwrap() error {
	return e.Err
}
