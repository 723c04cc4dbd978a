// Package gitstatus derives a read-only view of version-control state for
// the workspace folder: staged and unstaged change lists plus the current
// branch. Absence of a repository is a valid state, not a failure.
package gitstatus

import (
	"fmt"
	"log/slog"
	"sort"

	git "github.com/go-git/go-git/v5"
	apperrors "github.com/restdeck/restdeck/internal/errors"
)

// ChangeKind classifies one file change.
type ChangeKind int

const (
	KindNew ChangeKind = iota
	KindModified
	KindDeleted
	KindRenamed
	KindTypechange
	KindUnknown
)

func (k ChangeKind) String() string {
	switch k {
	case KindNew:
		return "New"
	case KindModified:
		return "Modified"
	case KindDeleted:
		return "Deleted"
	case KindRenamed:
		return "Renamed"
	case KindTypechange:
		return "Typechange"
	default:
		return "Unknown"
	}
}

// Change is one row of the status view. A single file can produce two
// rows: a staged one (index vs HEAD) and an unstaged one (working tree vs
// index). They are independent, never merged.
type Change struct {
	Path   string
	Kind   ChangeKind
	Staged bool
}

// Service reads status from a repository discovered at or above the
// workspace folder. It performs no mutations.
type Service struct {
	repo   *git.Repository
	logger *slog.Logger
}

// Open discovers a repository rooted at or above folder. When none
// exists it returns ErrRepositoryAbsent, which callers treat as "no
// status available" rather than an error.
func Open(folder string, logger *slog.Logger) (*Service, error) {
	repo, err := git.PlainOpenWithOptions(folder, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if err == git.ErrRepositoryNotExists {
			return nil, apperrors.ErrRepositoryAbsent
		}
		return nil, fmt.Errorf("open repository at %s: %w", folder, err)
	}

	logger.Debug("opened repository", slog.String("folder", folder))
	return &Service{repo: repo, logger: logger}, nil
}

// Status enumerates working-tree and index differences, including
// untracked files, rebuilt wholesale on every call. Rows are sorted by
// path with staged rows first for a stable view.
func (s *Service) Status() ([]Change, error) {
	wt, err := s.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolve worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("read status: %w", err)
	}

	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var changes []Change
	for _, path := range paths {
		fileStatus := status[path]

		if staged, ok := mapStagingCode(fileStatus.Staging); ok {
			changes = append(changes, Change{Path: path, Kind: staged, Staged: true})
		}
		if unstaged, ok := mapWorktreeCode(fileStatus.Worktree); ok {
			changes = append(changes, Change{Path: path, Kind: unstaged, Staged: false})
		}
	}

	s.logger.Debug("repository status read", slog.Int("changes", len(changes)))
	return changes, nil
}

// CurrentBranch returns the short branch name, or "HEAD" for a detached
// or unborn head. It never fails the caller.
func (s *Service) CurrentBranch() string {
	head, err := s.repo.Head()
	if err != nil {
		return "HEAD"
	}
	return head.Name().Short()
}

// mapStagingCode maps an index-vs-HEAD status code to a change kind.
// Untracked files have no index entry, so they never yield a staged row.
// Kind precedence (New > Modified > Deleted > Renamed > Typechange >
// Unknown) is the switch order.
func mapStagingCode(code git.StatusCode) (ChangeKind, bool) {
	switch code {
	case git.Added:
		return KindNew, true
	case git.Modified:
		return KindModified, true
	case git.Deleted:
		return KindDeleted, true
	case git.Renamed, git.Copied:
		return KindRenamed, true
	case git.UpdatedButUnmerged:
		return KindUnknown, true
	default:
		return 0, false
	}
}

// mapWorktreeCode maps a working-tree-vs-index status code to a change
// kind. Untracked files appear here as unstaged New.
func mapWorktreeCode(code git.StatusCode) (ChangeKind, bool) {
	switch code {
	case git.Untracked, git.Added:
		return KindNew, true
	case git.Modified:
		return KindModified, true
	case git.Deleted:
		return KindDeleted, true
	case git.Renamed, git.Copied:
		return KindRenamed, true
	case git.UpdatedButUnmerged:
		return KindUnknown, true
	default:
		return 0, false
	}
}
