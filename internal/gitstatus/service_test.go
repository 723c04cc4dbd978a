package gitstatus

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	apperrors "github.com/restdeck/restdeck/internal/errors"
	"github.com/restdeck/restdeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir, repo
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
}

func commitAll(t *testing.T, repo *git.Repository, msg string) {
	t.Helper()
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(".")
	require.NoError(t, err)
	_, err = wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := Open(t.TempDir(), logging.NewNopLogger())
	assert.ErrorIs(t, err, apperrors.ErrRepositoryAbsent)
}

func TestOpen_DiscoversFromSubfolder(t *testing.T) {
	dir, _ := initRepo(t)
	sub := filepath.Join(dir, "requests")
	require.NoError(t, os.Mkdir(sub, 0755))

	svc, err := Open(sub, logging.NewNopLogger())
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestStatus_UntrackedFileIsUnstagedNew(t *testing.T) {
	dir, _ := initRepo(t)
	writeFile(t, dir, "new.json", `{}`)

	svc, err := Open(dir, logging.NewNopLogger())
	require.NoError(t, err)

	changes, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "new.json", changes[0].Path)
	assert.Equal(t, KindNew, changes[0].Kind)
	assert.False(t, changes[0].Staged, "untracked files never yield a staged row")
}

func TestStatus_StagedNewFile(t *testing.T) {
	dir, repo := initRepo(t)
	writeFile(t, dir, "staged.json", `{}`)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("staged.json")
	require.NoError(t, err)

	svc, err := Open(dir, logging.NewNopLogger())
	require.NoError(t, err)

	changes, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, KindNew, changes[0].Kind)
	assert.True(t, changes[0].Staged)
}

func TestStatus_ModifiedTrackedFile(t *testing.T) {
	dir, repo := initRepo(t)
	writeFile(t, dir, "a.json", `{"v":1}`)
	commitAll(t, repo, "initial")

	writeFile(t, dir, "a.json", `{"v":2}`)

	svc, err := Open(dir, logging.NewNopLogger())
	require.NoError(t, err)

	changes, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, KindModified, changes[0].Kind)
	assert.False(t, changes[0].Staged)
}

func TestStatus_SameFileStagedAndUnstagedRows(t *testing.T) {
	dir, repo := initRepo(t)
	writeFile(t, dir, "a.json", `{"v":1}`)
	commitAll(t, repo, "initial")

	// stage one modification, then modify again in the working tree
	writeFile(t, dir, "a.json", `{"v":2}`)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("a.json")
	require.NoError(t, err)
	writeFile(t, dir, "a.json", `{"v":3}`)

	svc, err := Open(dir, logging.NewNopLogger())
	require.NoError(t, err)

	changes, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, changes, 2, "one staged row and one unstaged row, not merged")

	var staged, unstaged *Change
	for i := range changes {
		if changes[i].Staged {
			staged = &changes[i]
		} else {
			unstaged = &changes[i]
		}
	}
	require.NotNil(t, staged)
	require.NotNil(t, unstaged)
	assert.Equal(t, KindModified, staged.Kind)
	assert.Equal(t, KindModified, unstaged.Kind)
	assert.Equal(t, staged.Path, unstaged.Path)
}

func TestStatus_DeletedFile(t *testing.T) {
	dir, repo := initRepo(t)
	writeFile(t, dir, "a.json", `{}`)
	commitAll(t, repo, "initial")

	require.NoError(t, os.Remove(filepath.Join(dir, "a.json")))

	svc, err := Open(dir, logging.NewNopLogger())
	require.NoError(t, err)

	changes, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, KindDeleted, changes[0].Kind)
	assert.False(t, changes[0].Staged)
}

func TestCurrentBranch_UnbornRepo(t *testing.T) {
	dir, _ := initRepo(t)

	svc, err := Open(dir, logging.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "HEAD", svc.CurrentBranch())
}

func TestCurrentBranch_AfterCommit(t *testing.T) {
	dir, repo := initRepo(t)
	writeFile(t, dir, "a.json", `{}`)
	commitAll(t, repo, "initial")

	svc, err := Open(dir, logging.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "master", svc.CurrentBranch())
}

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "New", KindNew.String())
	assert.Equal(t, "Modified", KindModified.String())
	assert.Equal(t, "Deleted", KindDeleted.String())
	assert.Equal(t, "Renamed", KindRenamed.String())
	assert.Equal(t, "Typechange", KindTypechange.String())
	assert.Equal(t, "Unknown", KindUnknown.String())
}
