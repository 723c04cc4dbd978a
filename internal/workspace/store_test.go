package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/restdeck/restdeck/internal/domain"
	"github.com/restdeck/restdeck/internal/logging"
	"github.com/restdeck/restdeck/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *settings.MemoryStore, string) {
	t.Helper()
	cfg := &settings.MemoryStore{}
	store := NewStore(cfg, logging.NewNopLogger())
	folder := t.TempDir()
	return store, cfg, folder
}

func writeRecord(t *testing.T, folder, file, contents string) string {
	t.Helper()
	path := filepath.Join(folder, file)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestOpen_PersistsFolderAndScans(t *testing.T) {
	store, cfg, folder := newTestStore(t)
	writeRecord(t, folder, "b.json", `{"name":"b","method":"POST","url":"http://x"}`)
	writeRecord(t, folder, "a.json", `{"name":"a","method":"GET","url":"http://x"}`)

	var notified string
	store.SetOnFolderChanged(func(f string) { notified = f })

	store.Open(folder)

	assert.Equal(t, folder, cfg.Current.LastOpenedFolder)
	assert.Equal(t, folder, notified)
	require.Len(t, store.Entries(), 2)
	assert.Equal(t, "a", store.Entries()[0].Name)
	assert.Equal(t, "b", store.Entries()[1].Name)
}

func TestRescan_UnreadableFolderYieldsEmptyIndex(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.folder = "/definitely/not/a/folder"
	store.Rescan()
	assert.Empty(t, store.Entries())
	assert.Equal(t, NoSelection, store.Selected())
}

func TestRescan_FiltersExtensionsAndSorts(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "zeta.json", `{"name":"z","method":"PUT","url":"u"}`)
	writeRecord(t, folder, "alpha.yaml", "name: a\nmethod: delete\nurl: u\n")
	writeRecord(t, folder, "mid.yml", "name: m\nmethod: get\nurl: u\n")
	writeRecord(t, folder, "notes.txt", "not a request")
	require.NoError(t, os.Mkdir(filepath.Join(folder, "sub.json"), 0755))

	store.Open(folder)

	entries := store.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, []string{entries[0].Name, entries[1].Name, entries[2].Name})

	require.NotNil(t, entries[0].Method)
	assert.Equal(t, domain.MethodDelete, *entries[0].Method)
	require.NotNil(t, entries[2].Method)
	assert.Equal(t, domain.MethodPut, *entries[2].Method)
}

func TestRescan_Idempotent(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "one.json", `{"name":"one","method":"GET","url":"u"}`)
	writeRecord(t, folder, "two.json", `{"name":"two","method":"POST","url":"u"}`)

	store.Open(folder)
	first := append([]domain.Entry(nil), store.Entries()...)

	store.Rescan()
	assert.Equal(t, first, store.Entries())
}

func TestRescan_UnparseableFileStillListed(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "broken.json", `{"name": "trunc`)

	store.Open(folder)

	require.Len(t, store.Entries(), 1)
	assert.Equal(t, "broken", store.Entries()[0].Name)
	assert.Nil(t, store.Entries()[0].Method)
}

func TestSave_NoFolderIsNoOp(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.Save(domain.Request{Name: "x", Method: domain.MethodGet}, NoSelection)
	assert.Empty(t, store.Entries())
}

func TestSave_EmptyNameDefaultsAndSelects(t *testing.T) {
	store, _, folder := newTestStore(t)
	store.Open(folder)

	store.Save(domain.Request{Method: domain.MethodGet, URL: "http://x"}, NoSelection)

	want := filepath.Join(folder, "New Request 1.json")
	_, err := os.Stat(want)
	require.NoError(t, err)

	require.Len(t, store.Entries(), 1)
	assert.Equal(t, "New Request 1", store.Entries()[0].Name)
	assert.Equal(t, 0, store.Selected())
}

func TestSave_SanitizesUserName(t *testing.T) {
	store, _, folder := newTestStore(t)
	store.Open(folder)

	store.Save(domain.Request{Name: "My Request #1!", Method: domain.MethodPost}, NoSelection)

	_, err := os.Stat(filepath.Join(folder, "My-Request--1-.json"))
	assert.NoError(t, err)
}

func TestSave_PunctuationOnlyNameKeepsVisibleStem(t *testing.T) {
	store, _, folder := newTestStore(t)
	store.Open(folder)

	store.Save(domain.Request{Name: "!!!", Method: domain.MethodGet}, NoSelection)

	_, err := os.Stat(filepath.Join(folder, "---.json"))
	require.NoError(t, err)

	require.Len(t, store.Entries(), 1)
	assert.Equal(t, "---", store.Entries()[0].Name)
}

func TestSave_AssociatedOverwritesInPlace(t *testing.T) {
	store, _, folder := newTestStore(t)
	path := writeRecord(t, folder, "target.json", `{"name":"target","method":"GET","url":"old"}`)
	store.Open(folder)
	require.Len(t, store.Entries(), 1)

	store.Save(domain.Request{Name: "target", Method: domain.MethodPut, URL: "new"}, 0)

	require.Len(t, store.Entries(), 1)
	assert.Equal(t, path, store.Entries()[0].Path)
	require.NotNil(t, store.Entries()[0].Method)
	assert.Equal(t, domain.MethodPut, *store.Entries()[0].Method)
	assert.Equal(t, 0, store.Selected())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, _, folder := newTestStore(t)
	store.Open(folder)

	original := domain.Request{
		Name:   "Round Trip",
		Method: domain.MethodPatch,
		URL:    "https://api.example.com/v1/things?x=1",
		Headers: []domain.KeyValue{
			{Key: "Accept", Value: "application/json", Enabled: true},
			{Key: "", Value: "dropped", Enabled: true},
		},
		Body: `{"k":"v"}`,
	}
	store.Save(original, NoSelection)
	require.GreaterOrEqual(t, store.Selected(), 0)

	loaded := store.Load(store.Selected())
	require.NotNil(t, loaded)
	assert.Equal(t, original.Method, loaded.Method)
	assert.Equal(t, original.URL, loaded.URL)
	assert.Equal(t, original.Body, loaded.Body)

	got := map[string]string{}
	for _, kv := range loaded.EffectiveHeaders() {
		got[kv.Key] = kv.Value
	}
	assert.Equal(t, map[string]string{"Accept": "application/json"}, got)
}

func TestLoad_CaseInsensitiveMethod(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "patchy.json", `{"name":"patchy","method":"patch","url":"u"}`)
	store.Open(folder)

	req := store.Load(0)
	require.NotNil(t, req)
	assert.Equal(t, domain.MethodPatch, req.Method)
	assert.Equal(t, 0, store.Selected())
}

func TestLoad_UnknownMethodFallsBackToGet(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "odd.json", `{"name":"odd","method":"TRACE","url":"u"}`)
	store.Open(folder)

	req := store.Load(0)
	require.NotNil(t, req)
	assert.Equal(t, domain.MethodGet, req.Method)
}

func TestLoad_MissingFileNoStateChange(t *testing.T) {
	store, _, folder := newTestStore(t)
	path := writeRecord(t, folder, "gone.json", `{"name":"gone","method":"GET","url":"u"}`)
	store.Open(folder)
	require.NoError(t, os.Remove(path))

	req := store.Load(0)
	assert.Nil(t, req)
	assert.Equal(t, NoSelection, store.Selected())
}

func TestLoad_YamlRecord(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "yamly.yaml", "name: yamly\nmethod: post\nurl: http://y\nheaders:\n  X-One: \"1\"\nbody: hello\n")
	store.Open(folder)

	req := store.Load(0)
	require.NotNil(t, req)
	assert.Equal(t, domain.MethodPost, req.Method)
	assert.Equal(t, "http://y", req.URL)
	assert.Equal(t, "hello", req.Body)
}

func TestRename_ResortsAndFollowsSelection(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "alpha.json", `{"name":"alpha","method":"GET","url":"u"}`)
	writeRecord(t, folder, "beta.json", `{"name":"beta","method":"GET","url":"u"}`)
	store.Open(folder)
	store.Select(0) // alpha

	require.NoError(t, store.Rename(0, "zulu"))

	entries := store.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "beta", entries[0].Name)
	assert.Equal(t, "zulu", entries[1].Name)
	assert.Equal(t, 1, store.Selected(), "selection follows the renamed file")

	_, err := os.Stat(filepath.Join(folder, "zulu.json"))
	assert.NoError(t, err)
}

func TestRename_GuardsAreSilent(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "keep.json", `{"name":"keep","method":"GET","url":"u"}`)

	// no folder open
	err := store.Rename(0, "x")
	assert.Error(t, err)

	store.Open(folder)

	// stale index
	assert.Error(t, store.Rename(5, "x"))

	// name sanitizes to empty
	assert.Error(t, store.Rename(0, "%2F//\\"))

	// nothing changed on disk
	_, statErr := os.Stat(filepath.Join(folder, "keep.json"))
	assert.NoError(t, statErr)
}

func TestRename_KeepsYamlExtension(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "old.yaml", "name: old\nmethod: get\nurl: u\n")
	store.Open(folder)

	require.NoError(t, store.Rename(0, "renamed"))

	_, err := os.Stat(filepath.Join(folder, "renamed.yaml"))
	assert.NoError(t, err)
}

func TestDelete_IndexShiftLaw(t *testing.T) {
	tests := []struct {
		name         string
		selected     int
		deleted      int
		wantSelected int
	}{
		{"selected equals deleted", 1, 1, NoSelection},
		{"selected after deleted", 2, 0, 1},
		{"selected before deleted", 0, 2, 0},
		{"no selection", NoSelection, 1, NoSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, folder := newTestStore(t)
			writeRecord(t, folder, "a.json", `{"name":"a","method":"GET","url":"u"}`)
			writeRecord(t, folder, "b.json", `{"name":"b","method":"GET","url":"u"}`)
			writeRecord(t, folder, "c.json", `{"name":"c","method":"GET","url":"u"}`)
			store.Open(folder)
			require.Len(t, store.Entries(), 3)
			store.Select(tt.selected)

			store.Delete(tt.deleted)

			assert.Len(t, store.Entries(), 2)
			assert.Equal(t, tt.wantSelected, store.Selected())
		})
	}
}

func TestDelete_FailureLeavesStateUnchanged(t *testing.T) {
	store, _, folder := newTestStore(t)
	path := writeRecord(t, folder, "a.json", `{"name":"a","method":"GET","url":"u"}`)
	store.Open(folder)
	store.Select(0)

	// remove the file out from under the store so os.Remove fails
	require.NoError(t, os.Remove(path))

	store.Delete(0)

	assert.Len(t, store.Entries(), 1, "index unchanged on removal failure")
	assert.Equal(t, 0, store.Selected())
}

func TestSelect_OutOfRangeClears(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "a.json", `{"name":"a","method":"GET","url":"u"}`)
	store.Open(folder)

	store.Select(0)
	assert.Equal(t, 0, store.Selected())

	store.Select(9)
	assert.Equal(t, NoSelection, store.Selected())
}

func TestRescan_SelectionSurvivesByPath(t *testing.T) {
	store, _, folder := newTestStore(t)
	writeRecord(t, folder, "b.json", `{"name":"b","method":"GET","url":"u"}`)
	store.Open(folder)
	store.Select(0) // b

	// a new file sorts ahead of the selected one
	writeRecord(t, folder, "a.json", `{"name":"a","method":"GET","url":"u"}`)
	store.Rescan()

	require.Len(t, store.Entries(), 2)
	assert.Equal(t, 1, store.Selected(), "selection tracked the path, not the index")
}
