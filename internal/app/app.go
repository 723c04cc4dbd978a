package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/restdeck/restdeck/internal/errors"
	"github.com/restdeck/restdeck/internal/gitstatus"
	"github.com/restdeck/restdeck/internal/httpclient"
	"github.com/restdeck/restdeck/internal/logging"
	"github.com/restdeck/restdeck/internal/model"
	"github.com/restdeck/restdeck/internal/settings"
	"github.com/restdeck/restdeck/internal/workspace"
)

const appName = "restdeck"

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *Config
	logger   *slog.Logger
	settings settings.Store
	store    *workspace.Store
	dispatch *httpclient.Manager
	state    *model.ApplicationState

	// gitSvc is nil when the workspace folder is not inside a repository.
	gitSvc *gitstatus.Service

	// onFolderChanged notifies the UI after the repository view has been
	// rebuilt for a new folder.
	onFolderChanged func(folder string)
}

// New creates an App instance with the given configuration. This performs
// all dependency injection and wiring, including restoring the last
// opened workspace folder.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger(appName, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("initializing Restdeck",
		slog.Bool("debug", cfg.Debug),
		slog.String("settings_path", cfg.SettingsPath))

	var cfgStore settings.Store
	if cfg.SettingsPath != "" {
		cfgStore = settings.NewFileStoreAt(cfg.SettingsPath, logger)
	} else {
		cfgStore, err = settings.NewFileStore(appName, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize settings store: %w", err)
		}
	}

	store := workspace.NewStore(cfgStore, logger)
	dispatcher := httpclient.NewDispatcher(logger)
	state := model.NewApplicationState()

	a := &App{
		fyneApp:  fyneApp,
		config:   cfg,
		logger:   logger,
		settings: cfgStore,
		store:    store,
		dispatch: httpclient.NewManager(dispatcher, logger),
		state:    state,
	}

	// A folder change invalidates the repository view; rebuild it.
	store.SetOnFolderChanged(a.reopenRepository)

	if last := cfgStore.Load().LastOpenedFolder; last != "" {
		logger.Info("restoring last opened folder", slog.String("folder", last))
		store.Open(last)
	}

	logger.Info("application initialized successfully")
	return a, nil
}

// Run starts the application and displays the main window. This is a
// blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Workspace returns the workspace store for use by UI components.
func (a *App) Workspace() *workspace.Store {
	return a.store
}

// Dispatcher returns the dispatch manager.
func (a *App) Dispatcher() *httpclient.Manager {
	return a.dispatch
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}

// Git returns the repository status service, nil when the workspace
// folder is not inside a repository.
func (a *App) Git() *gitstatus.Service {
	return a.gitSvc
}

// RefreshGitState re-reads branch and change lists into the bound UI
// state. Safe to call with no repository: the overlay just empties.
func (a *App) RefreshGitState() {
	git := a.state.Git
	if a.gitSvc == nil {
		_ = git.Available.Set(false)
		_ = git.Branch.Set("")
		_ = git.Changes.Set(nil)
		return
	}

	_ = git.Available.Set(true)
	_ = git.Branch.Set(a.gitSvc.CurrentBranch())

	changes, err := a.gitSvc.Status()
	if err != nil {
		a.logger.Warn("failed to read repository status", slog.Any("error", err))
		_ = git.Changes.Set(nil)
		return
	}

	rows := make([]string, 0, len(changes))
	for _, c := range changes {
		stage := "unstaged"
		if c.Staged {
			stage = "staged"
		}
		rows = append(rows, fmt.Sprintf("[%s] %s  %s", stage, c.Kind, c.Path))
	}
	_ = git.Changes.Set(rows)
}

// SetOnFolderChanged registers the UI hook invoked after a folder change
// has been fully applied. Folder restore at startup runs before the UI
// exists, so the hook may legitimately be unset.
func (a *App) SetOnFolderChanged(fn func(folder string)) {
	a.onFolderChanged = fn
}

// reopenRepository re-initializes the status reader for a new folder.
func (a *App) reopenRepository(folder string) {
	_ = a.state.WorkspaceFolder.Set(folder)

	svc, err := gitstatus.Open(folder, a.logger)
	if err != nil {
		if errors.ClassifyError(err).Severity > errors.SeverityInfo {
			a.logger.Warn("failed to open repository", slog.Any("error", err))
		}
		a.gitSvc = nil
	} else {
		a.gitSvc = svc
	}

	a.RefreshGitState()

	if a.onFolderChanged != nil {
		a.onFolderChanged(folder)
	}
}
