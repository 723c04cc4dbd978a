package ui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/restdeck/restdeck/internal/domain"
	"github.com/restdeck/restdeck/internal/gitstatus"
	"github.com/restdeck/restdeck/internal/httpclient"
	"github.com/restdeck/restdeck/internal/model"
	uierrors "github.com/restdeck/restdeck/internal/ui/errors"
	"github.com/restdeck/restdeck/internal/ui/git"
	"github.com/restdeck/restdeck/internal/ui/request"
	"github.com/restdeck/restdeck/internal/ui/response"
	uiworkspace "github.com/restdeck/restdeck/internal/ui/workspace"
	"github.com/restdeck/restdeck/internal/workspace"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.ApplicationState
	Logger() *slog.Logger
	Workspace() *workspace.Store
	Dispatcher() *httpclient.Manager
	Git() *gitstatus.Service
	RefreshGitState()
	SetOnFolderChanged(fn func(folder string))
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window fyne.Window
	state  *model.ApplicationState
	logger *slog.Logger
	app    AppController

	// Panel widgets
	workspacePanel *uiworkspace.Panel
	gitPanel       *git.Panel
	requestPanel   *request.RequestPanel
	responsePanel  *response.ResponsePanel
	statusBar      *uierrors.StatusBar
}

// NewMainWindow creates a new main window with the application layout.
// The window is split horizontally with:
//   - Left side: sidebar tabs (saved requests, repository status)
//   - Right side: Request Panel (top), Response Panel (middle), Status Bar (bottom)
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Restdeck - HTTP Client")

	mw := &MainWindow{
		window: window,
		state:  app.State(),
		logger: app.Logger(),
		app:    app,
	}

	mw.workspacePanel = uiworkspace.NewPanel(app.Workspace(), mw.logger, window)
	mw.gitPanel = git.NewPanel(mw.state.Git)
	mw.requestPanel = request.NewRequestPanel(mw.logger)
	mw.responsePanel = response.NewResponsePanel(mw.state.Response)
	mw.statusBar = uierrors.NewStatusBar(mw.state.Status)

	mw.wireCallbacks()

	mw.SetContent()

	window.Resize(fyne.NewSize(1200, 800))

	return mw
}

// wireCallbacks sets up all the event handlers and connects components
func (w *MainWindow) wireCallbacks() {
	// Send request
	w.requestPanel.SetOnSend(func() {
		w.handleSend()
	})

	// Workspace file flow
	w.workspacePanel.SetOnLoad(func(req domain.Request) {
		w.requestPanel.SetRequest(req)
		w.statusBar.ShowMessage("info", "Loaded '"+req.Name+"'")
	})

	w.workspacePanel.SetOnSave(func() domain.Request {
		return w.requestPanel.Snapshot()
	})

	w.workspacePanel.SetOnNew(func() {
		w.requestPanel.Clear()
	})

	// Folder changes refresh the sidebar once the repository view is rebuilt
	w.app.SetOnFolderChanged(func(folder string) {
		w.handleFolderChanged(folder)
	})

	w.gitPanel.SetOnRefresh(func() {
		w.handleGitRefresh()
	})
}

// handleSend snapshots the composer and dispatches it in the background.
// The record lands back on the event thread in one piece.
func (w *MainWindow) handleSend() {
	snapshot := w.requestPanel.Snapshot()
	if snapshot.URL == "" {
		w.statusBar.ShowMessage("warning", "Enter a URL before sending")
		return
	}

	_ = w.state.Response.Loading.Set(true)
	w.statusBar.ShowMessage("info", "Sending "+string(snapshot.Method)+" "+snapshot.URL)

	id := w.app.Dispatcher().Dispatch(snapshot, func(id string, record domain.ResponseRecord) {
		fyne.Do(func() {
			w.applyRecord(record)
		})
	})

	w.logger.Debug("send started", slog.String("id", id))
}

// applyRecord writes a completed dispatch into the response state.
func (w *MainWindow) applyRecord(record domain.ResponseRecord) {
	resp := w.state.Response

	if record.Failed() {
		_ = resp.StatusLine.Set(record.StatusLabel)
		w.statusBar.ShowMessage("error", record.Body)
	} else {
		statusLine := fmt.Sprintf("%d %s", record.StatusCode, record.StatusLabel)
		_ = resp.StatusLine.Set(statusLine)
		w.statusBar.ShowMessage("info", statusLine)
	}

	_ = resp.Body.Set(record.Body)
	_ = resp.Elapsed.Set(record.Elapsed.Round(time.Millisecond).String())
	_ = resp.Oversized.Set(record.BodyOversized)

	// Other dispatches may still be outstanding.
	_ = resp.Loading.Set(w.app.Dispatcher().InFlight() > 0)
}

// handleFolderChanged refreshes the sidebar after a folder change. The
// repository view has already been rebuilt by the time this runs.
func (w *MainWindow) handleFolderChanged(folder string) {
	w.logger.Info("workspace folder changed", slog.String("folder", folder))

	w.workspacePanel.Refresh()
	w.statusBar.ShowMessage("info", "Opened "+folder)
}

// handleGitRefresh re-reads repository status off the event thread.
func (w *MainWindow) handleGitRefresh() {
	go func() {
		w.app.RefreshGitState()
	}()
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌─────────────────┬──────────────────────────────┐
//	│  Files │ Git    │      Request Panel           │
//	│                 ├──────────────────────────────┤
//	│  (sidebar tabs) │      Response Panel          │
//	│                 ├──────────────────────────────┤
//	│                 │      Status Bar              │
//	└─────────────────┴──────────────────────────────┘
func (w *MainWindow) SetContent() {
	sidebar := container.NewAppTabs(
		container.NewTabItem("Files", w.workspacePanel),
		container.NewTabItem("Git", w.gitPanel),
	)

	rightPanel := container.NewBorder(
		nil,         // top
		w.statusBar, // bottom
		nil,         // left
		nil,         // right
		container.NewVSplit(
			w.requestPanel,  // top half
			w.responsePanel, // bottom half
		),
	)

	mainSplit := container.NewHSplit(
		sidebar,
		rightPanel,
	)

	// 30% for the sidebar, 70% for the composer and response.
	mainSplit.SetOffset(0.3)

	w.window.SetContent(mainSplit)
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
