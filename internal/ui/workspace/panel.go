package workspace

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/restdeck/restdeck/internal/domain"
	"github.com/restdeck/restdeck/internal/workspace"
)

// Panel is the saved-request sidebar: the workspace index plus the
// folder and file actions. All state lives in the store; the panel only
// renders it and forwards user intent.
type Panel struct {
	widget.BaseWidget

	store  *workspace.Store
	logger *slog.Logger
	window fyne.Window

	folderLabel *widget.Label
	listWidget  *widget.List
	placeholder *widget.Label

	openBtn   *widget.Button
	saveBtn   *widget.Button
	renameBtn *widget.Button
	deleteBtn *widget.Button
	newBtn    *widget.Button

	// onLoad delivers a freshly loaded request to the composer.
	onLoad func(req domain.Request)
	// onSave asks the composer for its current state.
	onSave func() domain.Request
	// onNew clears the composer and the entry association.
	onNew func()

	content *fyne.Container
}

// NewPanel creates the workspace sidebar.
func NewPanel(store *workspace.Store, logger *slog.Logger, window fyne.Window) *Panel {
	p := &Panel{
		store:  store,
		logger: logger,
		window: window,
	}
	p.ExtendBaseWidget(p)
	p.buildUI()
	p.initializeComponents()
	p.Refresh()
	return p
}

func (p *Panel) buildUI() {
	p.folderLabel = widget.NewLabel("No folder open")
	p.folderLabel.Truncation = fyne.TextTruncateEllipsis

	p.listWidget = widget.NewList(
		func() int { return len(p.store.Entries()) },
		func() fyne.CanvasObject {
			method := widget.NewLabel("GET")
			method.TextStyle = fyne.TextStyle{Bold: true}
			return container.NewBorder(nil, nil, method, nil, widget.NewLabel("template"))
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			entries := p.store.Entries()
			if id < 0 || id >= len(entries) {
				return
			}
			row := o.(*fyne.Container)
			method := row.Objects[1].(*widget.Label)
			name := row.Objects[0].(*widget.Label)

			entry := entries[id]
			if entry.Method != nil {
				method.SetText(string(*entry.Method))
			} else {
				method.SetText("?")
			}
			name.SetText(entry.Name)
		},
	)

	p.listWidget.OnSelected = func(id widget.ListItemID) {
		p.handleLoad(id)
	}

	p.placeholder = widget.NewLabel("No saved requests in this folder")
	p.placeholder.Alignment = fyne.TextAlignCenter
	p.placeholder.Wrapping = fyne.TextWrapWord
	p.placeholder.TextStyle = fyne.TextStyle{Italic: true}

	p.openBtn = widget.NewButton("Open Folder", p.handleOpenFolder)
	p.saveBtn = widget.NewButton("Save", p.handleSave)
	p.renameBtn = widget.NewButton("Rename", p.handleRename)
	p.deleteBtn = widget.NewButton("Delete", p.handleDelete)
	p.deleteBtn.Importance = widget.DangerImportance
	p.newBtn = widget.NewButton("New", p.handleNew)
}

func (p *Panel) initializeComponents() {
	title := widget.NewLabelWithStyle("Requests", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	fileRow := container.NewGridWithColumns(2, p.saveBtn, p.newBtn)
	actionRow := container.NewGridWithColumns(2, p.renameBtn, p.deleteBtn)

	p.content = container.NewBorder(
		container.NewVBox(title, p.folderLabel, p.openBtn),
		container.NewVBox(fileRow, actionRow),
		nil, nil,
		container.NewStack(p.listWidget, p.placeholder),
	)
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// SetOnLoad sets the callback invoked with a loaded request.
func (p *Panel) SetOnLoad(fn func(req domain.Request)) {
	p.onLoad = fn
}

// SetOnSave sets the callback that snapshots the composer for saving.
func (p *Panel) SetOnSave(fn func() domain.Request) {
	p.onSave = fn
}

// SetOnNew sets the callback invoked when a new blank request starts.
func (p *Panel) SetOnNew(fn func()) {
	p.onNew = fn
}

// Refresh redraws the sidebar from store state.
func (p *Panel) Refresh() {
	if folder := p.store.Folder(); folder != "" {
		p.folderLabel.SetText(folder)
	} else {
		p.folderLabel.SetText("No folder open")
	}

	if len(p.store.Entries()) == 0 {
		p.placeholder.Show()
	} else {
		p.placeholder.Hide()
	}

	if selected := p.store.Selected(); selected != workspace.NoSelection {
		p.listWidget.Select(selected)
	} else {
		p.listWidget.UnselectAll()
	}
	p.listWidget.Refresh()
	p.BaseWidget.Refresh()
}

func (p *Panel) handleOpenFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		p.store.Open(uri.Path())
		p.Refresh()
	}, p.window)
}

func (p *Panel) handleLoad(index int) {
	req := p.store.Load(index)
	if req == nil {
		ShowErrorDialog(p.window, "Could not load the request file. It may be missing or malformed.")
		p.Refresh()
		return
	}
	if p.onLoad != nil {
		p.onLoad(*req)
	}
}

func (p *Panel) handleSave() {
	if p.onSave == nil {
		return
	}
	if p.store.Folder() == "" {
		ShowErrorDialog(p.window, "Open a workspace folder before saving.")
		return
	}

	p.store.Save(p.onSave(), p.store.Selected())
	p.Refresh()
}

func (p *Panel) handleNew() {
	p.store.Select(workspace.NoSelection)
	if p.onNew != nil {
		p.onNew()
	}
	p.Refresh()
}

func (p *Panel) handleRename() {
	selected := p.store.Selected()
	entries := p.store.Entries()
	if selected == workspace.NoSelection || selected >= len(entries) {
		ShowErrorDialog(p.window, "Select a request to rename.")
		return
	}

	ShowRenamePrompt(p.window, entries[selected].Name, func(newName string) {
		if err := p.store.Rename(selected, newName); err != nil {
			p.logger.Warn("rename failed", slog.Any("error", err))
			ShowErrorDialog(p.window, "Rename failed: "+err.Error())
		}
		p.Refresh()
	})
}

func (p *Panel) handleDelete() {
	selected := p.store.Selected()
	entries := p.store.Entries()
	if selected == workspace.NoSelection || selected >= len(entries) {
		ShowErrorDialog(p.window, "Select a request to delete.")
		return
	}

	ShowDeleteConfirm(p.window, entries[selected].Name, func() {
		p.store.Delete(selected)
		p.Refresh()
	})
}
