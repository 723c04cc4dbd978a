package git

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/restdeck/restdeck/internal/model"
)

// Panel is the read-only version-control overlay: current branch plus
// staged and unstaged change rows. It never mutates the repository.
type Panel struct {
	widget.BaseWidget

	state *model.GitState

	branchLabel *widget.Label
	changeList  *widget.List
	placeholder *widget.Label
	refreshBtn  *widget.Button

	onRefresh func()

	content *fyne.Container
}

// NewPanel creates the git overlay panel bound to the application state.
func NewPanel(state *model.GitState) *Panel {
	p := &Panel{state: state}
	p.ExtendBaseWidget(p)
	p.initializeComponents()
	p.setupBindings()
	return p
}

func (p *Panel) initializeComponents() {
	p.branchLabel = widget.NewLabel("")
	p.branchLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.changeList = widget.NewListWithData(
		p.state.Changes,
		func() fyne.CanvasObject {
			label := widget.NewLabel("template")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(i binding.DataItem, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			strItem := i.(binding.String)
			val, _ := strItem.Get()
			label.SetText(val)
		},
	)

	p.placeholder = widget.NewLabel("Not a git repository")
	p.placeholder.Alignment = fyne.TextAlignCenter
	p.placeholder.TextStyle = fyne.TextStyle{Italic: true}

	p.refreshBtn = widget.NewButton("Refresh", func() {
		if p.onRefresh != nil {
			p.onRefresh()
		}
	})

	p.content = container.NewBorder(
		p.branchLabel,
		p.refreshBtn,
		nil, nil,
		container.NewStack(p.changeList, p.placeholder),
	)
}

func (p *Panel) setupBindings() {
	p.state.Available.AddListener(binding.NewDataListener(func() {
		available, _ := p.state.Available.Get()
		if available {
			p.placeholder.Hide()
		} else {
			p.placeholder.Show()
		}
	}))

	p.state.Branch.AddListener(binding.NewDataListener(func() {
		branch, _ := p.state.Branch.Get()
		if branch == "" {
			p.branchLabel.SetText("")
			return
		}
		p.branchLabel.SetText("Branch: " + branch)
	}))
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// SetOnRefresh registers the explicit refresh handler.
func (p *Panel) SetOnRefresh(fn func()) {
	p.onRefresh = fn
}
