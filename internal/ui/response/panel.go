package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/restdeck/restdeck/internal/model"
)

// ResponsePanel displays the latest response record with reactive
// bindings to state. A record is applied atomically; the only mid-flight
// signal is the loading bar.
type ResponsePanel struct {
	widget.BaseWidget

	state *model.ResponseState

	statusLabel    *widget.Label
	elapsedLabel   *widget.Label
	oversizedLabel *widget.Label
	bodyDisplay    *widget.Entry
	loadingBar     *widget.ProgressBarInfinite

	content *fyne.Container
}

// NewResponsePanel creates a response panel bound to the application state.
func NewResponsePanel(state *model.ResponseState) *ResponsePanel {
	p := &ResponsePanel{state: state}
	p.ExtendBaseWidget(p)
	p.initializeComponents()
	p.setupBindings()
	return p
}

func (p *ResponsePanel) initializeComponents() {
	p.statusLabel = widget.NewLabel("")
	p.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.elapsedLabel = widget.NewLabel("")

	p.oversizedLabel = widget.NewLabel("Response body exceeds 100 KB, kept raw without formatting")
	p.oversizedLabel.TextStyle = fyne.TextStyle{Italic: true}
	p.oversizedLabel.Hide()

	p.bodyDisplay = widget.NewMultiLineEntry()
	p.bodyDisplay.Wrapping = fyne.TextWrapWord
	p.bodyDisplay.Disable() // Read-only

	p.loadingBar = widget.NewProgressBarInfinite()
	p.loadingBar.Hide()

	header := container.NewBorder(nil, nil, p.statusLabel, p.elapsedLabel, p.loadingBar)

	p.content = container.NewBorder(
		container.NewVBox(header, p.oversizedLabel),
		nil, nil, nil,
		p.bodyDisplay,
	)
}

func (p *ResponsePanel) setupBindings() {
	p.statusLabel.Bind(p.state.StatusLine)
	p.elapsedLabel.Bind(p.state.Elapsed)
	p.bodyDisplay.Bind(p.state.Body)

	p.state.Loading.AddListener(binding.NewDataListener(func() {
		loading, _ := p.state.Loading.Get()
		if loading {
			p.loadingBar.Start()
			p.loadingBar.Show()
		} else {
			p.loadingBar.Stop()
			p.loadingBar.Hide()
		}
	}))

	p.state.Oversized.AddListener(binding.NewDataListener(func() {
		oversized, _ := p.state.Oversized.Get()
		if oversized {
			p.oversizedLabel.Show()
		} else {
			p.oversizedLabel.Hide()
		}
	}))
}

// CreateRenderer implements fyne.Widget.
func (p *ResponsePanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}
