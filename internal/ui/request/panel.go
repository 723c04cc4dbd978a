package request

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/restdeck/restdeck/internal/domain"
)

// RequestPanel is the composer: method, URL, name, and the tabbed
// parameter/header/body editors. It owns the mutable composition state;
// dispatch and persistence consume snapshots of it.
type RequestPanel struct {
	widget.BaseWidget

	logger *slog.Logger

	nameEntry    *widget.Entry
	methodSelect *widget.Select
	urlEntry     *widget.Entry
	sendBtn      *widget.Button

	params    *KeyValueList
	headers   *KeyValueList
	bodyEntry *widget.Entry

	onSend func()

	content *fyne.Container
}

// NewRequestPanel creates the composer panel.
func NewRequestPanel(logger *slog.Logger) *RequestPanel {
	p := &RequestPanel{logger: logger}
	p.ExtendBaseWidget(p)
	p.initializeComponents()
	return p
}

func (p *RequestPanel) initializeComponents() {
	p.nameEntry = widget.NewEntry()
	p.nameEntry.SetPlaceHolder("Request name")

	methods := domain.Methods()
	options := make([]string, len(methods))
	for i, m := range methods {
		options[i] = string(m)
	}
	p.methodSelect = widget.NewSelect(options, nil)
	p.methodSelect.SetSelected(string(domain.MethodGet))

	p.urlEntry = widget.NewEntry()
	p.urlEntry.SetPlaceHolder("https://api.example.com/resource")

	p.sendBtn = widget.NewButton("Send", func() {
		if p.onSend != nil {
			p.onSend()
		}
	})
	p.sendBtn.Importance = widget.HighImportance

	p.params = NewKeyValueList("key", "value")
	p.headers = NewKeyValueList("Header-Name", "value")

	p.bodyEntry = widget.NewMultiLineEntry()
	p.bodyEntry.SetPlaceHolder(`{"body": "sent for POST, PUT and PATCH"}`)

	tabs := container.NewAppTabs(
		container.NewTabItem("Params", p.params),
		container.NewTabItem("Headers", p.headers),
		container.NewTabItem("Body", p.bodyEntry),
	)

	requestBar := container.NewBorder(nil, nil, p.methodSelect, p.sendBtn, p.urlEntry)

	p.content = container.NewBorder(
		container.NewVBox(p.nameEntry, requestBar),
		nil, nil, nil,
		tabs,
	)
}

// CreateRenderer implements fyne.Widget.
func (p *RequestPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// SetOnSend registers the send handler.
func (p *RequestPanel) SetOnSend(fn func()) {
	p.onSend = fn
}

// Snapshot returns a copy of the composed request, detached from the
// editor widgets. In-flight dispatches keep working from it even as the
// user keeps editing.
func (p *RequestPanel) Snapshot() domain.Request {
	return domain.Request{
		Name:    p.nameEntry.Text,
		Method:  domain.ParseMethod(p.methodSelect.Selected),
		URL:     p.urlEntry.Text,
		Params:  p.params.Rows(),
		Headers: p.headers.Rows(),
		Body:    p.bodyEntry.Text,
	}
}

// SetRequest replaces the composer state, e.g. after loading an entry.
func (p *RequestPanel) SetRequest(req domain.Request) {
	p.nameEntry.SetText(req.Name)
	p.methodSelect.SetSelected(string(req.Method))
	p.urlEntry.SetText(req.URL)
	p.params.SetRows(req.Params)
	p.headers.SetRows(req.Headers)
	p.bodyEntry.SetText(req.Body)

	p.logger.Debug("composer loaded request",
		slog.String("name", req.Name),
		slog.String("method", string(req.Method)))
}

// Clear resets the composer to a fresh request.
func (p *RequestPanel) Clear() {
	p.SetRequest(domain.Request{Method: domain.MethodGet})
}
