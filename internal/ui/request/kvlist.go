package request

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/restdeck/restdeck/internal/domain"
)

// kvRow is one editable key/value row with an enabled toggle.
type kvRow struct {
	enabled *widget.Check
	key     *widget.Entry
	value   *widget.Entry
}

// KeyValueList edits an ordered sequence of key/value rows. Rows with an
// empty key are excluded from the effective request at snapshot time, so
// the list never needs to police emptiness itself.
type KeyValueList struct {
	widget.BaseWidget

	rows    []*kvRow
	rowsBox *fyne.Container
	content *fyne.Container

	keyPlaceholder   string
	valuePlaceholder string
}

// NewKeyValueList creates a list with a single empty row.
func NewKeyValueList(keyPlaceholder, valuePlaceholder string) *KeyValueList {
	l := &KeyValueList{keyPlaceholder: keyPlaceholder, valuePlaceholder: valuePlaceholder}
	l.ExtendBaseWidget(l)

	l.rowsBox = container.NewVBox()

	addBtn := widget.NewButton("Add Row", func() {
		l.appendRow(domain.KeyValue{Enabled: true})
		l.rowsBox.Refresh()
	})

	l.content = container.NewBorder(nil, addBtn, nil, nil, container.NewVScroll(l.rowsBox))
	l.appendRow(domain.KeyValue{Enabled: true})
	return l
}

// CreateRenderer implements fyne.Widget.
func (l *KeyValueList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.content)
}

// Rows returns the current rows as domain values, in order.
func (l *KeyValueList) Rows() []domain.KeyValue {
	out := make([]domain.KeyValue, 0, len(l.rows))
	for _, r := range l.rows {
		out = append(out, domain.KeyValue{
			Key:     r.key.Text,
			Value:   r.value.Text,
			Enabled: r.enabled.Checked,
		})
	}
	return out
}

// SetRows replaces the list contents. An empty input still yields one
// blank row so the editor always has room to type.
func (l *KeyValueList) SetRows(rows []domain.KeyValue) {
	l.rows = nil
	l.rowsBox.Objects = nil
	if len(rows) == 0 {
		rows = []domain.KeyValue{{Enabled: true}}
	}
	for _, kv := range rows {
		l.appendRow(kv)
	}
	l.rowsBox.Refresh()
}

func (l *KeyValueList) appendRow(kv domain.KeyValue) {
	key := widget.NewEntry()
	key.SetPlaceHolder(l.keyPlaceholder)
	key.SetText(kv.Key)

	value := widget.NewEntry()
	value.SetPlaceHolder(l.valuePlaceholder)
	value.SetText(kv.Value)

	enabled := widget.NewCheck("", nil)
	enabled.SetChecked(kv.Enabled)

	row := &kvRow{enabled: enabled, key: key, value: value}
	l.rows = append(l.rows, row)

	grid := container.New(layout.NewGridLayout(2), key, value)
	l.rowsBox.Add(container.NewBorder(nil, nil, enabled, nil, grid))
}
