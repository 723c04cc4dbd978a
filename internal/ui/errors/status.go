package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/restdeck/restdeck/internal/model"
)

// StatusBar displays the latest transient message with a shape-changing
// icon per severity. Each severity uses a distinct icon shape for
// accessibility (not color-only):
//   - info: info icon (circled i)
//   - warning: warning icon (triangle)
//   - error: error icon (X shape)
type StatusBar struct {
	widget.BaseWidget

	state        *model.StatusState
	messageLabel *widget.Label
	indicator    *widget.Icon
}

// NewStatusBar creates a new status bar bound to the given status state.
func NewStatusBar(state *model.StatusState) *StatusBar {
	label := widget.NewLabel("Ready")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:        state,
		messageLabel: label,
		indicator:    widget.NewIcon(theme.InfoIcon()),
	}
	s.ExtendBaseWidget(s)

	state.Message.AddListener(binding.NewDataListener(s.updateStatus))
	state.Severity.AddListener(binding.NewDataListener(s.updateStatus))

	s.updateStatus()

	return s
}

// updateStatus refreshes the status bar from current state.
func (s *StatusBar) updateStatus() {
	severity, _ := s.state.Severity.Get()
	message, _ := s.state.Message.Get()

	switch severity {
	case "warning":
		s.indicator.SetResource(theme.WarningIcon())
	case "error":
		s.indicator.SetResource(theme.ErrorIcon())
	default:
		s.indicator.SetResource(theme.InfoIcon())
	}

	if message == "" {
		s.messageLabel.SetText("Ready")
	} else {
		s.messageLabel.SetText(message)
	}

	s.messageLabel.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	statusContainer := container.NewHBox(
		s.indicator,
		s.messageLabel,
	)

	return widget.NewSimpleRenderer(statusContainer)
}

// ShowMessage is a convenience method to publish a message with a severity.
// Severity should be one of: "info", "warning", "error".
func (s *StatusBar) ShowMessage(severity string, message string) {
	_ = s.state.Severity.Set(severity)
	_ = s.state.Message.Set(message)
}
