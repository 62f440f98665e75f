package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/KAYAMAc/tui/internal/types"
	"github.com/KAYAMAc/tui/internal/ui"
)

// StatusBar displays transient status messages (success, errors, info,
// loading). It always occupies one line so the layout does not jump.
type StatusBar struct {
	message     string
	messageType types.MessageType
	spinnerView string
	width       int
	theme       *ui.Theme
}

func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// SetMessage sets the status message with type
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) {
	sb.message = msg
	sb.messageType = msgType
}

// ClearMessage clears the status message
func (sb *StatusBar) ClearMessage() {
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// SetSpinnerView supplies the current spinner frame, shown as the prefix
// of loading messages.
func (sb *StatusBar) SetSpinnerView(view string) {
	sb.spinnerView = view
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// Height returns the height (always 1 line to reserve space)
func (sb *StatusBar) Height() int {
	return 1
}

// View renders the status bar
func (sb *StatusBar) View() string {
	baseStyle := lipgloss.NewStyle().
		Width(sb.width).
		Padding(0, 1)

	if sb.message == "" {
		// Render empty line to reserve space
		return baseStyle.Render("")
	}

	msg := sb.message
	maxLen := sb.width - 7
	if maxLen < 20 {
		maxLen = 20
	}
	if len(msg) > maxLen {
		msg = msg[:maxLen-1] + "…"
	}

	switch sb.messageType {
	case types.MessageTypeSuccess:
		return baseStyle.
			Background(sb.theme.Success).
			Foreground(sb.theme.Background).
			Bold(true).
			Render("✓ " + msg)
	case types.MessageTypeError:
		return baseStyle.
			Background(sb.theme.Error).
			Foreground(sb.theme.Background).
			Bold(true).
			Render("✗ " + msg)
	case types.MessageTypeLoading:
		prefix := sb.spinnerView
		if prefix == "" {
			prefix = "…"
		}
		return baseStyle.
			Foreground(sb.theme.Muted).
			Render(prefix + " " + msg)
	default:
		return baseStyle.
			Background(sb.theme.Primary).
			Foreground(sb.theme.Background).
			Bold(true).
			Render("ℹ " + msg)
	}
}
