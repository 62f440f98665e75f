package types

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KAYAMAc/tui/internal/k8s"
)

// Screen is one level of the navigation stack. Screens are Bubble Tea
// models that additionally expose their breadcrumb title, key hints, and
// a way to re-run their query.
type Screen interface {
	tea.Model
	Title() string
	HelpText() string
	Refresh() tea.Cmd
	SetSize(width, height int)

	// ItemCount is the number of rows currently listed, for the header.
	ItemCount() int

	// Filtering reports whether the filter input has focus. While it
	// does, the app routes every key to the screen.
	Filtering() bool

	// HandleBack gives the screen first claim on Esc. Returning true
	// consumes it (a committed filter was cleared); false lets the app
	// pop the screen.
	HandleBack() bool
}

// Navigation messages. Screens emit these when the user picks a row;
// the app reacts by pushing the next screen.

// ContextSelectedMsg reports the context chosen on the context screen.
type ContextSelectedMsg struct {
	Name string
}

// NamespaceSelectedMsg reports the namespace chosen on the namespace
// screen.
type NamespaceSelectedMsg struct {
	Name string
}

// ResourceSelectedMsg reports the resource chosen on the resource list
// screen. The app pushes the operation screen for it.
type ResourceSelectedMsg struct {
	Kind      k8s.Kind
	Namespace string
	Name      string
}

// RefreshCompleteMsg reports how long the current screen's query took.
type RefreshCompleteMsg struct {
	Duration time.Duration
}

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
	MessageTypeLoading // Loading state with spinner
)

// StatusMsg updates the transient message shown in the status bar.
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the status bar message.
type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// LoadingMsg creates a loading status message (with spinner)
func LoadingMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeLoading}
}
