package testutil

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

// settle is how long the event loop gets to process a message before
// the test moves on. Queries in tests come from scripted runners that
// answer instantly, so this only covers goroutine scheduling.
const settle = 30 * time.Millisecond

// TestProgram drives a real Bubble Tea program in memory: actual event
// loop and renderer, no TTY. Journey tests use it to walk the dashboard
// the way a user would.
type TestProgram struct {
	tm *teatest.TestModel
	t  *testing.T
}

// NewTestProgram starts the model under teatest at the given terminal
// size.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()
	tm := teatest.NewTestModel(t, model, teatest.WithInitialTermSize(width, height))
	return &TestProgram{tm: tm, t: t}
}

// Send delivers a message to the program and lets the loop process it.
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.tm.Send(msg)
	time.Sleep(settle)
}

// Type simulates typing a string one rune at a time.
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a special key press.
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Wait blocks long enough for an in-flight load or operation to land.
func (tp *TestProgram) Wait() {
	time.Sleep(5 * settle)
}

// Quit stops the program. Safe to defer as a backstop after the test
// already quit through the UI.
func (tp *TestProgram) Quit() {
	tp.tm.Quit()
}

// FinalModel waits for the program to finish and returns the final
// model for state assertions.
func (tp *TestProgram) FinalModel() tea.Model {
	tp.t.Helper()
	return tp.tm.FinalModel(tp.t, teatest.WithFinalTimeout(3*time.Second))
}
