package screens

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/types"
	"github.com/KAYAMAc/tui/internal/ui"
)

// scriptedRunner serves canned kubectl output keyed by an args prefix.
// Unscripted invocations fail the way a wrong kubectl command would.
type scriptedRunner struct {
	responses map[string]string
	calls     [][]string
}

func (r *scriptedRunner) run(_ context.Context, args []string) ([]byte, []byte, error) {
	r.calls = append(r.calls, args)
	joined := strings.Join(args, " ")
	for prefix, out := range r.responses {
		if strings.HasPrefix(joined, prefix) {
			return []byte(out), nil, nil
		}
	}
	return nil, []byte("error: no script for " + joined), errors.New("exit status 1")
}

func testAppContext(runner *scriptedRunner) *types.AppContext {
	client := k8s.NewClient("", "")
	if runner != nil {
		client = client.WithRunner(runner.run)
	}
	return types.NewAppContext(ui.GetTheme("charm"), client)
}

// drainCmd runs a command tree and collects every message it produces.
// Batches are flattened depth-first.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// findMsg picks the first message of type T out of a drained batch.
func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if typed, ok := m.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeString feeds a string into a screen one rune at a time, the way a
// terminal delivers typed input.
func typeString(screen types.Screen, s string) {
	for _, r := range s {
		screen.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func testPod(name string) k8s.Pod {
	return k8s.Pod{
		ResourceMetadata: k8s.ResourceMetadata{Namespace: "default", Name: name},
		Ready:            "1/1",
		Status:           "Running",
	}
}
