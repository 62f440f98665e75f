package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KAYAMAc/tui/internal/commands"
	"github.com/KAYAMAc/tui/internal/components"
	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/screens"
	"github.com/KAYAMAc/tui/internal/types"
	"github.com/KAYAMAc/tui/internal/ui"
)

// scriptedRunner serves canned kubectl output keyed by an args prefix
// and records every invocation.
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

// called reports whether any recorded invocation starts with the verb.
func (r *scriptedRunner) called(verb string) bool {
	for _, call := range r.calls {
		if len(call) > 0 && call[0] == verb {
			return true
		}
	}
	return false
}

func clusterScripts() map[string]string {
	return map[string]string{
		"config get-contexts -o name": "dev\nprod-cluster\n",
		"config current-context":      "dev\n",
		"get namespaces -o json": `{"items":[
			{"metadata":{"name":"default","creationTimestamp":"2026-08-20T10:00:00Z"},"status":{"phase":"Active"}},
			{"metadata":{"name":"billing","creationTimestamp":"2026-08-20T10:00:00Z"},"status":{"phase":"Active"}}
		]}`,
		"get pods -n default -o json": `{"items":[
			{"metadata":{"name":"web-0","namespace":"default","creationTimestamp":"2026-08-23T09:00:00Z"},
			 "status":{"phase":"Running","containerStatuses":[{"name":"app","ready":true,"restartCount":0}]}}
		]}`,
		"get pods -n billing -o json": `{"items":[]}`,
		"describe pod web-0":          "Name:         web-0\nNamespace:    default\nStatus:       Running\n",
	}
}

func testModel(runner *scriptedRunner, opts Options) Model {
	client := k8s.NewClient("", "")
	if runner != nil {
		client = client.WithRunner(runner.run)
	}
	appCtx := types.NewAppContext(ui.GetTheme("charm"), client)
	return NewModel(appCtx, opts)
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	return model.(Model), cmd
}

// drainCmd runs a command tree and collects every message it produces.
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
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func findOp(t *testing.T, kind k8s.Kind, id string) commands.Operation {
	t.Helper()
	for _, op := range commands.ForKind(kind) {
		if op.ID == id {
			return op
		}
	}
	t.Fatalf("no operation %q for %s", id, kind)
	return commands.Operation{}
}

func podTarget() commands.Target {
	return commands.Target{Kind: k8s.KindPod, Namespace: "default", Name: "web-0"}
}

// navigateToOperations walks a fresh model down to the operation list
// for web-0 by feeding the selection messages the screens would emit.
func navigateToOperations(t *testing.T, runner *scriptedRunner) Model {
	t.Helper()
	m := testModel(runner, Options{})
	m, _ = apply(t, m, types.ContextSelectedMsg{Name: "dev"})
	m, _ = apply(t, m, types.NamespaceSelectedMsg{Name: "default"})
	m, _ = apply(t, m, types.ResourceSelectedMsg(podTarget()))
	return m
}

func TestNewModelStartsOnContexts(t *testing.T) {
	m := testModel(nil, Options{})

	assert.Len(t, m.stack, 1)
	assert.Equal(t, "Select Kubernetes Context", m.top().Title())
}

func TestNewModelWithStartupFlags(t *testing.T) {
	m := testModel(nil, Options{Context: "prod-cluster", Namespace: "billing"})

	// The skipped screens still sit under the starting one.
	assert.Len(t, m.stack, 3)
	assert.Equal(t, "Pods", m.top().Title())
	assert.Equal(t, "prod-cluster", m.scoped.Client.Context())

	// Init loads every stacked screen, not just the top.
	runner := &scriptedRunner{responses: clusterScripts()}
	m = testModel(runner, Options{Context: "dev", Namespace: "default"})
	drainCmd(m.Init())
	assert.True(t, runner.called("config"))
	assert.True(t, runner.called("get"))
}

func TestSelectionsPushScreens(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := testModel(runner, Options{})

	m, cmd := apply(t, m, types.ContextSelectedMsg{Name: "dev"})
	require.Len(t, m.stack, 2)
	assert.Equal(t, "Select Namespace", m.top().Title())
	assert.Equal(t, "dev", m.scoped.Client.Context())

	// The pushed screen's Init goes straight to kubectl.
	require.NotEmpty(t, drainCmd(cmd))
	assert.True(t, runner.called("get"))

	m, _ = apply(t, m, types.NamespaceSelectedMsg{Name: "default"})
	require.Len(t, m.stack, 3)
	assert.Equal(t, "Pods", m.top().Title())

	m, _ = apply(t, m, types.ResourceSelectedMsg(podTarget()))
	require.Len(t, m.stack, 4)
	assert.Equal(t, "Operations: web-0", m.top().Title())
}

func TestEscPopsAndClearsScope(t *testing.T) {
	m := navigateToOperations(t, &scriptedRunner{responses: clusterScripts()})
	require.Len(t, m.stack, 4)

	m, _ = apply(t, m, keyMsg("esc"))
	assert.Len(t, m.stack, 3)
	assert.Equal(t, "default", m.namespace)

	m, _ = apply(t, m, keyMsg("esc"))
	assert.Len(t, m.stack, 2)
	assert.Equal(t, "", m.namespace)
	assert.Equal(t, "dev", m.contextName)

	m, _ = apply(t, m, keyMsg("esc"))
	assert.Len(t, m.stack, 1)
	assert.Equal(t, "", m.contextName)
	assert.Nil(t, m.scoped)

	// The root never pops.
	m, _ = apply(t, m, keyMsg("esc"))
	assert.Len(t, m.stack, 1)
}

func TestQuitKeys(t *testing.T) {
	m := testModel(nil, Options{})

	_, cmd := m.Update(keyMsg("q"))
	_, ok := findMsg[tea.QuitMsg](drainCmd(cmd))
	assert.True(t, ok)

	_, cmd = m.Update(keyMsg("ctrl+c"))
	_, ok = findMsg[tea.QuitMsg](drainCmd(cmd))
	assert.True(t, ok)
}

func TestQuitKeyGoesToFilterWhileTyping(t *testing.T) {
	m := testModel(nil, Options{})
	m, _ = apply(t, m, keyMsg("/"))
	require.True(t, m.top().Filtering())

	m, cmd := apply(t, m, keyMsg("q"))

	_, quit := findMsg[tea.QuitMsg](drainCmd(cmd))
	assert.False(t, quit)
	assert.True(t, m.top().Filtering())
}

func TestCtrlCQuitsEvenWhileFiltering(t *testing.T) {
	m := testModel(nil, Options{})
	m, _ = apply(t, m, keyMsg("/"))

	_, cmd := m.Update(keyMsg("ctrl+c"))

	_, ok := findMsg[tea.QuitMsg](drainCmd(cmd))
	assert.True(t, ok)
}

func TestImmediateOperationSetsBusy(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := navigateToOperations(t, runner)
	callsBefore := len(runner.calls)

	m, cmd := apply(t, m, screens.OperationSelectedMsg{
		Op:     findOp(t, k8s.KindPod, "describe"),
		Target: podTarget(),
	})

	assert.True(t, m.busy)
	assert.Contains(t, m.statusBar.View(), "Running Describe on web-0")
	// Nothing has been spawned until the dispatch command runs.
	assert.Len(t, runner.calls, callsBefore)

	result, ok := findMsg[commands.OperationResultMsg](drainCmd(cmd))
	require.True(t, ok)
	assert.True(t, result.Result.Success)
	assert.Contains(t, result.Result.Output, "web-0")
	assert.True(t, runner.called("describe"))
}

func TestSecondOperationBlockedWhileBusy(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := navigateToOperations(t, runner)

	m, _ = apply(t, m, screens.OperationSelectedMsg{
		Op:     findOp(t, k8s.KindPod, "describe"),
		Target: podTarget(),
	})
	require.True(t, m.busy)
	callsBefore := len(runner.calls)

	m, cmd := apply(t, m, screens.OperationSelectedMsg{
		Op:     findOp(t, k8s.KindPod, "logs"),
		Target: podTarget(),
	})

	assert.True(t, m.busy)
	assert.NotNil(t, cmd, "expected the status clear tick")
	assert.Len(t, runner.calls, callsBefore, "blocked dispatch must not reach kubectl")
	assert.Contains(t, m.statusBar.View(), "Another operation is still running")
}

func TestRefreshQueuedWhileBusy(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := navigateToOperations(t, runner)
	m, _ = apply(t, m, screens.OperationSelectedMsg{
		Op:     findOp(t, k8s.KindPod, "describe"),
		Target: podTarget(),
	})
	require.True(t, m.busy)

	m, _ = apply(t, m, keyMsg("r"))
	assert.True(t, m.pendingRefresh)
	assert.Contains(t, m.statusBar.View(), "Refresh queued")

	// The queued refresh fires when the result lands.
	m, _ = apply(t, m, commands.OperationResultMsg{
		Op:     findOp(t, k8s.KindPod, "describe"),
		Target: podTarget(),
		Result: k8s.Result{Output: "ok", Success: true},
	})
	assert.False(t, m.busy)
	assert.False(t, m.pendingRefresh)
	assert.True(t, m.modalOpen)
}

func TestOperationResultOpensModal(t *testing.T) {
	m := navigateToOperations(t, &scriptedRunner{responses: clusterScripts()})

	m, _ = apply(t, m, commands.OperationResultMsg{
		Op:       findOp(t, k8s.KindPod, "describe"),
		Target:   podTarget(),
		Result:   k8s.Result{Output: "Name: web-0", Success: true},
		Duration: 120 * time.Millisecond,
	})

	require.True(t, m.modalOpen)
	assert.Contains(t, m.View(), "Name: web-0")
	assert.Contains(t, m.statusBar.View(), "Describe finished in 120ms")

	// Esc closes the modal and stays on the operation list.
	m, _ = apply(t, m, keyMsg("esc"))
	assert.False(t, m.modalOpen)
	assert.Len(t, m.stack, 4)
}

func TestFailedOperationShowsStderr(t *testing.T) {
	m := navigateToOperations(t, &scriptedRunner{responses: clusterScripts()})

	m, _ = apply(t, m, commands.OperationResultMsg{
		Op:     findOp(t, k8s.KindPod, "describe"),
		Target: podTarget(),
		Result: k8s.Result{ErrText: `pods "web-0" not found`, Success: false},
	})

	require.True(t, m.modalOpen)
	assert.Contains(t, m.View(), `pods "web-0" not found`)
	assert.Contains(t, m.statusBar.View(), "Describe failed")
}

func TestStagedCommandNeverSpawns(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := testModel(runner, Options{})
	m, _ = apply(t, m, types.ContextSelectedMsg{Name: "prod-cluster"})
	m, _ = apply(t, m, types.NamespaceSelectedMsg{Name: "billing"})
	target := commands.Target{Kind: k8s.KindDeployment, Namespace: "billing", Name: "api-server"}
	m, _ = apply(t, m, types.ResourceSelectedMsg(target))
	callsBefore := len(runner.calls)

	m, cmd := apply(t, m, screens.OperationSelectedMsg{
		Op:     findOp(t, k8s.KindDeployment, "delete"),
		Target: target,
	})
	assert.False(t, m.busy)

	staged, ok := findMsg[commands.StagedCommandMsg](drainCmd(cmd))
	require.True(t, ok)
	assert.Equal(t, "kubectl delete deployment api-server -n billing --context prod-cluster", staged.CommandText)
	assert.True(t, staged.Warning)
	assert.Len(t, runner.calls, callsBefore)
	assert.False(t, runner.called("delete"))

	m, _ = apply(t, m, staged)
	require.True(t, m.modalOpen)
	assert.True(t, m.modal.Staged())
	view := m.View()
	assert.Contains(t, view, "kubectl delete deployment api-server -n billing --context prod-cluster")
	assert.Contains(t, view, "Destructive operation")
}

func TestInteractiveCommandStagedWithoutWarning(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := navigateToOperations(t, runner)

	_, cmd := m.Update(screens.OperationSelectedMsg{
		Op:     findOp(t, k8s.KindPod, "exec-shell"),
		Target: podTarget(),
	})

	staged, ok := findMsg[commands.StagedCommandMsg](drainCmd(cmd))
	require.True(t, ok)
	assert.Equal(t, "kubectl exec -it web-0 -n default --context dev -- /bin/sh", staged.CommandText)
	assert.False(t, staged.Warning)
	assert.False(t, runner.called("exec"))
}

func TestModalKeys(t *testing.T) {
	m := navigateToOperations(t, &scriptedRunner{responses: clusterScripts()})
	m, _ = apply(t, m, commands.OperationResultMsg{
		Op:     findOp(t, k8s.KindPod, "describe"),
		Target: podTarget(),
		Result: k8s.Result{Output: "line\nline\nline", Success: true},
	})
	require.True(t, m.modalOpen)

	// Scroll keys stay inside the modal, which stays open.
	m, _ = apply(t, m, keyMsg("j"))
	assert.True(t, m.modalOpen)
	m, _ = apply(t, m, keyMsg("G"))
	assert.True(t, m.modalOpen)

	// Quit works from every screen, the modal included.
	m, cmd := apply(t, m, keyMsg("q"))
	_, quit := findMsg[tea.QuitMsg](drainCmd(cmd))
	assert.True(t, quit)
}

func TestRefreshCompleteUpdatesHeader(t *testing.T) {
	m := testModel(nil, Options{})

	m, _ = apply(t, m, types.RefreshCompleteMsg{Duration: 80 * time.Millisecond})

	assert.Contains(t, m.header.View(), "Last refresh:")
}

func TestStatusClearIgnoresStaleTick(t *testing.T) {
	m := testModel(nil, Options{})

	m, _ = apply(t, m, types.SuccessMsg("first"))
	m, _ = apply(t, m, types.SuccessMsg("second"))
	require.Contains(t, m.statusBar.View(), "second")

	// The clear tick of the replaced message must not wipe the new one.
	m, _ = apply(t, m, types.ClearStatusMsg{MessageID: 1})
	assert.Contains(t, m.statusBar.View(), "second")

	m, _ = apply(t, m, types.ClearStatusMsg{MessageID: 2})
	assert.NotContains(t, m.statusBar.View(), "second")
}

func TestWindowSizePropagates(t *testing.T) {
	m := testModel(nil, Options{Context: "dev", Namespace: "default"})

	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})

	assert.Equal(t, 140, m.width)
	assert.Equal(t, 50, m.height)
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestHeaderTracksKindSwitch(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := testModel(runner, Options{Context: "dev", Namespace: "default"})
	require.Equal(t, "Pods", m.top().Title())

	m, _ = apply(t, m, keyMsg("3"))

	assert.Equal(t, "Deployments", m.top().Title())
	assert.Contains(t, m.header.View(), "Deployments")
}

func TestKindResetsOnNamespaceReentry(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := testModel(runner, Options{Context: "dev", Namespace: "default"})
	m, _ = apply(t, m, keyMsg("3"))
	require.Equal(t, "Deployments", m.top().Title())

	// Backing out and re-entering the namespace starts on pods again.
	m, _ = apply(t, m, keyMsg("esc"))
	require.Equal(t, "Select Namespace", m.top().Title())
	m, _ = apply(t, m, types.NamespaceSelectedMsg{Name: "default"})

	assert.Equal(t, "Pods", m.top().Title())
}

func TestRefreshRerunsOnlyCurrentScreen(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := testModel(runner, Options{Context: "dev", Namespace: "default"})
	require.Empty(t, runner.calls)

	_, cmd := apply(t, m, keyMsg("r"))
	drainCmd(cmd)

	// Only the resource list re-queried; contexts and namespaces did not.
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "get", runner.calls[0][0])
	assert.Equal(t, "pods", runner.calls[0][1])
}

func TestLoadBroadcastReachesCoveredScreens(t *testing.T) {
	runner := &scriptedRunner{responses: clusterScripts()}
	m := testModel(runner, Options{})

	// Start the context load, then navigate past it before the result
	// arrives: the late message must still fill the covered screen.
	loadCmd := m.Init()
	m, _ = apply(t, m, types.ContextSelectedMsg{Name: "dev"})
	require.Len(t, m.stack, 2)

	for _, msg := range drainCmd(loadCmd) {
		m, _ = apply(t, m, msg)
	}

	m, _ = apply(t, m, keyMsg("esc"))
	assert.Len(t, m.stack, 1)
	assert.Equal(t, 2, m.top().ItemCount(), "context rows should be there after walking back")
}

func TestStatusBarDisplayDurationIsFiveSeconds(t *testing.T) {
	assert.Equal(t, 5*time.Second, components.StatusBarDisplayDuration)
}
