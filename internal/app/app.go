package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KAYAMAc/tui/internal/commands"
	"github.com/KAYAMAc/tui/internal/components"
	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/keyboard"
	"github.com/KAYAMAc/tui/internal/logging"
	"github.com/KAYAMAc/tui/internal/screens"
	"github.com/KAYAMAc/tui/internal/types"
)

const appName = "Kubernetes Dashboard"

// Options selects where the dashboard starts. A context skips the
// context screen, a namespace additionally skips the namespace screen;
// the skipped screens still sit under the starting one so Esc walks
// back through them.
type Options struct {
	Context   string
	Namespace string
}

// Model is the top-level program state: a stack of screens, the result
// modal above them, and the chrome around them. Navigation is strictly
// linear, so the stack depth encodes the position in the flow.
type Model struct {
	root   *types.AppContext // as launched, not pinned to a context
	scoped *types.AppContext // pinned once a context is chosen

	stack     []types.Screen
	modal     *components.ResultView
	modalOpen bool

	header    *components.Header
	statusBar *components.StatusBar
	layout    *components.Layout
	spinner   spinner.Model
	keys      keyboard.KeyMap

	contextName string
	namespace   string

	// One operation runs at a time; a refresh requested meanwhile is
	// queued and fired when the result arrives.
	busy           bool
	pendingRefresh bool

	messageID int

	width  int
	height int
}

func NewModel(appCtx *types.AppContext, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(appCtx.Theme.Primary)

	m := Model{
		root:      appCtx,
		modal:     components.NewResultView(appCtx.Theme),
		header:    components.NewHeader(appCtx.Theme, appName),
		statusBar: components.NewStatusBar(appCtx.Theme),
		layout:    components.NewLayout(80, 24),
		spinner:   sp,
		keys:      keyboard.Default(),
		width:     80,
		height:    24,
	}

	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)

	m.stack = []types.Screen{screens.NewContextsScreen(appCtx)}
	if opts.Context != "" {
		m.contextName = opts.Context
		m.scoped = appCtx.WithContext(opts.Context)
		m.header.SetContext(opts.Context)
		m.stack = append(m.stack, screens.NewNamespacesScreen(m.scoped))
		if opts.Namespace != "" {
			m.namespace = opts.Namespace
			m.header.SetNamespace(opts.Namespace)
			m.stack = append(m.stack, screens.NewResourcesScreen(m.scoped, opts.Namespace))
		}
	}

	body := m.layout.BodyHeight()
	for _, s := range m.stack {
		s.SetSize(m.width, body)
	}
	m.syncHeader()
	return m
}

// Init starts every stacked screen, not just the top one, so screens
// skipped by startup flags have their data when the user walks back.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.stack))
	for _, s := range m.stack {
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)

		body := m.layout.BodyHeight()
		for _, s := range m.stack {
			s.SetSize(msg.Width, body)
		}
		m.modal.SetSize(msg.Width, body)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.statusBar.SetSpinnerView(m.spinner.View())
			cmds = append(cmds, cmd)
		}
		// Screen loading spinners tick with their own IDs.
		cmds = append(cmds, m.broadcast(msg))
		return m, tea.Batch(cmds...)

	case types.ContextSelectedMsg:
		m.contextName = msg.Name
		m.scoped = m.root.WithContext(msg.Name)
		m.header.SetContext(msg.Name)
		logging.Info("context selected", "context", msg.Name)
		return m, m.push(screens.NewNamespacesScreen(m.scoped))

	case types.NamespaceSelectedMsg:
		m.namespace = msg.Name
		m.header.SetNamespace(msg.Name)
		logging.Info("namespace selected", "namespace", msg.Name)
		return m, m.push(screens.NewResourcesScreen(m.scoped, msg.Name))

	case types.ResourceSelectedMsg:
		target := commands.Target{Kind: msg.Kind, Namespace: msg.Namespace, Name: msg.Name}
		return m, m.push(screens.NewOperationsScreen(m.scoped, target))

	case screens.OperationSelectedMsg:
		return m.dispatchOperation(msg)

	case commands.OperationResultMsg:
		m.busy = false
		m.modal.ShowResult(msg)
		m.modalOpen = true

		var cmds []tea.Cmd
		if msg.Result.Success {
			cmds = append(cmds, m.setStatus(types.SuccessMsg(
				fmt.Sprintf("%s finished in %s", msg.Op.Name, msg.Duration.Round(time.Millisecond)))))
		} else {
			cmds = append(cmds, m.setStatus(types.ErrorStatusMsg(msg.Op.Name+" failed")))
		}
		if m.pendingRefresh {
			m.pendingRefresh = false
			cmds = append(cmds, m.top().Refresh())
		}
		return m, tea.Batch(cmds...)

	case commands.StagedCommandMsg:
		m.modal.ShowStaged(msg)
		m.modalOpen = true
		return m, nil

	case types.RefreshCompleteMsg:
		m.header.SetLastRefresh(time.Now())
		m.syncHeader()
		return m, nil

	case types.StatusMsg:
		return m, m.setStatus(msg)

	case types.ClearStatusMsg:
		// A newer message may have replaced the one this tick belongs to.
		if msg.MessageID == m.messageID {
			m.statusBar.ClearMessage()
		}
		return m, nil
	}

	cmd := m.broadcast(msg)
	m.syncHeader()
	return m, cmd
}

func (m Model) View() string {
	body := m.top().View()
	help := m.top().HelpText()
	if m.modalOpen {
		body = m.modal.View()
		help = ""
	}
	return m.layout.Render(m.header.View(), body, help, m.statusBar.View())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modalOpen {
		// Quitting stays possible; everything else belongs to the modal.
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Back) {
			m.modalOpen = false
			return m, nil
		}
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}

	// While the filter input is focused every key belongs to it,
	// including q, r and the kind digits.
	if m.top().Filtering() {
		cmd := m.updateTop(msg)
		m.syncHeader()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.top().HandleBack() {
			m.syncHeader()
			return m, nil
		}
		m.pop()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.busy {
			m.pendingRefresh = true
			return m, m.setStatus(types.InfoMsg("Refresh queued until the operation finishes"))
		}
		return m, m.top().Refresh()
	}

	cmd := m.updateTop(msg)
	m.syncHeader()
	return m, cmd
}

// dispatchOperation routes a chosen operation. Staged modes resolve
// synchronously; immediate mode marks the app busy until the result
// message lands.
func (m Model) dispatchOperation(msg screens.OperationSelectedMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, m.setStatus(types.ErrorStatusMsg("Another operation is still running"))
	}

	runner := m.client()
	if msg.Op.Mode != commands.ModeExecuteImmediately {
		return m, commands.Dispatch(runner, msg.Op, msg.Target)
	}

	m.busy = true
	m.statusBar.SetSpinnerView(m.spinner.View())
	statusCmd := m.setStatus(types.LoadingMsg(
		fmt.Sprintf("Running %s on %s", msg.Op.Name, msg.Target.Name)))
	return m, tea.Batch(statusCmd, m.spinner.Tick, commands.Dispatch(runner, msg.Op, msg.Target))
}

func (m *Model) client() k8s.CommandRunner {
	if m.scoped != nil {
		return m.scoped.Client
	}
	return m.root.Client
}

func (m *Model) top() types.Screen {
	return m.stack[len(m.stack)-1]
}

// push makes a screen the new top and starts it.
func (m *Model) push(s types.Screen) tea.Cmd {
	s.SetSize(m.width, m.layout.BodyHeight())
	m.stack = append(m.stack, s)
	m.syncHeader()
	return s.Init()
}

// pop discards the top screen. The screen below keeps the state it had,
// including its committed filter and cursor. The root never pops.
func (m *Model) pop() {
	if len(m.stack) <= 1 {
		return
	}
	m.stack = m.stack[:len(m.stack)-1]

	if len(m.stack) == 1 {
		m.contextName = ""
		m.scoped = nil
	}
	if len(m.stack) <= 2 {
		m.namespace = ""
	}
	m.header.SetContext(m.contextName)
	m.header.SetNamespace(m.namespace)
	m.syncHeader()
}

// updateTop delivers a message to the top screen only. Keyboard input
// never reaches covered screens.
func (m *Model) updateTop(msg tea.Msg) tea.Cmd {
	model, cmd := m.top().Update(msg)
	m.stack[len(m.stack)-1] = model.(types.Screen)
	return cmd
}

// broadcast delivers a message to every stacked screen. Loads finishing
// under a covering screen still land this way, so walking back shows
// fresh rows instead of an empty table.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.stack))
	for i, s := range m.stack {
		model, cmd := s.Update(msg)
		m.stack[i] = model.(types.Screen)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncHeader() {
	top := m.top()
	m.header.SetScreenTitle(top.Title())
	m.header.SetItemCount(top.ItemCount())
}

// setStatus shows a status bar message. Everything but loading messages
// clears itself after StatusBarDisplayDuration, unless a newer message
// replaced it first.
func (m *Model) setStatus(msg types.StatusMsg) tea.Cmd {
	m.messageID++
	id := m.messageID
	m.statusBar.SetMessage(msg.Message, msg.Type)
	if msg.Type == types.MessageTypeLoading {
		return nil
	}
	return tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}
