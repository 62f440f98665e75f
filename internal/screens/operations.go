package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KAYAMAc/tui/internal/commands"
	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/types"
)

// OperationSelectedMsg reports the operation chosen for a resource. The
// app dispatches it according to the operation's mode.
type OperationSelectedMsg struct {
	Op     commands.Operation
	Target commands.Target
}

var operationColumns = []k8s.Column{
	{Title: "Operation", Width: 0},
	{Title: "Tier", Width: 13},
	{Title: "Dispatch", Width: 26},
}

// OperationsScreen lists the operations available for one resource. The
// catalog is fixed per kind, so the screen never loads anything.
type OperationsScreen struct {
	list    listState
	target  commands.Target
	ops     []commands.Operation
	visible []commands.Operation
}

func NewOperationsScreen(appCtx *types.AppContext, target commands.Target) *OperationsScreen {
	s := &OperationsScreen{
		list:   newListState(appCtx.Theme, operationColumns),
		target: target,
		ops:    commands.ForKind(target.Kind),
	}
	s.applyFilter()
	return s
}

func (s *OperationsScreen) Init() tea.Cmd {
	return nil
}

func (s *OperationsScreen) Title() string {
	return "Operations: " + s.target.Name
}

func (s *OperationsScreen) HelpText() string {
	return "↑/↓: navigate • enter: select • /: filter • esc: back • q: quit"
}

func (s *OperationsScreen) ItemCount() int {
	return len(s.visible)
}

func (s *OperationsScreen) Filtering() bool {
	return s.list.filtering
}

func (s *OperationsScreen) HandleBack() bool {
	if s.list.clearFilter() {
		s.applyFilter()
		return true
	}
	return false
}

func (s *OperationsScreen) SetSize(width, height int) {
	s.list.setSize(width, height)
}

// Refresh is a no-op: the operation catalog is static.
func (s *OperationsScreen) Refresh() tea.Cmd {
	return nil
}

func (s *OperationsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, consumed := s.list.handleFilterKey(msg); consumed {
			s.applyFilter()
			return s, cmd
		}
		switch {
		case key.Matches(msg, s.list.keys.Filter):
			return s, s.list.startFilter()
		case key.Matches(msg, s.list.keys.Select):
			if op, ok := s.selected(); ok {
				selected := OperationSelectedMsg{Op: op, Target: s.target}
				return s, func() tea.Msg { return selected }
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.list.table, cmd = s.list.table.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *OperationsScreen) View() string {
	return s.list.view()
}

func (s *OperationsScreen) selected() (commands.Operation, bool) {
	cursor := s.list.table.Cursor()
	if cursor < 0 || cursor >= len(s.visible) {
		return commands.Operation{}, false
	}
	return s.visible[cursor], true
}

func (s *OperationsScreen) applyFilter() {
	texts := make([]string, len(s.ops))
	for i, op := range s.ops {
		texts[i] = strings.ToLower(op.Name + " " + op.Tier.String())
	}
	idx := matchFilter(texts, s.list.filter)

	s.visible = make([]commands.Operation, len(idx))
	rows := make([]table.Row, len(idx))
	for i, j := range idx {
		op := s.ops[j]
		s.visible[i] = op
		rows[i] = table.Row{op.Name, op.Tier.String(), dispatchLabel(op.Mode)}
	}
	s.list.setRows(rows)
}

func dispatchLabel(m commands.Mode) string {
	switch m {
	case commands.ModeExecuteImmediately:
		return "runs immediately"
	case commands.ModeShowCommand:
		return "shows command"
	default:
		return "shows command with warning"
	}
}
