package screens

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/types"
)

type contextsLoadedMsg struct {
	entries []k8s.ContextEntry
	err     error
	elapsed time.Duration
}

// ContextsScreen lists the kubeconfig contexts. It is the root of the
// navigation stack; the kubeconfig's current context is marked.
type ContextsScreen struct {
	list    listState
	appCtx  *types.AppContext
	entries []k8s.ContextEntry
	visible []k8s.ContextEntry
}

func NewContextsScreen(appCtx *types.AppContext) *ContextsScreen {
	return &ContextsScreen{
		list:   newListState(appCtx.Theme, k8s.ContextColumns),
		appCtx: appCtx,
	}
}

func (s *ContextsScreen) Init() tea.Cmd {
	return s.Refresh()
}

func (s *ContextsScreen) Title() string {
	return "Select Kubernetes Context"
}

func (s *ContextsScreen) HelpText() string {
	return "↑/↓: navigate • enter: select • /: filter • r: refresh • q: quit"
}

func (s *ContextsScreen) ItemCount() int {
	return len(s.visible)
}

func (s *ContextsScreen) Filtering() bool {
	return s.list.filtering
}

func (s *ContextsScreen) HandleBack() bool {
	if s.list.clearFilter() {
		s.applyFilter()
		return true
	}
	return false
}

func (s *ContextsScreen) SetSize(width, height int) {
	s.list.setSize(width, height)
}

func (s *ContextsScreen) Refresh() tea.Cmd {
	s.list.startLoading("Loading contexts")
	client := s.appCtx.Client
	return tea.Batch(s.list.spinner.Tick, func() tea.Msg {
		start := time.Now()
		entries, err := client.ListContexts(context.Background())
		return contextsLoadedMsg{entries: entries, err: err, elapsed: time.Since(start)}
	})
}

func (s *ContextsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contextsLoadedMsg:
		s.list.finishLoading()
		if msg.err != nil {
			s.list.setError(msg.err.Error())
			return s, nil
		}
		s.entries = msg.entries
		s.applyFilter()
		return s, func() tea.Msg { return types.RefreshCompleteMsg{Duration: msg.elapsed} }

	case spinner.TickMsg:
		if !s.list.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.list.spinner, cmd = s.list.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if cmd, consumed := s.list.handleFilterKey(msg); consumed {
			s.applyFilter()
			return s, cmd
		}
		switch {
		case key.Matches(msg, s.list.keys.Filter):
			return s, s.list.startFilter()
		case key.Matches(msg, s.list.keys.Select):
			if entry, ok := s.selected(); ok {
				return s, func() tea.Msg { return types.ContextSelectedMsg{Name: entry.Name} }
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.list.table, cmd = s.list.table.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *ContextsScreen) View() string {
	return s.list.view()
}

func (s *ContextsScreen) selected() (k8s.ContextEntry, bool) {
	cursor := s.list.table.Cursor()
	if cursor < 0 || cursor >= len(s.visible) {
		return k8s.ContextEntry{}, false
	}
	return s.visible[cursor], true
}

func (s *ContextsScreen) applyFilter() {
	texts := make([]string, len(s.entries))
	for i, e := range s.entries {
		texts[i] = strings.ToLower(e.Name + " " + e.Cluster + " " + e.User)
	}
	idx := matchFilter(texts, s.list.filter)

	s.visible = make([]k8s.ContextEntry, len(idx))
	rows := make([]table.Row, len(idx))
	for i, j := range idx {
		s.visible[i] = s.entries[j]
		rows[i] = table.Row(k8s.ContextCells(s.entries[j]))
	}
	s.list.setRows(rows)
}
