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

type namespacesLoadedMsg struct {
	namespaces []k8s.Namespace
	err        error
	elapsed    time.Duration
}

// NamespacesScreen lists the namespaces of the selected context.
type NamespacesScreen struct {
	list    listState
	appCtx  *types.AppContext
	items   []k8s.Namespace
	visible []k8s.Namespace
}

func NewNamespacesScreen(appCtx *types.AppContext) *NamespacesScreen {
	return &NamespacesScreen{
		list:   newListState(appCtx.Theme, k8s.NamespaceColumns),
		appCtx: appCtx,
	}
}

func (s *NamespacesScreen) Init() tea.Cmd {
	return s.Refresh()
}

func (s *NamespacesScreen) Title() string {
	return "Select Namespace"
}

func (s *NamespacesScreen) HelpText() string {
	return "↑/↓: navigate • enter: select • /: filter • r: refresh • esc: back • q: quit"
}

func (s *NamespacesScreen) ItemCount() int {
	return len(s.visible)
}

func (s *NamespacesScreen) Filtering() bool {
	return s.list.filtering
}

func (s *NamespacesScreen) HandleBack() bool {
	if s.list.clearFilter() {
		s.applyFilter()
		return true
	}
	return false
}

func (s *NamespacesScreen) SetSize(width, height int) {
	s.list.setSize(width, height)
}

func (s *NamespacesScreen) Refresh() tea.Cmd {
	s.list.startLoading("Loading namespaces")
	client := s.appCtx.Client
	return tea.Batch(s.list.spinner.Tick, func() tea.Msg {
		start := time.Now()
		namespaces, err := client.ListNamespaces(context.Background())
		return namespacesLoadedMsg{namespaces: namespaces, err: err, elapsed: time.Since(start)}
	})
}

func (s *NamespacesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case namespacesLoadedMsg:
		s.list.finishLoading()
		if msg.err != nil {
			s.list.setError(msg.err.Error())
			return s, nil
		}
		s.items = msg.namespaces
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
			if ns, ok := s.selected(); ok {
				return s, func() tea.Msg { return types.NamespaceSelectedMsg{Name: ns.Name} }
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.list.table, cmd = s.list.table.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *NamespacesScreen) View() string {
	return s.list.view()
}

func (s *NamespacesScreen) selected() (k8s.Namespace, bool) {
	cursor := s.list.table.Cursor()
	if cursor < 0 || cursor >= len(s.visible) {
		return k8s.Namespace{}, false
	}
	return s.visible[cursor], true
}

func (s *NamespacesScreen) applyFilter() {
	texts := make([]string, len(s.items))
	for i, ns := range s.items {
		texts[i] = strings.ToLower(ns.Name)
	}
	idx := matchFilter(texts, s.list.filter)

	s.visible = make([]k8s.Namespace, len(idx))
	rows := make([]table.Row, len(idx))
	for i, j := range idx {
		s.visible[i] = s.items[j]
		rows[i] = table.Row(k8s.NamespaceCells(s.items[j]))
	}
	s.list.setRows(rows)
}
