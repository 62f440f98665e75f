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

type resourcesLoadedMsg struct {
	kind      k8s.Kind
	resources []k8s.Resource
	err       error
	elapsed   time.Duration
}

// ResourcesScreen lists the resources of one kind in the selected
// namespace. Keys 1-5 switch the kind; entering the screen always
// starts on pods.
type ResourcesScreen struct {
	list      listState
	appCtx    *types.AppContext
	namespace string
	kind      k8s.Kind
	items     []k8s.Resource
	visible   []k8s.Resource
}

func NewResourcesScreen(appCtx *types.AppContext, namespace string) *ResourcesScreen {
	kind := k8s.DefaultKind
	return &ResourcesScreen{
		list:      newListState(appCtx.Theme, k8s.SchemaFor(kind).Columns),
		appCtx:    appCtx,
		namespace: namespace,
		kind:      kind,
	}
}

func (s *ResourcesScreen) Init() tea.Cmd {
	return s.Refresh()
}

func (s *ResourcesScreen) Title() string {
	return s.kind.String() + "s"
}

func (s *ResourcesScreen) HelpText() string {
	return "↑/↓: navigate • enter: operations • 1-5: kind • /: filter • r: refresh • esc: back • q: quit"
}

func (s *ResourcesScreen) ItemCount() int {
	return len(s.visible)
}

func (s *ResourcesScreen) Filtering() bool {
	return s.list.filtering
}

func (s *ResourcesScreen) HandleBack() bool {
	if s.list.clearFilter() {
		s.applyFilter()
		return true
	}
	return false
}

func (s *ResourcesScreen) SetSize(width, height int) {
	s.list.setSize(width, height)
}

// Kind returns the kind currently listed.
func (s *ResourcesScreen) Kind() k8s.Kind {
	return s.kind
}

func (s *ResourcesScreen) Refresh() tea.Cmd {
	s.list.startLoading("Loading " + s.kind.Plural())
	client := s.appCtx.Client
	namespace := s.namespace
	kind := s.kind
	return tea.Batch(s.list.spinner.Tick, func() tea.Msg {
		start := time.Now()
		resources, err := client.ListResources(context.Background(), namespace, kind)
		return resourcesLoadedMsg{kind: kind, resources: resources, err: err, elapsed: time.Since(start)}
	})
}

func (s *ResourcesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resourcesLoadedMsg:
		// A kind switch may have raced the load; drop stale results.
		if msg.kind != s.kind {
			return s, nil
		}
		s.list.finishLoading()
		if msg.err != nil {
			s.list.setError(msg.err.Error())
			return s, nil
		}
		s.items = msg.resources
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
		case key.Matches(msg, s.list.keys.SwitchKind):
			if kind, ok := k8s.KindForShortcut(msg.String()); ok && kind != s.kind {
				return s, s.switchKind(kind)
			}
			return s, nil
		case key.Matches(msg, s.list.keys.Filter):
			return s, s.list.startFilter()
		case key.Matches(msg, s.list.keys.Select):
			if r, ok := s.selected(); ok {
				selected := types.ResourceSelectedMsg{
					Kind:      s.kind,
					Namespace: s.namespace,
					Name:      r.GetName(),
				}
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

func (s *ResourcesScreen) View() string {
	return s.list.view()
}

func (s *ResourcesScreen) switchKind(kind k8s.Kind) tea.Cmd {
	s.kind = kind
	s.items = nil
	s.visible = nil
	s.list.table.SetRows(nil)
	s.list.table.SetCursor(0)
	s.list.setColumns(k8s.SchemaFor(kind).Columns)
	return s.Refresh()
}

func (s *ResourcesScreen) selected() (k8s.Resource, bool) {
	cursor := s.list.table.Cursor()
	if cursor < 0 || cursor >= len(s.visible) {
		return nil, false
	}
	return s.visible[cursor], true
}

func (s *ResourcesScreen) applyFilter() {
	schema := k8s.SchemaFor(s.kind)

	texts := make([]string, len(s.items))
	for i, r := range s.items {
		texts[i] = strings.ToLower(strings.Join(schema.Cells(r), " "))
	}
	idx := matchFilter(texts, s.list.filter)

	s.visible = make([]k8s.Resource, len(idx))
	rows := make([]table.Row, len(idx))
	for i, j := range idx {
		s.visible[i] = s.items[j]
		rows[i] = table.Row(schema.Cells(s.items[j]))
	}
	s.list.setRows(rows)
}
