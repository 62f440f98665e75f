package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/keyboard"
	"github.com/KAYAMAc/tui/internal/ui"
)

// listState is the shared core of the list screens: a table, a fuzzy
// filter, and loading/error presentation. Screens embed it and keep
// their typed items next to it.
type listState struct {
	table   table.Model
	spinner spinner.Model
	input   textinput.Model
	keys    keyboard.KeyMap
	theme   *ui.Theme

	columns      []k8s.Column
	loading      bool
	loadingLabel string
	loadErr      string
	filter       string
	filtering    bool
	width        int
	height       int
}

func newListState(theme *ui.Theme, columns []k8s.Column) listState {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(theme.ToTableStyles())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	in := textinput.New()
	in.Prompt = "/"
	in.Placeholder = "filter (prefix ! to negate)"
	in.CharLimit = 64

	ls := listState{
		table:   t,
		spinner: sp,
		input:   in,
		keys:    keyboard.Default(),
		theme:   theme,
	}
	ls.setColumns(columns)
	return ls
}

func (l *listState) setColumns(columns []k8s.Column) {
	l.columns = columns
	l.layoutColumns()
}

// layoutColumns distributes the width: fixed columns keep their widths,
// zero-width columns share the rest.
func (l *listState) layoutColumns() {
	width := l.width
	if width == 0 {
		width = 80
	}

	fixedTotal := 0
	stretchCount := 0
	for _, col := range l.columns {
		if col.Width > 0 {
			fixedTotal += col.Width
		} else {
			stretchCount++
		}
	}

	// Cell padding eats two characters per column.
	padding := len(l.columns) * 2
	stretchWidth := 20
	if stretchCount > 0 {
		w := (width - fixedTotal - padding) / stretchCount
		if w > stretchWidth {
			stretchWidth = w
		}
	}

	columns := make([]table.Column, len(l.columns))
	for i, col := range l.columns {
		w := col.Width
		if w == 0 {
			w = stretchWidth
		}
		columns[i] = table.Column{Title: col.Title, Width: w}
	}
	l.table.SetColumns(columns)
}

func (l *listState) setSize(width, height int) {
	l.width = width
	l.height = height

	tableHeight := height - 1 // one line reserved for the filter bar
	if tableHeight < 3 {
		tableHeight = 3
	}
	l.table.SetWidth(width)
	l.table.SetHeight(tableHeight)
	l.layoutColumns()
}

func (l *listState) startLoading(label string) {
	l.loading = true
	l.loadingLabel = label
	l.loadErr = ""
}

func (l *listState) finishLoading() {
	l.loading = false
}

func (l *listState) setError(msg string) {
	l.loadErr = msg
	l.table.SetRows(nil)
}

func (l *listState) setRows(rows []table.Row) {
	l.loadErr = ""
	l.table.SetRows(rows)
	if l.table.Cursor() >= len(rows) {
		cursor := len(rows) - 1
		if cursor < 0 {
			cursor = 0
		}
		l.table.SetCursor(cursor)
	}
}

// startFilter focuses the filter input, seeded with the committed
// filter.
func (l *listState) startFilter() tea.Cmd {
	l.filtering = true
	l.input.SetValue(l.filter)
	return l.input.Focus()
}

// handleFilterKey processes keys while the filter input is focused. The
// filter applies live as it is typed; Enter commits it, Esc drops it.
// Reports whether the key was consumed.
func (l *listState) handleFilterKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !l.filtering {
		return nil, false
	}

	switch msg.Type {
	case tea.KeyEsc:
		l.filtering = false
		l.input.Blur()
		l.input.SetValue("")
		l.filter = ""
		return nil, true
	case tea.KeyEnter:
		l.filtering = false
		l.input.Blur()
		l.filter = l.input.Value()
		return nil, true
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	l.filter = l.input.Value()
	return cmd, true
}

// clearFilter drops a committed filter. Reports whether there was one.
func (l *listState) clearFilter() bool {
	if l.filter == "" {
		return false
	}
	l.filter = ""
	l.input.SetValue("")
	return true
}

func (l *listState) view() string {
	var top string
	switch {
	case l.filtering:
		top = l.input.View()
	case l.filter != "":
		top = lipgloss.NewStyle().
			Foreground(l.theme.Accent).
			Render("filter: " + l.filter)
	default:
		top = ""
	}

	var body string
	switch {
	case l.loadErr != "":
		errStyle := lipgloss.NewStyle().Foreground(l.theme.Error)
		hintStyle := lipgloss.NewStyle().Foreground(l.theme.Muted)
		body = errStyle.Render("✗ "+l.loadErr) + "\n" +
			hintStyle.Render("r to retry, esc to go back")
	case l.loading:
		body = l.spinner.View() + " " + l.loadingLabel
	default:
		body = l.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}

// matchFilter returns the indexes of items whose search text matches the
// filter. A leading "!" keeps the non-matching items instead, in their
// original order.
func matchFilter(searchTexts []string, filter string) []int {
	all := func() []int {
		idx := make([]int, len(searchTexts))
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	if filter == "" {
		return all()
	}

	if negated := strings.TrimPrefix(filter, "!"); negated != filter {
		if negated == "" {
			return all()
		}
		matched := make(map[int]bool)
		for _, m := range fuzzy.Find(negated, searchTexts) {
			matched[m.Index] = true
		}
		idx := make([]int, 0, len(searchTexts))
		for i := range searchTexts {
			if !matched[i] {
				idx = append(idx, i)
			}
		}
		return idx
	}

	matches := fuzzy.Find(filter, searchTexts)
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	return idx
}
