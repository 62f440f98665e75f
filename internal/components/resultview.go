package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KAYAMAc/tui/internal/commands"
	"github.com/KAYAMAc/tui/internal/keyboard"
	"github.com/KAYAMAc/tui/internal/messages"
	"github.com/KAYAMAc/tui/internal/ui"
)

// ResultView is the full-screen modal shown after an operation: the
// captured output of an executed command, or the text of a staged one
// awaiting manual execution.
type ResultView struct {
	title       string
	commandText string // non-empty only for staged commands
	warning     bool
	failed      bool
	viewport    viewport.Model
	keys        keyboard.KeyMap
	theme       *ui.Theme
	width       int
	height      int
}

func NewResultView(theme *ui.Theme) *ResultView {
	rv := &ResultView{
		keys:   keyboard.Default(),
		theme:  theme,
		width:  80,
		height: 24,
	}
	rv.viewport = viewport.New(rv.width, rv.height-resultChromeLines)
	return rv
}

// ShowResult loads an executed operation's outcome. Failures surface the
// captured stderr verbatim.
func (rv *ResultView) ShowResult(msg commands.OperationResultMsg) {
	rv.title = msg.Op.Name + ": " + msg.Target.Name
	rv.commandText = ""
	rv.warning = false
	rv.failed = !msg.Result.Success

	content := msg.Result.Output
	if rv.failed {
		content = msg.Result.ErrText
		if content == "" {
			content = "command failed with no error output"
		}
	} else if strings.TrimSpace(content) == "" {
		content = "(no output)"
	}
	rv.setContent(content)
}

// ShowStaged loads a staged command for manual copy/execution.
func (rv *ResultView) ShowStaged(msg commands.StagedCommandMsg) {
	rv.title = msg.Op.Name + ": " + msg.Target.Name
	rv.commandText = msg.CommandText
	rv.warning = msg.Warning
	rv.failed = false

	command := lipgloss.NewStyle().
		Foreground(rv.theme.Accent).
		Bold(true).
		Render(msg.CommandText)

	var b strings.Builder
	b.WriteString("This operation is not run by the dashboard.\n")
	b.WriteString("Run it in your terminal when ready:\n\n")
	b.WriteString("  " + command + "\n")
	rv.setContent(b.String())
}

func (rv *ResultView) setContent(content string) {
	rv.resizeViewport()
	rv.viewport.SetContent(content)
	rv.viewport.GotoTop()
}

// Staged reports whether the view holds a staged command rather than
// executed output.
func (rv *ResultView) Staged() bool {
	return rv.commandText != ""
}

func (rv *ResultView) SetSize(width, height int) {
	rv.width = width
	rv.height = height
	rv.resizeViewport()
}

func (rv *ResultView) resizeViewport() {
	chrome := resultChromeLines
	if rv.warning {
		chrome++
	}
	rv.viewport.Width = rv.width
	rv.viewport.Height = max(rv.height-chrome, 1)
}

func (rv *ResultView) Update(msg tea.Msg) (*ResultView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return rv, nil
	}

	switch {
	case key.Matches(keyMsg, rv.keys.Up):
		rv.viewport.LineUp(1)
	case key.Matches(keyMsg, rv.keys.Down):
		rv.viewport.LineDown(1)
	case key.Matches(keyMsg, rv.keys.PageUp):
		rv.viewport.ViewUp()
	case key.Matches(keyMsg, rv.keys.PageDown):
		rv.viewport.ViewDown()
	case key.Matches(keyMsg, rv.keys.JumpTop):
		rv.viewport.GotoTop()
	case key.Matches(keyMsg, rv.keys.JumpBottom):
		rv.viewport.GotoBottom()
	case key.Matches(keyMsg, rv.keys.Copy):
		return rv, rv.copyCmd()
	}
	return rv, nil
}

// copyCmd copies the staged command text (or, for executed results, the
// full output) to the clipboard.
func (rv *ResultView) copyCmd() tea.Cmd {
	text := rv.commandText
	if text == "" {
		text = rv.viewport.View()
	}
	return func() tea.Msg {
		confirmation, err := commands.CopyToClipboard(text)
		if err != nil {
			return messages.ErrorCmd("%v", err)()
		}
		return messages.SuccessCmd("%s", confirmation)()
	}
}

func (rv *ResultView) View() string {
	titleStyle := rv.theme.Header
	if rv.failed {
		titleStyle = lipgloss.NewStyle().Foreground(rv.theme.Error).Bold(true)
	}

	hintStyle := lipgloss.NewStyle().Foreground(rv.theme.Muted)

	marker := ""
	if rv.failed {
		marker = "✗ "
	}
	title := titleStyle.Render(marker + rv.title)

	hintText := "[Esc] Back  [↑↓/jk] Scroll  [g/G] Top/Bottom"
	if rv.Staged() {
		hintText = "[Esc] Back  [c] Copy  [↑↓/jk] Scroll"
	}
	hint := hintStyle.Render(hintText)

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", max(0, rv.width-lipgloss.Width(title)-lipgloss.Width(hint))),
		hint,
	)

	separator := hintStyle.Render(strings.Repeat("─", max(rv.width, 1)))

	sections := []string{headerLine, separator}

	if rv.warning {
		banner := lipgloss.NewStyle().
			Background(rv.theme.Error).
			Foreground(rv.theme.Background).
			Bold(true).
			Width(rv.width).
			Render(" ⚠ Destructive operation: review carefully before running ")
		sections = append(sections, banner)
	}

	sections = append(sections, rv.viewport.View(), rv.footer(hintStyle))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (rv *ResultView) footer(style lipgloss.Style) string {
	total := rv.viewport.TotalLineCount()
	if total <= rv.viewport.Height {
		return ""
	}
	first := rv.viewport.YOffset + 1
	last := min(rv.viewport.YOffset+rv.viewport.Height, total)
	return style.Render(fmt.Sprintf("  %d-%d of %d", first, last, total))
}
