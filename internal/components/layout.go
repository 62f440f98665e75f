package components

import (
	"github.com/charmbracelet/lipgloss"
)

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Padding(0, 1)

// chromeLines is what the layout spends around the body: header, blank
// line, help line, status bar.
const chromeLines = 4

// Layout composes the screen chrome around the active screen's body.
type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// BodyHeight returns the height available to the active screen.
func (l *Layout) BodyHeight() int {
	bodyHeight := l.height - chromeLines
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	return bodyHeight
}

// Render stacks the chrome and body into the final frame.
func (l *Layout) Render(header, body, help, status string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}

	if body != "" {
		sections = append(sections, body)
	}

	if help != "" {
		sections = append(sections, helpStyle.Render(help))
	}

	sections = append(sections, status)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
