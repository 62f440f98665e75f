package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/ui"
)

// Header renders the top line: app badge, breadcrumb of the current
// location, and the time of the last refresh.
type Header struct {
	appName     string
	screenTitle string
	contextName string
	namespace   string
	itemCount   int
	lastRefresh time.Time
	width       int
	theme       *ui.Theme
}

func NewHeader(theme *ui.Theme, appName string) *Header {
	return &Header{
		appName: appName,
		theme:   theme,
	}
}

func (h *Header) SetScreenTitle(title string) {
	h.screenTitle = title
}

func (h *Header) SetContext(contextName string) {
	h.contextName = contextName
}

func (h *Header) SetNamespace(namespace string) {
	h.namespace = namespace
}

func (h *Header) SetItemCount(count int) {
	h.itemCount = count
}

func (h *Header) SetLastRefresh(t time.Time) {
	h.lastRefresh = t
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	badge := h.theme.AppTitle.Render(" " + h.appName + " ")

	// Breadcrumb: "Pods • context: prod • namespace: billing • 47 items"
	parts := []string{}
	if h.screenTitle != "" {
		parts = append(parts, h.screenTitle)
	}
	if h.contextName != "" {
		parts = append(parts, fmt.Sprintf("context: %s", h.contextName))
	}
	if h.namespace != "" {
		parts = append(parts, fmt.Sprintf("namespace: %s", h.namespace))
	}
	if h.itemCount > 0 {
		parts = append(parts, fmt.Sprintf("%d items", h.itemCount))
	}

	left := badge
	if len(parts) > 0 {
		left = lipgloss.JoinHorizontal(lipgloss.Top,
			badge, " ", h.theme.Header.Render(strings.Join(parts, " • ")))
	}

	var right string
	if !h.lastRefresh.IsZero() {
		right = h.theme.StatusBar.Padding(0, 1).Render(
			fmt.Sprintf("Last refresh: %s ago", k8s.FormatAge(h.lastRefresh)))
	}

	spacing := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	spacer := lipgloss.NewStyle().Width(spacing).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}
