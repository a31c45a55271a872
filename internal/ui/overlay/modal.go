package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmeyrat/chime/internal/ui/styles"
)

// Modal is a centered dialog surface with title, body, and footer. The owner
// pairs it with a focustrap.Trap over the widgets rendered into Body.
type Modal struct {
	Title  string
	Body   string
	Footer string
	Width  int // 0 = auto-fit content
}

// Render returns the bordered dialog centered for the given screen size.
func (m *Modal) Render(screenWidth, screenHeight int) string {
	t := styles.T()

	innerWidth := m.Width
	if innerWidth == 0 {
		innerWidth = maxLineWidth(m.Body)
		if w := lipgloss.Width(m.Title); w > innerWidth {
			innerWidth = w
		}
		if w := lipgloss.Width(m.Footer); w > innerWidth {
			innerWidth = w
		}
		innerWidth += 2
	}
	if maxW := screenWidth - 4; innerWidth > maxW {
		innerWidth = maxW
	}

	lines := make([]string, 0, strings.Count(m.Body, "\n")+5)
	if m.Title != "" {
		lines = append(lines, centerLine(t.S().Title.Render(m.Title), innerWidth), "")
	}
	for line := range strings.SplitSeq(m.Body, "\n") {
		lines = append(lines, padLine(line, innerWidth))
	}
	if m.Footer != "" {
		lines = append(lines, "", centerLine(t.S().Subtle.Render(m.Footer), innerWidth))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))

	return Center(box, screenWidth, screenHeight)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

func padLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
