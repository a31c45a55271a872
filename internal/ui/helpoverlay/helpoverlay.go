// Package helpoverlay provides a scrollable popup listing the registered
// shortcuts of a manager, grouped by context.
package helpoverlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/lmeyrat/chime/internal/key"
	"github.com/lmeyrat/chime/internal/shortcut"
	"github.com/lmeyrat/chime/internal/ui"
	"github.com/lmeyrat/chime/internal/ui/styles"
)

// contextLabels maps well-known context names to display labels. Unknown
// contexts render as-is.
var contextLabels = map[string]string{
	shortcut.GlobalContext: "Global",
	"modal":                "Dialog",
	"form":                 "Form",
	"editor":               "Editor",
}

// Model holds the state for the shortcut help popup.
type Model struct {
	ui.Base
	manager      *shortcut.Manager
	contexts     []string
	scrollOffset int
}

// New creates a help model over a shortcut manager.
func New(manager *shortcut.Manager) Model {
	return Model{manager: manager}
}

// SetContexts sets which contexts to display, in order.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.scrollOffset = 0
}

// HandleKey scrolls the popup. Returns false for keys the popup does not
// use, so the owner can close it.
func (m *Model) HandleKey(ev key.Event) bool {
	switch ev.Key {
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
		return true
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
		return true
	}
	return false
}

// View renders the scrolled help content, without border chrome.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	visible := m.visibleHeight()
	start := min(m.scrollOffset, len(lines))
	end := min(start+visible, len(lines))
	visibleLines := lines[start:end]

	for i, line := range visibleLines {
		if w := lipgloss.Width(line); w < maxWidth {
			visibleLines[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visibleLines, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

func (m *Model) buildContent() string {
	s := styles.T().S()

	groups := make([][]*shortcut.Shortcut, 0, len(m.contexts))
	maxKeyWidth := 0
	for _, context := range m.contexts {
		bindings := m.manager.ByContext(context)
		groups = append(groups, bindings)
		for _, b := range bindings {
			// Grapheme-aware: mac glyph combos like ⌘⇧K are clusters,
			// not bytes.
			if w := uniseg.GraphemeClusterCount(b.DisplayText); w > maxKeyWidth {
				maxKeyWidth = w
			}
		}
	}

	var sb strings.Builder
	for i, context := range m.contexts {
		if len(groups[i]) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		label := contextLabels[context]
		if label == "" {
			label = context
		}
		sb.WriteString(s.Focused.Render(label))
		sb.WriteString("\n")
		sb.WriteString(s.Subtle.Render(strings.Repeat("─", maxKeyWidth+15)))
		sb.WriteString("\n")

		for _, b := range groups[i] {
			pad := maxKeyWidth - uniseg.GraphemeClusterCount(b.DisplayText)
			sb.WriteString(s.Focused.Render(b.DisplayText + strings.Repeat(" ", pad)))
			sb.WriteString("  ")
			desc := b.Description
			if !b.Enabled {
				desc += " (disabled)"
			}
			sb.WriteString(s.Muted.Render(desc))
			sb.WriteString("\n")
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m *Model) footer() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m *Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m *Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m *Model) maxScroll() int {
	total := m.totalLines()
	visible := m.visibleHeight()
	if total <= visible {
		return 0
	}
	return total - visible
}
