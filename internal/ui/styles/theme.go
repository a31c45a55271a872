package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the runtime's UI
// surfaces. Every foreground/background pairing can be audited for WCAG
// contrast via Audit.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // focused items, active states
	Secondary lipgloss.Color // secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color // panel backgrounds
	BgCursor lipgloss.Color // cursor/selection highlight

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style
	Focused   lipgloss.Style // focused widget highlight
	Cursor    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Assertive lipgloss.Style // assertive live-region strip
	Polite    lipgloss.Style // polite live-region strip
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7dd3fc"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#909090"),
	FgSubtle: lipgloss.Color("#6a6a6a"),

	BgBase:   lipgloss.Color("#16161d"),
	BgCursor: lipgloss.Color("#30303a"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#7dd3fc"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff6b6b"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Focused: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Assertive: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
		Polite: lipgloss.NewStyle().Foreground(t.FgMuted),
	}
}
