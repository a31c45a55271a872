package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lmeyrat/chime/internal/contrast"
)

// Pair is one themed foreground/background combination to audit.
type Pair struct {
	Name       string
	Foreground lipgloss.Color
	Background lipgloss.Color
	Size       contrast.Size
}

// Pairs returns the theme's text pairings in display order.
func (t *Theme) Pairs() []Pair {
	return []Pair{
		{Name: "base text", Foreground: t.FgBase, Background: t.BgBase, Size: contrast.SizeNormal},
		{Name: "muted text", Foreground: t.FgMuted, Background: t.BgBase, Size: contrast.SizeNormal},
		{Name: "subtle text", Foreground: t.FgSubtle, Background: t.BgBase, Size: contrast.SizeNormal},
		{Name: "primary accent", Foreground: t.Primary, Background: t.BgBase, Size: contrast.SizeNormal},
		{Name: "cursor row", Foreground: t.FgBase, Background: t.BgCursor, Size: contrast.SizeNormal},
		{Name: "success status", Foreground: t.Success, Background: t.BgBase, Size: contrast.SizeNormal},
		{Name: "error status", Foreground: t.Error, Background: t.BgBase, Size: contrast.SizeNormal},
		{Name: "warning status", Foreground: t.Warning, Background: t.BgBase, Size: contrast.SizeNormal},
	}
}

// AuditEntry is the validation outcome for one themed pair.
type AuditEntry struct {
	Pair   Pair
	Result *contrast.Result
}

// Audit validates every themed pairing against a conformance level. Colors
// that fail to parse (e.g. ANSI palette indexes) are skipped; only hex-based
// themes are auditable.
func (t *Theme) Audit(level contrast.Level) []AuditEntry {
	var entries []AuditEntry
	for _, p := range t.Pairs() {
		result, err := contrast.Validate(string(p.Foreground), string(p.Background), p.Size, level)
		if err != nil {
			continue
		}
		entries = append(entries, AuditEntry{Pair: p, Result: result})
	}
	return entries
}
