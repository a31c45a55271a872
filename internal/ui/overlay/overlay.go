// Package overlay renders modal surfaces on top of a base view. It provides
// the drawing half of an overlay; focus containment lives in focustrap.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws overlay content on top of a base view. Visually non-empty
// overlay cells replace the base at the same position. ANSI-aware, so styled
// text keeps its escapes intact.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}
		merged, ok := mergeLine(baseLines[i], overlayLine, width)
		if ok {
			baseLines[i] = merged
		}
	}

	return strings.Join(baseLines, "\n")
}

// mergeLine splices the visible span of overlayLine into baseLine. Returns
// false when the overlay line is visually empty.
func mergeLine(baseLine, overlayLine string, width int) (string, bool) {
	plain := ansi.Strip(overlayLine)
	if strings.TrimSpace(plain) == "" {
		return "", false
	}

	// Visible start column: leading ASCII spaces are one column each.
	startCol := 0
	for _, r := range plain {
		if r != ' ' {
			break
		}
		startCol++
	}
	trimmed := strings.TrimRight(plain, " ")
	endCol := startCol + ansi.StringWidth(trimmed[startCol:])

	content := ansi.Cut(overlayLine, startCol, endCol)

	baseWidth := ansi.StringWidth(ansi.Strip(baseLine))
	if baseWidth < width {
		baseLine += strings.Repeat(" ", width-baseWidth)
	}

	result := ansi.Cut(baseLine, 0, startCol) + content
	if endCol < width {
		result += ansi.Cut(baseLine, endCol, width)
	}
	return result, true
}

// Center positions pre-rendered content in the middle of the screen so it
// can be composed over a base view.
func Center(content string, screenWidth, screenHeight int) string {
	lines := strings.Split(content, "\n")

	boxHeight := len(lines)
	boxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > boxWidth {
			boxWidth = w
		}
	}

	padTop := max((screenHeight-boxHeight)/2, 0)
	padLeft := max((screenWidth-boxWidth)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString(strings.Repeat(" ", screenWidth) + "\n")
	}
	for _, line := range lines {
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
