package key

import (
	"runtime"
	"strings"
)

// Platform captures the modifier semantics of the host OS. It is derived once
// at construction time and used consistently for both registration-time
// normalization and display text.
type Platform struct {
	mac bool
}

// DetectPlatform derives the platform from the Go runtime.
func DetectPlatform() Platform {
	return Platform{mac: runtime.GOOS == "darwin"}
}

// PlatformFor returns the platform for an explicit GOOS-style name.
// Used by tests and by the preferences override.
func PlatformFor(goos string) Platform {
	return Platform{mac: strings.EqualFold(goos, "darwin")}
}

// IsMac reports whether the platform uses mac modifier conventions.
func (p Platform) IsMac() bool {
	return p.mac
}

// NativeMeta returns the modifier "cmd" resolves to on this platform.
func (p Platform) NativeMeta() Modifier {
	if p.mac {
		return ModMeta
	}
	return ModCtrl
}

// macGlyphs maps modifiers to mac keyboard glyphs.
var macGlyphs = map[Modifier]string{
	ModCtrl:  "⌃",
	ModAlt:   "⌥",
	ModShift: "⇧",
	ModMeta:  "⌘",
}

// displayNames maps modifiers to spelled-out names for non-mac platforms.
var displayNames = map[Modifier]string{
	ModCtrl:  "Ctrl",
	ModAlt:   "Alt",
	ModShift: "Shift",
	ModMeta:  "Meta",
}

// DisplayText renders a combination for humans: "⌘⇧K" on mac,
// "Ctrl+Shift+K" elsewhere.
func (p Platform) DisplayText(k string, mods []Modifier) string {
	keyText := displayKey(k)

	if p.mac {
		var b strings.Builder
		for _, m := range mods {
			b.WriteString(macGlyphs[m])
		}
		b.WriteString(keyText)
		return b.String()
	}

	parts := make([]string, 0, len(mods)+1)
	for _, m := range mods {
		parts = append(parts, displayNames[m])
	}
	parts = append(parts, keyText)
	return strings.Join(parts, "+")
}

// displayKey renders named keys with a leading capital and single
// characters uppercased.
func displayKey(k string) string {
	k = strings.TrimSpace(k)
	if len(k) <= 1 {
		return strings.ToUpper(k)
	}
	switch strings.ToLower(k) {
	case "escape", "esc":
		return "Esc"
	case "enter", "return":
		return "Enter"
	case "space":
		return "Space"
	case "tab":
		return "Tab"
	case "backspace":
		return "Backspace"
	case "delete":
		return "Delete"
	default:
		return strings.ToUpper(k[:1]) + strings.ToLower(k[1:])
	}
}
