// Package key models logical keyboard input for the accessibility runtime:
// modifier normalization, canonical combination strings, and platform-aware
// display text.
package key

import "strings"

// Modifier is a normalized modifier key.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModAlt   Modifier = "alt"
	ModShift Modifier = "shift"
	ModMeta  Modifier = "meta"
)

// canonicalOrder fixes the order modifiers appear in combination strings.
var canonicalOrder = []Modifier{ModCtrl, ModAlt, ModShift, ModMeta}

// Normalize case-folds, resolves aliases, deduplicates and sorts modifiers
// into canonical order. "cmd" resolves to the platform's native meta key:
// meta on darwin, ctrl everywhere else.
func Normalize(mods []string, p Platform) []Modifier {
	seen := make(map[Modifier]bool, len(mods))
	for _, m := range mods {
		switch strings.ToLower(strings.TrimSpace(m)) {
		case "ctrl", "control":
			seen[ModCtrl] = true
		case "alt", "option", "opt":
			seen[ModAlt] = true
		case "shift":
			seen[ModShift] = true
		case "cmd", "command":
			seen[p.NativeMeta()] = true
		case "meta", "super", "win":
			seen[ModMeta] = true
		}
	}

	result := make([]Modifier, 0, len(seen))
	for _, m := range canonicalOrder {
		if seen[m] {
			result = append(result, m)
		}
	}
	return result
}

// Combination builds the canonical combination string for a key and its
// normalized modifiers, e.g. "ctrl+shift+K". The combination uniquely
// identifies a binding within one context.
func Combination(k string, mods []Modifier) string {
	parts := make([]string, 0, len(mods)+1)
	for _, m := range mods {
		parts = append(parts, string(m))
	}
	parts = append(parts, strings.ToUpper(strings.TrimSpace(k)))
	return strings.Join(parts, "+")
}
