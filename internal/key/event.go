package key

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Event is a logical keyboard event as seen by the dispatcher.
type Event struct {
	Key   string // logical key name, case-insensitive ("k", "escape", "f1")
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool

	// Editable marks that a text-entry widget owns focus; shortcuts without
	// AllowInInput are suppressed for such events.
	Editable bool
}

// Modifiers returns the event's modifier set in canonical order.
func (e Event) Modifiers() []Modifier {
	mods := make([]Modifier, 0, 4)
	if e.Ctrl {
		mods = append(mods, ModCtrl)
	}
	if e.Alt {
		mods = append(mods, ModAlt)
	}
	if e.Shift {
		mods = append(mods, ModShift)
	}
	if e.Meta {
		mods = append(mods, ModMeta)
	}
	return mods
}

// Combination returns the canonical combination string for the event.
func (e Event) Combination() string {
	return Combination(e.Key, e.Modifiers())
}

// FromTea translates a bubbletea key message into an Event. Shifted letters
// arrive as uppercase runes and are folded back into shift+lowercase so they
// match registration-time normalization.
func FromTea(msg tea.KeyMsg) Event {
	var ev Event

	parts := strings.Split(msg.String(), "+")
	k := parts[len(parts)-1]
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			ev.Ctrl = true
		case "alt":
			ev.Alt = true
		case "shift":
			ev.Shift = true
		case "super", "meta", "cmd":
			ev.Meta = true
		}
	}

	if len(k) == 1 && k >= "A" && k <= "Z" {
		ev.Shift = true
		k = strings.ToLower(k)
	}
	if k == "esc" {
		k = "escape"
	}
	ev.Key = k

	return ev
}
