package shortcut

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmeyrat/chime/internal/key"
)

// Dispatch resolves a key event against the active contexts and fires the
// first enabled match. It returns true when the event was consumed (the
// matched shortcut has PreventDefault set) and the host should stop
// propagating it.
//
// Resolution per event: text-entry suppression first, then contexts are
// scanned in activation order with global last, then the match's `when`
// predicate. A panicking callback is swallowed; one broken shortcut must not
// take down key handling.
func (m *Manager) Dispatch(ev key.Event) bool {
	m.mu.Lock()

	if m.destroyed || !m.dispatchEnabled {
		m.mu.Unlock()
		return false
	}

	combination := ev.Combination()
	order := m.scanOrderLocked()

	// A focused text-entry widget suppresses the event entirely unless some
	// enabled binding for this exact combination opted in.
	if ev.Editable && !m.anyAllowInInputLocked(combination, order) {
		m.mu.Unlock()
		return false
	}

	var match *Shortcut
	for _, context := range order {
		for _, s := range m.byContext[context][combination] {
			if !s.Enabled {
				continue
			}
			if ev.Editable && !s.AllowInInput {
				continue
			}
			match = s
			break
		}
		if match != nil {
			break
		}
	}
	m.mu.Unlock()

	if match == nil {
		return false
	}
	if match.When != nil && !match.When(ev) {
		return false
	}

	invoke(match.Callback, ev)
	return match.PreventDefault
}

// DispatchTea adapts a bubbletea key message. editable marks that a
// text-entry widget currently owns focus.
func (m *Manager) DispatchTea(msg tea.KeyMsg, editable bool) bool {
	ev := key.FromTea(msg)
	ev.Editable = editable
	return m.Dispatch(ev)
}

func (m *Manager) anyAllowInInputLocked(combination string, order []string) bool {
	for _, context := range order {
		for _, s := range m.byContext[context][combination] {
			if s.Enabled && s.AllowInInput {
				return true
			}
		}
	}
	return false
}

func invoke(cb Callback, ev key.Event) {
	if cb == nil {
		return
	}
	defer func() {
		_ = recover() // dispatch errors never disable global key handling
	}()
	cb(ev)
}
