// Package focustrap constrains keyboard focus to the widgets of an overlay
// surface while it is open, and restores the prior focus on close.
package focustrap

import (
	"github.com/lmeyrat/chime/internal/key"
)

// Element is a widget that can hold keyboard focus.
type Element interface {
	SetFocused(bool)
	IsFocused() bool
	// Focusable reports whether the element is reachable in tab order
	// right now (visible, enabled, attached).
	Focusable() bool
}

// Surface supplies the trapped widget set. The focus order is recomputed on
// every Activate and Refresh, never cached across activations, since overlay
// content can change.
type Surface interface {
	// FocusOrder returns the surface's elements in tab order.
	FocusOrder() []Element
	// Root is the fallback focus target when no element is focusable.
	// May be nil.
	Root() Element
}

// Host exposes the widget currently holding focus outside the trap, so it
// can be restored on deactivation. May be nil.
type Host interface {
	Focused() Element
}

// Options configures a trap. All fields are optional.
type Options struct {
	// InitialFocus receives focus on activation instead of the first
	// focusable element.
	InitialFocus Element
	// ReturnFocus overrides the captured prior-focus target on
	// deactivation.
	ReturnFocus Element
	// OnEscape is wired by the owner to its own close logic; the trap
	// itself never decides to close.
	OnEscape func()
	// OnClickOutside is invoked by NotifyClickOutside.
	OnClickOutside func()
}

// Trap is a focus-containment controller for one overlay lifetime.
// Owners call Activate and Destroy symmetrically with open and close.
type Trap struct {
	surface  Surface
	host     Host
	opts     Options
	elements []Element
	prior    Element
	active   bool
}

// New creates an inactive trap over a surface. host may be nil.
func New(surface Surface, host Host, opts Options) *Trap {
	return &Trap{surface: surface, host: host, opts: opts}
}

// Active reports whether the trap currently contains focus.
func (t *Trap) Active() bool {
	return t.active
}

// Activate snapshots the surface's focusable elements, captures the prior
// focus target, and moves focus into the trap. Activating an active trap is
// a no-op.
func (t *Trap) Activate() {
	if t.active || t.surface == nil {
		return
	}

	if t.host != nil {
		t.prior = t.host.Focused()
	}
	t.elements = focusables(t.surface.FocusOrder())
	t.active = true

	if t.prior != nil {
		t.prior.SetFocused(false)
	}
	t.focusInitial()
}

// Refresh recomputes the focusable set mid-activation, for surfaces whose
// content changed. Keeps the currently focused element when still present.
func (t *Trap) Refresh() {
	if !t.active {
		return
	}
	current := t.Focused()
	t.elements = focusables(t.surface.FocusOrder())
	if current != nil && t.Contains(current) {
		return
	}
	t.focusInitial()
}

// HandleKey processes tab/shift+tab wrap-around and the escape hook.
// Returns true when the event was consumed.
func (t *Trap) HandleKey(ev key.Event) bool {
	if !t.active {
		return false
	}

	switch ev.Key {
	case "tab":
		if ev.Shift {
			t.Move(-1)
		} else {
			t.Move(1)
		}
		return true
	case "escape":
		if t.opts.OnEscape != nil {
			t.opts.OnEscape()
			return true
		}
	}
	return false
}

// Move shifts focus by delta positions with wrap-around.
func (t *Trap) Move(delta int) {
	if !t.active || len(t.elements) == 0 {
		return
	}

	idx := t.focusedIndex()
	if idx >= 0 {
		t.elements[idx].SetFocused(false)
	}
	next := ((idx+delta)%len(t.elements) + len(t.elements)) % len(t.elements)
	t.elements[next].SetFocused(true)
}

// Redirect intercepts a focus change targeting el. Targets inside the trap
// are focused as requested; targets outside are redirected to the first
// (forward) or last (backward) focusable element. Returns the element that
// ended up focused, or nil when the trap is inactive.
func (t *Trap) Redirect(el Element, forward bool) Element {
	if !t.active {
		return nil
	}

	target := el
	if target == nil || !t.Contains(target) {
		if len(t.elements) == 0 {
			target = t.surface.Root()
		} else if forward {
			target = t.elements[0]
		} else {
			target = t.elements[len(t.elements)-1]
		}
	}
	if target == nil {
		return nil
	}

	if current := t.Focused(); current != nil && current != target {
		current.SetFocused(false)
	}
	target.SetFocused(true)
	return target
}

// NotifyClickOutside reports a pointer event outside the surface to the
// owner's hook.
func (t *Trap) NotifyClickOutside() {
	if t.active && t.opts.OnClickOutside != nil {
		t.opts.OnClickOutside()
	}
}

// Contains reports whether el is part of the trapped focus order.
func (t *Trap) Contains(el Element) bool {
	for _, e := range t.elements {
		if e == el {
			return true
		}
	}
	return false
}

// Focused returns the trapped element currently holding focus, or nil.
func (t *Trap) Focused() Element {
	if idx := t.focusedIndex(); idx >= 0 {
		return t.elements[idx]
	}
	if t.surface == nil {
		return nil
	}
	if root := t.surface.Root(); root != nil && root.IsFocused() {
		return root
	}
	return nil
}

// Deactivate releases containment and restores the pre-activation focus
// target (or the ReturnFocus override) when it is still focusable.
// Safe to call on an inactive trap.
func (t *Trap) Deactivate() {
	if !t.active {
		return
	}

	for _, e := range t.elements {
		e.SetFocused(false)
	}
	if root := t.surface.Root(); root != nil {
		root.SetFocused(false)
	}
	t.active = false

	restore := t.opts.ReturnFocus
	if restore == nil {
		restore = t.prior
	}
	if restore != nil && restore.Focusable() {
		restore.SetFocused(true)
	}
	t.prior = nil
	t.elements = nil
}

// Destroy deactivates the trap and drops its references. Idempotent.
func (t *Trap) Destroy() {
	t.Deactivate()
	t.surface = nil
	t.host = nil
	t.opts = Options{}
}

// --- Internals ---

func (t *Trap) focusInitial() {
	target := t.opts.InitialFocus
	if target == nil || !t.Contains(target) {
		if len(t.elements) > 0 {
			target = t.elements[0]
		} else {
			// Zero focusable descendants: fall back to the root itself.
			target = t.surface.Root()
		}
	}
	if target != nil {
		target.SetFocused(true)
	}
}

func (t *Trap) focusedIndex() int {
	for i, e := range t.elements {
		if e.IsFocused() {
			return i
		}
	}
	return -1
}

func focusables(all []Element) []Element {
	out := make([]Element, 0, len(all))
	for _, e := range all {
		if e != nil && e.Focusable() {
			out = append(out, e)
		}
	}
	return out
}
