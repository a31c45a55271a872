package ui

// Base provides common widget state for focus and size management. Embed it
// in component models; it satisfies the focus trap's Element contract.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    input textinput.Model
//	}
type Base struct {
	width, height int
	focused       bool
	disabled      bool
	detached      bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// Focusable reports whether the component is reachable in tab order.
func (b Base) Focusable() bool {
	return !b.disabled && !b.detached
}

// SetDisabled removes the component from tab order without hiding it.
func (b *Base) SetDisabled(disabled bool) {
	b.disabled = disabled
}

// SetDetached marks the component as removed from the widget tree. A
// detached component is skipped by focus restoration.
func (b *Base) SetDetached(detached bool) {
	b.detached = detached
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}
