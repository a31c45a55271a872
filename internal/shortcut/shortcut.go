// Package shortcut routes keyboard events to registered callbacks, honoring
// active context scopes, text-entry suppression, and per-platform modifier
// semantics.
package shortcut

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lmeyrat/chime/internal/key"
)

// GlobalContext is the scope every manager always keeps active.
const GlobalContext = "global"

// Callback handles a dispatched key event.
type Callback func(ev key.Event)

// Predicate gates dispatch on the triggering event.
type Predicate func(ev key.Event) bool

// Shortcut is one registered binding. Enabled is the only field mutated
// after registration (via Manager.Enable/Disable); changing key or context
// requires re-registration.
type Shortcut struct {
	ID          string
	Key         string
	Modifiers   []key.Modifier
	Combination string // canonical, unique within one context
	DisplayText string // platform-rendered, e.g. "⌘⇧K" or "Ctrl+Shift+K"
	Description string
	Category    string
	Context     string
	Enabled     bool
	// PreventDefault consumes the event so it does not propagate to the
	// host application.
	PreventDefault bool
	// AllowInInput lets the shortcut fire while a text-entry widget owns
	// focus.
	AllowInInput bool
	When         Predicate
	Callback     Callback
}

// Options describes a registration. Key is required; everything else has
// defaults: context "global", enabled, prevent-default.
type Options struct {
	ID             string
	Key            string
	Modifiers      []string // any order and case, deduplicated
	Description    string
	Category       string
	Context        string
	Enabled        *bool // default true
	PreventDefault *bool // default true
	AllowInInput   bool
	When           Predicate
	Callback       Callback
}

func newShortcutID() string {
	return fmt.Sprintf("shortcut-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// --- Process-wide default manager ---

var (
	defaultMu      sync.Mutex
	defaultManager *Manager
)

// Default returns the process-wide manager, creating one for the detected
// platform on first use. Opt-in convenience; constructors stay independently
// testable.
func Default() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		defaultManager = New(key.DetectPlatform())
	}
	return defaultManager
}

// SetDefault replaces the process-wide manager.
func SetDefault(m *Manager) {
	defaultMu.Lock()
	defaultManager = m
	defaultMu.Unlock()
}
