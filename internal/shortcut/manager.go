package shortcut

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lmeyrat/chime/internal/errcode"
	"github.com/lmeyrat/chime/internal/key"
)

// Manager owns the shortcut registry and the active-context stack for one
// key-event stream. Hosts call Destroy symmetrically with construction so a
// remounted manager never leaves a stale registry behind.
type Manager struct {
	mu       sync.Mutex
	platform key.Platform

	byID  map[string]*Shortcut
	order []*Shortcut // registration order, for stable query output
	// context -> combination -> registered shortcuts (disabled ones may
	// coexist with one enabled binding)
	byContext map[string]map[string][]*Shortcut

	// activation-order stack of explicit contexts; global is implicit and
	// always scanned last
	activeContexts []string

	dispatchEnabled bool // master switch, independent of per-shortcut flags
	destroyed       bool
}

// New creates a manager for the given platform.
func New(platform key.Platform) *Manager {
	return &Manager{
		platform:        platform,
		byID:            make(map[string]*Shortcut),
		byContext:       make(map[string]map[string][]*Shortcut),
		dispatchEnabled: true,
	}
}

// Platform returns the platform the manager normalizes against.
func (m *Manager) Platform() key.Platform {
	return m.platform
}

// --- Registration ---

// Register normalizes the binding and indexes it by id and by per-context
// combination. It fails with SHORTCUT_CONFLICT when an enabled shortcut with
// the same combination already exists in the same context; different
// contexts may reuse a combination freely.
func (m *Manager) Register(opts Options) (*Shortcut, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed {
		return nil, errcode.New(errcode.ManagerDestroyed, "shortcut manager has been destroyed")
	}
	if strings.TrimSpace(opts.Key) == "" {
		return nil, fmt.Errorf("shortcut: key is required")
	}

	context := opts.Context
	if context == "" {
		context = GlobalContext
	}

	mods := key.Normalize(opts.Modifiers, m.platform)
	combination := key.Combination(opts.Key, mods)

	enabled := true
	if opts.Enabled != nil {
		enabled = *opts.Enabled
	}
	preventDefault := true
	if opts.PreventDefault != nil {
		preventDefault = *opts.PreventDefault
	}

	display := m.platform.DisplayText(opts.Key, mods)
	if existing := m.conflictLocked(combination, context); existing != nil {
		return nil, errcode.New(errcode.ShortcutConflict,
			"%s is already bound in context %q", display, context)
	}

	id := opts.ID
	if id == "" {
		id = newShortcutID()
	} else if _, exists := m.byID[id]; exists {
		return nil, fmt.Errorf("shortcut: id %q is already registered", id)
	}

	s := &Shortcut{
		ID:             id,
		Key:            strings.ToLower(strings.TrimSpace(opts.Key)),
		Modifiers:      mods,
		Combination:    combination,
		DisplayText:    display,
		Description:    opts.Description,
		Category:       opts.Category,
		Context:        context,
		Enabled:        enabled,
		PreventDefault: preventDefault,
		AllowInInput:   opts.AllowInInput,
		When:           opts.When,
		Callback:       opts.Callback,
	}

	m.byID[id] = s
	m.order = append(m.order, s)
	if m.byContext[context] == nil {
		m.byContext[context] = make(map[string][]*Shortcut)
	}
	m.byContext[context][combination] = append(m.byContext[context][combination], s)

	return s, nil
}

// Unregister removes a shortcut by id. Removing an unknown id is a no-op;
// callers frequently unregister during unmount races.
func (m *Manager) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.byID[id]
	if !ok {
		return
	}
	delete(m.byID, id)

	for i, existing := range m.order {
		if existing == s {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	combos := m.byContext[s.Context]
	list := combos[s.Combination]
	for i, existing := range list {
		if existing == s {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(combos, s.Combination)
		if len(combos) == 0 {
			delete(m.byContext, s.Context)
		}
	} else {
		combos[s.Combination] = list
	}
}

// --- Active contexts ---

// SetActiveContexts replaces the active-context stack. The global context is
// always implicitly active and never needs to be listed.
func (m *Manager) SetActiveContexts(contexts ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeContexts = m.activeContexts[:0]
	for _, c := range contexts {
		if c != "" && c != GlobalContext {
			m.activeContexts = append(m.activeContexts, c)
		}
	}
}

// PushContext pushes a context onto the stack, typically around an overlay
// opening.
func (m *Manager) PushContext(context string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if context == "" || context == GlobalContext {
		return
	}
	m.activeContexts = append(m.activeContexts, context)
}

// PopContext removes the most recent occurrence of a context from the stack.
// Unknown contexts are a no-op.
func (m *Manager) PopContext(context string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.activeContexts) - 1; i >= 0; i-- {
		if m.activeContexts[i] == context {
			m.activeContexts = append(m.activeContexts[:i], m.activeContexts[i+1:]...)
			return
		}
	}
}

// ClearActiveContexts resets the stack to just the global context.
func (m *Manager) ClearActiveContexts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeContexts = m.activeContexts[:0]
}

// ActiveContexts returns the scan order: explicit contexts in activation
// order, then global.
func (m *Manager) ActiveContexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scanOrderLocked()
}

func (m *Manager) scanOrderLocked() []string {
	out := make([]string, 0, len(m.activeContexts)+1)
	out = append(out, m.activeContexts...)
	return append(out, GlobalContext)
}

// --- Enable/disable ---

// Enable re-enables a single shortcut. Unknown ids are a no-op. It fails
// with SHORTCUT_CONFLICT when another enabled shortcut has claimed the same
// combination in the context since this one was disabled; the one-enabled-
// binding-per-combination invariant holds across disable/enable cycles.
func (m *Manager) Enable(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.byID[id]
	if !ok || s.Enabled {
		return nil
	}
	if existing := m.conflictLocked(s.Combination, s.Context); existing != nil {
		return errcode.New(errcode.ShortcutConflict,
			"%s is already bound in context %q", s.DisplayText, s.Context)
	}
	s.Enabled = true
	return nil
}

// Disable disables a single shortcut. Unknown ids are a no-op.
func (m *Manager) Disable(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.byID[id]; ok {
		s.Enabled = false
	}
}

// EnableAll turns the manager-wide dispatch switch on.
func (m *Manager) EnableAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatchEnabled = true
}

// DisableAll turns dispatch off without touching individual Enabled flags.
func (m *Manager) DisableAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatchEnabled = false
}

// DispatchEnabled reports the master switch state.
func (m *Manager) DispatchEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatchEnabled
}

// --- Queries ---

// Get returns a shortcut by id.
func (m *Manager) Get(id string) (*Shortcut, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	return s, ok
}

// All returns every registered shortcut in registration order.
func (m *Manager) All() []*Shortcut {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Shortcut, len(m.order))
	copy(out, m.order)
	return out
}

// ByContext returns shortcuts registered in a context.
func (m *Manager) ByContext(context string) []*Shortcut {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Shortcut
	for _, s := range m.order {
		if s.Context == context {
			out = append(out, s)
		}
	}
	return out
}

// ByCategory returns shortcuts tagged with a category.
func (m *Manager) ByCategory(category string) []*Shortcut {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Shortcut
	for _, s := range m.order {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Search matches a substring case-insensitively against description,
// combination, and key.
func (m *Manager) Search(query string) []*Shortcut {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := strings.ToLower(query)
	var out []*Shortcut
	for _, s := range m.order {
		if strings.Contains(strings.ToLower(s.Description), q) ||
			strings.Contains(strings.ToLower(s.Combination), q) ||
			strings.Contains(strings.ToLower(s.Key), q) {
			out = append(out, s)
		}
	}
	return out
}

// HasConflict reports whether registering the given key and modifiers in a
// context would fail.
func (m *Manager) HasConflict(k string, modifiers []string, context string) bool {
	return m.Conflict(k, modifiers, context) != nil
}

// Conflict returns the enabled shortcut that would conflict with the given
// binding, or nil.
func (m *Manager) Conflict(k string, modifiers []string, context string) *Shortcut {
	m.mu.Lock()
	defer m.mu.Unlock()

	if context == "" {
		context = GlobalContext
	}
	combination := key.Combination(k, key.Normalize(modifiers, m.platform))
	return m.conflictLocked(combination, context)
}

func (m *Manager) conflictLocked(combination, context string) *Shortcut {
	for _, s := range m.byContext[context][combination] {
		if s.Enabled {
			return s
		}
	}
	return nil
}

// --- Teardown ---

// Destroy clears the registry and detaches the manager from its event
// stream. Further registrations fail; dispatch becomes a no-op.
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return
	}
	m.byID = make(map[string]*Shortcut)
	m.byContext = make(map[string]map[string][]*Shortcut)
	m.order = nil
	m.activeContexts = nil
	m.destroyed = true
}
