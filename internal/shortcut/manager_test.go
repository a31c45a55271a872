package shortcut

import (
	"strings"
	"testing"

	"github.com/lmeyrat/chime/internal/errcode"
	"github.com/lmeyrat/chime/internal/key"
)

func newTestManager() *Manager {
	return New(key.PlatformFor("linux"))
}

func TestRegisterNormalizesCombination(t *testing.T) {
	tests := []struct {
		name string
		key  string
		mods []string
		want string
	}{
		{"no modifiers", "k", nil, "K"},
		{"single modifier", "k", []string{"ctrl"}, "ctrl+K"},
		{"order independent", "k", []string{"shift", "ctrl"}, "ctrl+shift+K"},
		{"case folded", "K", []string{"CTRL", "Shift"}, "ctrl+shift+K"},
		{"deduplicated", "s", []string{"ctrl", "control"}, "ctrl+S"},
		{"cmd maps to ctrl off mac", "p", []string{"cmd"}, "ctrl+P"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()
			s, err := m.Register(Options{Key: tt.key, Modifiers: tt.mods})
			if err != nil {
				t.Fatalf("Register error: %v", err)
			}
			if s.Combination != tt.want {
				t.Errorf("combination = %q, want %q", s.Combination, tt.want)
			}
		})
	}
}

func TestRegisterDefaults(t *testing.T) {
	m := newTestManager()
	s, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if s.Context != GlobalContext {
		t.Errorf("context = %q, want %q", s.Context, GlobalContext)
	}
	if !s.Enabled {
		t.Error("shortcut should default to enabled")
	}
	if !s.PreventDefault {
		t.Error("shortcut should default to prevent-default")
	}
	if s.AllowInInput {
		t.Error("shortcut should default to not allowed in input")
	}
	if !strings.HasPrefix(s.ID, "shortcut-") {
		t.Errorf("generated id = %q, want shortcut-<ts>-<rand>", s.ID)
	}
	if s.DisplayText != "Ctrl+K" {
		t.Errorf("display text = %q, want %q", s.DisplayText, "Ctrl+K")
	}
}

func TestRegisterKeyRequired(t *testing.T) {
	m := newTestManager()
	if _, err := m.Register(Options{}); err == nil {
		t.Fatal("registration without a key should fail")
	}
}

func TestRegisterConflictSameContext(t *testing.T) {
	m := newTestManager()
	if _, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}}); err != nil {
		t.Fatalf("first registration error: %v", err)
	}

	// Modifier order must not change the conflict outcome.
	_, err := m.Register(Options{Key: "K", Modifiers: []string{"CTRL"}})
	if err == nil {
		t.Fatal("duplicate combination in one context should fail")
	}
	if !errcode.Is(err, errcode.ShortcutConflict) {
		t.Errorf("error code = %q, want SHORTCUT_CONFLICT", errcode.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "Ctrl+K") {
		t.Errorf("conflict error %q should carry the display combination", err)
	}
}

func TestRegisterSameCombinationDifferentContexts(t *testing.T) {
	m := newTestManager()
	for _, context := range []string{"editor", "modal"} {
		if _, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}, Context: context}); err != nil {
			t.Fatalf("registration in context %q error: %v", context, err)
		}
	}
}

func TestRegisterDisabledDoesNotConflict(t *testing.T) {
	m := newTestManager()
	disabled := false
	if _, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}, Enabled: &disabled}); err != nil {
		t.Fatalf("disabled registration error: %v", err)
	}
	if _, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}}); err != nil {
		t.Errorf("registering over a disabled binding should succeed, got %v", err)
	}
}

func TestRegisterDuplicateID(t *testing.T) {
	m := newTestManager()
	if _, err := m.Register(Options{ID: "save", Key: "s", Modifiers: []string{"ctrl"}}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := m.Register(Options{ID: "save", Key: "o", Modifiers: []string{"ctrl"}}); err == nil {
		t.Error("duplicate explicit id should fail")
	}
}

func TestUnregisterIdempotent(t *testing.T) {
	m := newTestManager()
	s, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	m.Unregister(s.ID)
	m.Unregister(s.ID)        // already gone: no-op
	m.Unregister("never-was") // unknown: no-op

	if _, ok := m.Get(s.ID); ok {
		t.Error("shortcut should be gone after unregister")
	}

	// The combination is free again.
	if _, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}}); err != nil {
		t.Errorf("re-registration after unregister error: %v", err)
	}
}

func TestEnableDisable(t *testing.T) {
	m := newTestManager()
	s, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	m.Disable(s.ID)
	if got, _ := m.Get(s.ID); got.Enabled {
		t.Error("shortcut should be disabled")
	}
	if err := m.Enable(s.ID); err != nil {
		t.Fatalf("Enable error: %v", err)
	}
	if got, _ := m.Get(s.ID); !got.Enabled {
		t.Error("shortcut should be enabled")
	}

	// Unknown ids never throw.
	if err := m.Enable("missing"); err != nil {
		t.Errorf("enabling an unknown id should be a no-op, got %v", err)
	}
	m.Disable("missing")
}

func TestEnableRespectsConflict(t *testing.T) {
	m := newTestManager()
	first, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// Disabling frees the combination for a new binding.
	m.Disable(first.ID)
	second, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}})
	if err != nil {
		t.Fatalf("registering over the disabled binding error: %v", err)
	}

	err = m.Enable(first.ID)
	if !errcode.Is(err, errcode.ShortcutConflict) {
		t.Fatalf("Enable = %v, want SHORTCUT_CONFLICT", err)
	}
	if got, _ := m.Get(first.ID); got.Enabled {
		t.Error("conflicting shortcut must stay disabled")
	}

	// One enabled binding per combination per context, always.
	enabled := 0
	for _, s := range m.ByContext(GlobalContext) {
		if s.Enabled && s.Combination == first.Combination {
			enabled++
		}
	}
	if enabled != 1 {
		t.Errorf("%d enabled bindings share %s, want 1", enabled, first.Combination)
	}

	// Once the claim is released, enabling succeeds.
	m.Unregister(second.ID)
	if err := m.Enable(first.ID); err != nil {
		t.Errorf("Enable after unregister error: %v", err)
	}
}

func TestActiveContextStack(t *testing.T) {
	m := newTestManager()

	contexts := m.ActiveContexts()
	if len(contexts) != 1 || contexts[0] != GlobalContext {
		t.Fatalf("initial contexts = %v, want [global]", contexts)
	}

	m.SetActiveContexts("modal", "editor")
	contexts = m.ActiveContexts()
	want := []string{"modal", "editor", GlobalContext}
	if len(contexts) != len(want) {
		t.Fatalf("contexts = %v, want %v", contexts, want)
	}
	for i := range want {
		if contexts[i] != want[i] {
			t.Errorf("contexts[%d] = %q, want %q", i, contexts[i], want[i])
		}
	}

	// Listing global explicitly must not duplicate it.
	m.SetActiveContexts("global", "modal")
	contexts = m.ActiveContexts()
	if len(contexts) != 2 || contexts[0] != "modal" || contexts[1] != GlobalContext {
		t.Errorf("contexts = %v, want [modal global]", contexts)
	}

	m.ClearActiveContexts()
	contexts = m.ActiveContexts()
	if len(contexts) != 1 || contexts[0] != GlobalContext {
		t.Errorf("contexts after clear = %v, want [global]", contexts)
	}
}

func TestPushPopContext(t *testing.T) {
	m := newTestManager()
	m.PushContext("modal")
	m.PushContext("nested")

	contexts := m.ActiveContexts()
	if len(contexts) != 3 || contexts[0] != "modal" || contexts[1] != "nested" {
		t.Fatalf("contexts = %v, want [modal nested global]", contexts)
	}

	m.PopContext("nested")
	m.PopContext("nested") // no-op
	contexts = m.ActiveContexts()
	if len(contexts) != 2 || contexts[0] != "modal" {
		t.Errorf("contexts = %v, want [modal global]", contexts)
	}
}

func TestQueries(t *testing.T) {
	m := newTestManager()
	mustRegister := func(opts Options) *Shortcut {
		t.Helper()
		s, err := m.Register(opts)
		if err != nil {
			t.Fatalf("Register error: %v", err)
		}
		return s
	}

	save := mustRegister(Options{Key: "s", Modifiers: []string{"ctrl"}, Description: "Save document", Category: "file"})
	mustRegister(Options{Key: "o", Modifiers: []string{"ctrl"}, Description: "Open document", Category: "file"})
	mustRegister(Options{Key: "escape", Context: "modal", Description: "Close dialog", Category: "navigation"})

	if got := len(m.All()); got != 3 {
		t.Errorf("All() returned %d shortcuts, want 3", got)
	}
	if got := len(m.ByContext("modal")); got != 1 {
		t.Errorf("ByContext(modal) returned %d, want 1", got)
	}
	if got := len(m.ByCategory("file")); got != 2 {
		t.Errorf("ByCategory(file) returned %d, want 2", got)
	}

	// Case-insensitive over description, combination and key.
	if got := m.Search("save"); len(got) != 1 || got[0] != save {
		t.Errorf("Search(save) = %v, want the save shortcut", got)
	}
	if got := m.Search("CTRL+"); len(got) != 2 {
		t.Errorf("Search(CTRL+) returned %d, want 2", len(got))
	}
	if got := m.Search("escape"); len(got) != 1 {
		t.Errorf("Search(escape) returned %d, want 1", len(got))
	}

	if !m.HasConflict("s", []string{"ctrl"}, "") {
		t.Error("HasConflict should report the existing global binding")
	}
	if m.HasConflict("s", []string{"ctrl"}, "modal") {
		t.Error("HasConflict must be scoped per context")
	}
	if got := m.Conflict("s", []string{"ctrl"}, GlobalContext); got != save {
		t.Errorf("Conflict = %v, want the save shortcut", got)
	}
}

func TestDestroy(t *testing.T) {
	m := newTestManager()
	if _, err := m.Register(Options{Key: "k", Modifiers: []string{"ctrl"}}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	m.Destroy()
	m.Destroy() // idempotent

	if got := len(m.All()); got != 0 {
		t.Errorf("registry should be empty after destroy, got %d", got)
	}
	_, err := m.Register(Options{Key: "k"})
	if !errcode.Is(err, errcode.ManagerDestroyed) {
		t.Errorf("error code = %q, want MANAGER_DESTROYED", errcode.CodeOf(err))
	}
	if m.Dispatch(key.Event{Key: "k", Ctrl: true}) {
		t.Error("destroyed manager must not dispatch")
	}
}

func TestDefaultManagerSingleton(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	m := newTestManager()
	SetDefault(m)
	if Default() != m {
		t.Error("Default should return the installed manager")
	}
}
