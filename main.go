// Command chime-demo is a small profile editor that exercises the
// accessibility runtime end to end: context-scoped shortcuts, a focus-trapped
// dialog, live-region announcements and a theme contrast audit.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lmittmann/tint"

	"github.com/lmeyrat/chime/internal/announce"
	"github.com/lmeyrat/chime/internal/focustrap"
	"github.com/lmeyrat/chime/internal/key"
	"github.com/lmeyrat/chime/internal/prefs"
	"github.com/lmeyrat/chime/internal/shortcut"
	"github.com/lmeyrat/chime/internal/ui"
	"github.com/lmeyrat/chime/internal/ui/helpoverlay"
	"github.com/lmeyrat/chime/internal/ui/liveregion"
	"github.com/lmeyrat/chime/internal/ui/overlay"
	"github.com/lmeyrat/chime/internal/ui/styles"
)

// field wraps a text input so the focus trap can drive it.
type field struct {
	ui.Base
	label string
	input textinput.Model
}

func newField(label, placeholder string) *field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 64
	return &field{label: label, input: ti}
}

func (f *field) SetFocused(focused bool) {
	f.Base.SetFocused(focused)
	if focused {
		f.input.Focus()
	} else {
		f.input.Blur()
	}
}

func (f *field) View() string {
	s := styles.T().S()
	label := s.Muted
	if f.IsFocused() {
		label = s.Focused
	}
	return label.Render(f.label+": ") + f.input.View()
}

// button is a focusable dialog action.
type button struct {
	ui.Base
	label string
	press func()
}

func (b *button) View() string {
	s := styles.T().S()
	if b.IsFocused() {
		return s.Focused.Render("[ " + b.label + " ]")
	}
	return s.Muted.Render("[ " + b.label + " ]")
}

// dialog is the profile editor: a focus-trapped modal surface.
type dialog struct {
	root         *ui.Base
	name, email  *field
	save, cancel *button
	trap         *focustrap.Trap
}

func (d *dialog) FocusOrder() []focustrap.Element {
	return []focustrap.Element{d.name, d.email, d.save, d.cancel}
}

func (d *dialog) Root() focustrap.Element {
	return d.root
}

type model struct {
	prefs     *prefs.Prefs
	shortcuts *shortcut.Manager
	announcer *announce.Announcer
	live      liveregion.Model
	help      helpoverlay.Model

	mainPanel *ui.Base
	dialog    *dialog

	profile struct {
		name, email string
	}

	showDialog bool
	showHelp   bool
	quitting   bool

	hints []string // display texts of the global bindings

	width, height int
}

// Focused exposes the main-screen focus target so the trap can restore it.
func (m *model) Focused() focustrap.Element {
	if m.mainPanel.IsFocused() {
		return m.mainPanel
	}
	return nil
}

func newModel(p *prefs.Prefs, region *announce.MemoryRegion, announcer *announce.Announcer) *model {
	m := &model{
		prefs:     p,
		shortcuts: shortcut.New(p.Platform()),
		announcer: announcer,
		live:      liveregion.New(region, announcer),
		mainPanel: &ui.Base{},
	}
	m.mainPanel.SetFocused(true)

	d := &dialog{
		root:   &ui.Base{},
		name:   newField("Name", "Ada Lovelace"),
		email:  newField("Email", "ada@example.org"),
		save:   &button{label: "Save"},
		cancel: &button{label: "Cancel"},
	}
	d.save.press = m.saveDialog
	d.cancel.press = m.cancelDialog
	d.trap = focustrap.New(d, m, focustrap.Options{
		InitialFocus: d.name,
		OnEscape:     m.cancelDialog,
	})
	m.dialog = d

	m.help = helpoverlay.New(m.shortcuts)
	m.registerShortcuts()
	return m
}

func (m *model) registerShortcuts() {
	global := func(opts shortcut.Options) {
		opts.Category = "General"
		sc, err := m.shortcuts.Register(opts)
		if err != nil {
			slog.Error("register shortcut", "key", opts.Key, "err", err)
			return
		}
		m.hints = append(m.hints, sc.DisplayText+" "+opts.Description)
	}

	global(shortcut.Options{
		Key: "o", Modifiers: []string{"ctrl"},
		Description: "Edit profile",
		Callback:    func(key.Event) { m.openDialog() },
	})
	global(shortcut.Options{
		Key:         "?",
		Description: "Keyboard shortcuts",
		Callback:    func(key.Event) { m.toggleHelp() },
	})
	global(shortcut.Options{
		Key:         "c",
		Description: "Audit theme contrast",
		Callback:    func(key.Event) { m.announceAudit() },
	})
	global(shortcut.Options{
		Key:         "q",
		Description: "Quit",
		Callback:    func(key.Event) { m.quitting = true },
	})
	if _, err := m.shortcuts.Register(shortcut.Options{
		Key: "c", Modifiers: []string{"ctrl"},
		Description: "Quit",
		Category:    "General",
		Callback:    func(key.Event) { m.quitting = true },
	}); err != nil {
		slog.Error("register ctrl+c", "err", err)
	}

	dialogBinding := func(opts shortcut.Options) {
		opts.Context = "modal"
		opts.Category = "Dialog"
		opts.AllowInInput = true
		if _, err := m.shortcuts.Register(opts); err != nil {
			slog.Error("register shortcut", "key", opts.Key, "err", err)
		}
	}
	dialogBinding(shortcut.Options{
		Key: "s", Modifiers: []string{"ctrl"},
		Description: "Save profile",
		Callback:    func(key.Event) { m.saveDialog() },
	})
	dialogBinding(shortcut.Options{
		Key:         "escape",
		Description: "Discard changes",
		Callback:    func(key.Event) { m.cancelDialog() },
	})
}

func (m *model) openDialog() {
	if m.showDialog {
		return
	}
	m.dialog.name.input.SetValue(m.profile.name)
	m.dialog.email.input.SetValue(m.profile.email)
	m.showDialog = true
	m.dialog.trap.Activate()
	m.shortcuts.PushContext("modal")
	slog.Debug("dialog opened")

	msg := "Edit profile dialog"
	if m.prefs.VerboseAnnouncements() {
		msg += ", press Control S to save or Escape to discard"
	}
	if _, err := m.announcer.AnnounceStatus(msg); err != nil {
		slog.Warn("announce failed", "err", err)
	}
}

func (m *model) saveDialog() {
	if !m.showDialog {
		return
	}
	m.profile.name = m.dialog.name.input.Value()
	m.profile.email = m.dialog.email.input.Value()
	m.closeDialog()
	slog.Info("profile saved", "name", m.profile.name)
	if _, err := m.announcer.AnnounceStatus("Profile saved"); err != nil {
		slog.Warn("announce failed", "err", err)
	}
}

func (m *model) cancelDialog() {
	if !m.showDialog {
		return
	}
	m.closeDialog()
	if _, err := m.announcer.AnnouncePolite("Changes discarded"); err != nil {
		slog.Warn("announce failed", "err", err)
	}
}

func (m *model) closeDialog() {
	m.dialog.trap.Deactivate()
	m.shortcuts.PopContext("modal")
	m.showDialog = false
}

func (m *model) toggleHelp() {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.help.SetContexts([]string{shortcut.GlobalContext, "modal"})
	}
}

func (m *model) announceAudit() {
	level, _ := m.prefs.ContrastTarget()
	entries := styles.T().Audit(level)
	failing := 0
	for _, e := range entries {
		if !e.Result.Passes {
			failing++
		}
	}
	if failing == 0 {
		_, _ = m.announcer.AnnounceStatus(fmt.Sprintf("All %d theme pairs meet WCAG %s", len(entries), level))
		return
	}
	_, _ = m.announcer.AnnounceError(fmt.Sprintf("%d of %d theme pairs fail WCAG %s", failing, len(entries), level))
}

// editingText reports whether a text-entry widget owns focus, which
// suppresses non-opted-in shortcuts.
func (m *model) editingText() bool {
	if !m.showDialog {
		return false
	}
	_, ok := m.dialog.trap.Focused().(*field)
	return ok
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.live.SetSize(msg.Width, 1)
		return m, nil

	case liveregion.RefreshMsg:
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			ev := key.FromTea(msg)
			if m.help.HandleKey(ev) {
				return m, nil
			}
			if ev.Key == "escape" || ev.Key == "?" {
				m.showHelp = false
			}
			return m, nil
		}

		if m.shortcuts.DispatchTea(msg, m.editingText()) {
			if m.quitting {
				m.announcer.Destroy()
				return m, tea.Quit
			}
			return m, nil
		}

		if m.showDialog {
			ev := key.FromTea(msg)
			if m.dialog.trap.HandleKey(ev) {
				return m, nil
			}
			if ev.Key == "enter" {
				if b, ok := m.dialog.trap.Focused().(*button); ok {
					b.press()
					return m, nil
				}
			}
			if f, ok := m.dialog.trap.Focused().(*field); ok {
				var cmd tea.Cmd
				f.input, cmd = f.input.Update(msg)
				return m, cmd
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := styles.T().S()

	name := m.profile.name
	if name == "" {
		name = "(unset)"
	}
	email := m.profile.email
	if email == "" {
		email = "(unset)"
	}

	var body string
	body += s.Title.Render("chime demo") + "\n\n"
	body += s.Base.Render("Name:  ") + s.Muted.Render(name) + "\n"
	body += s.Base.Render("Email: ") + s.Muted.Render(email) + "\n\n"
	for _, hint := range m.hints {
		body += s.Subtle.Render(hint) + "\n"
	}

	contentHeight := m.height - 1
	lines := lipgloss.Height(body)
	for lines < contentHeight {
		body += "\n"
		lines++
	}
	view := body + m.live.View()

	if m.showDialog {
		view = overlay.Compose(view, m.dialogView(), m.width)
	}
	if m.showHelp {
		view = overlay.Compose(view, m.helpView(), m.width)
	}
	return view
}

func (m *model) dialogView() string {
	md := &overlay.Modal{
		Title: "Edit Profile",
		Body: m.dialog.name.View() + "\n" +
			m.dialog.email.View() + "\n\n" +
			m.dialog.save.View() + "  " + m.dialog.cancel.View(),
		Footer: "tab next · ctrl+s save · esc discard",
		Width:  48,
	}
	return md.Render(m.width, m.height)
}

func (m *model) helpView() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		Render(m.help.View())
	return overlay.Center(box, m.width, m.height)
}

// teeRegion mirrors live-region traffic to additional sinks, e.g. desktop
// notifications.
type teeRegion struct {
	regions []announce.Region
}

func (t teeRegion) Announce(a announce.Announcement) {
	for _, r := range t.regions {
		r.Announce(a)
	}
}

func (t teeRegion) Clear(id string) {
	for _, r := range t.regions {
		r.Clear(id)
	}
}

func setupLogging() func() {
	path := filepath.Join(os.TempDir(), "chime-demo.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))
		return func() {}
	}
	slog.SetDefault(slog.New(tint.NewHandler(f, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	})))
	return func() { f.Close() }
}

func main() {
	closeLog := setupLogging()
	defer closeLog()

	p, err := prefs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading preferences: %v\n", err)
		os.Exit(1)
	}

	var program *tea.Program
	mem := announce.NewMemoryRegion()
	var region announce.Region = liveregion.NotifyRegion{
		MemoryRegion: mem,
		Notify: func() {
			if program != nil {
				program.Send(liveregion.RefreshMsg{})
			}
		},
	}
	if p.Announce.Desktop {
		region = teeRegion{regions: []announce.Region{region, announce.NewDesktopRegion()}}
	}

	announcer := announce.New(region, p.AnnounceConfig())
	announce.SetDefault(announcer)

	m := newModel(p, mem, announcer)
	program = tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
