// Package liveregion renders an announcer's live region as a one-line status
// strip. It is the terminal stand-in for an ARIA live region: assistive
// output lands here instead of being spoken.
package liveregion

import (
	"fmt"

	"github.com/lmeyrat/chime/internal/announce"
	"github.com/lmeyrat/chime/internal/ui"
	"github.com/lmeyrat/chime/internal/ui/styles"
)

// RefreshMsg asks the program to repaint after an off-loop delivery.
type RefreshMsg struct{}

// NotifyRegion wraps a memory region and signals the UI loop on every
// delivery, since announcer timers fire outside bubbletea's update cycle.
// Wire Notify to program.Send(RefreshMsg{}).
type NotifyRegion struct {
	*announce.MemoryRegion
	Notify func()
}

func (r NotifyRegion) Announce(a announce.Announcement) {
	r.MemoryRegion.Announce(a)
	if r.Notify != nil {
		r.Notify()
	}
}

func (r NotifyRegion) Clear(id string) {
	r.MemoryRegion.Clear(id)
	if r.Notify != nil {
		r.Notify()
	}
}

// Model displays the most recent announcements and a busy indicator.
type Model struct {
	ui.Base
	region    *announce.MemoryRegion
	announcer *announce.Announcer
}

// New creates a live region strip over a memory region. announcer may be
// nil; it only feeds the busy indicator.
func New(region *announce.MemoryRegion, announcer *announce.Announcer) Model {
	return Model{region: region, announcer: announcer}
}

// View renders the strip: assertive text wins over polite, and a queue
// counter appears while announcements are in flight.
func (m Model) View() string {
	s := styles.T().S()

	var text string
	if assertive := m.latestDelivered(announce.Assertive); assertive != "" {
		text = s.Assertive.Render("⚠ " + assertive)
	} else if polite := m.latestDelivered(announce.Polite); polite != "" {
		text = s.Polite.Render(polite)
	}

	if m.announcer != nil && m.announcer.IsAnnouncing() {
		busy := fmt.Sprintf(" (%d queued)", len(m.announcer.Queue()))
		text += s.Subtle.Render(busy)
	}

	return text
}

// latestDelivered returns the newest not-yet-cleared entry for a priority.
func (m Model) latestDelivered(p announce.Priority) string {
	var last string
	for _, a := range m.region.Entries() {
		if a.Priority == p {
			last = a.Message
		}
	}
	return last
}
