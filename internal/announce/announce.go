// Package announce serializes UI state-change announcements to live regions
// so simultaneous events do not talk over each other, while respecting
// urgency. It is the screen-reader side of the accessibility runtime.
package announce

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Priority classifies how urgently an announcement must be delivered.
type Priority string

const (
	// Polite announcements wait for the assistive technology to go idle.
	Polite Priority = "polite"
	// Assertive announcements interrupt; by default they clear the queue.
	Assertive Priority = "assertive"
)

// Announcement is one queued message.
type Announcement struct {
	ID         string
	Message    string
	Priority   Priority
	Timestamp  time.Time
	Delay      time.Duration
	ClearQueue bool
	Persist    bool
	ClearAfter time.Duration
}

// Options tunes a single Announce call. The zero value means: polite
// priority, announcer default delay, clear-queue derived from priority,
// no persistence, announcer default clear-after.
type Options struct {
	ID         string
	Priority   Priority
	Delay      time.Duration // <= 0 uses the announcer default
	ClearQueue *bool         // nil derives from priority (assertive clears)
	Persist    bool
	ClearAfter time.Duration // <= 0 uses the announcer default
}

// Config holds announcer-level defaults, typically read from preferences.
type Config struct {
	// DefaultDelay gives the assistive-technology focus model time to
	// settle before delivery. Zero falls back to 100ms.
	DefaultDelay time.Duration
	// DefaultClearAfter is how long a delivered, non-persistent entry
	// stays in the live region. Zero falls back to 1s.
	DefaultClearAfter time.Duration
}

const (
	fallbackDelay      = 100 * time.Millisecond
	fallbackClearAfter = time.Second
)

func newAnnouncementID() string {
	return fmt.Sprintf("announcement-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// --- Process-wide default announcer ---

var (
	defaultMu        sync.Mutex
	defaultAnnouncer *Announcer
)

// Default returns the process-wide announcer, creating a memory-region-backed
// one on first use. Hosts narrating state changes share this instance; tests
// construct their own announcers instead.
func Default() *Announcer {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultAnnouncer == nil {
		defaultAnnouncer = New(NewMemoryRegion(), Config{})
	}
	return defaultAnnouncer
}

// SetDefault replaces the process-wide announcer. The previous default, if
// any, is not destroyed.
func SetDefault(a *Announcer) {
	defaultMu.Lock()
	defaultAnnouncer = a
	defaultMu.Unlock()
}
