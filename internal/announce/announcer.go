package announce

import (
	"sync"
	"time"

	"github.com/lmeyrat/chime/internal/errcode"
)

// task is one scheduled delivery with its cancellation handle. Pause, resume
// and clear are registry operations over tasks rather than ad hoc flags.
type task struct {
	ann       Announcement
	timer     *time.Timer   // nil while paused
	fireAt    time.Time     // valid while a timer is armed
	remaining time.Duration // valid while paused
	delivered bool
	done      chan struct{} // closed on delivery or discard
}

// Handle lets a caller await the outcome of one Announce call.
type Handle struct {
	t *task
}

// Done is closed once the announcement is delivered or discarded.
func (h *Handle) Done() <-chan struct{} {
	return h.t.done
}

// Delivered reports whether the announcement reached the live region.
// Only meaningful after Done is closed.
func (h *Handle) Delivered() bool {
	return h.t.delivered
}

// Announcement returns a copy of the queued entry.
func (h *Handle) Announcement() Announcement {
	return h.t.ann
}

// Announcer owns the announcement queue for one live region. All methods are
// safe for concurrent use; delivery happens on timer goroutines.
type Announcer struct {
	mu        sync.Mutex
	region    Region
	cfg       Config
	pending   []*task // queue order
	byID      map[string]*task
	cleanup   map[string]*time.Timer // post-delivery region clears
	inFlight  int
	paused    bool
	destroyed bool
}

// New creates an announcer delivering to the given region.
func New(region Region, cfg Config) *Announcer {
	if cfg.DefaultDelay <= 0 {
		cfg.DefaultDelay = fallbackDelay
	}
	if cfg.DefaultClearAfter <= 0 {
		cfg.DefaultClearAfter = fallbackClearAfter
	}
	return &Announcer{
		region:  region,
		cfg:     cfg,
		byID:    make(map[string]*task),
		cleanup: make(map[string]*time.Timer),
	}
}

// Announce queues a message for delivery after its delay. A clear-queue
// announcement discards only entries already queued at the time of the call;
// entries enqueued afterwards survive regardless of delivery timing.
func (a *Announcer) Announce(message string, opts Options) (*Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.destroyed {
		return nil, errcode.New(errcode.ManagerDestroyed, "announcer has been destroyed")
	}
	if message == "" {
		return nil, errcode.New(errcode.AnnouncementFailed, "announcement message is empty")
	}
	if a.region == nil {
		return nil, errcode.New(errcode.NoRegionAvailable, "announcer has no live region")
	}

	priority := opts.Priority
	if priority == "" {
		priority = Polite
	}
	clearQueue := priority == Assertive
	if opts.ClearQueue != nil {
		clearQueue = *opts.ClearQueue
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = a.cfg.DefaultDelay
	}
	clearAfter := opts.ClearAfter
	if clearAfter <= 0 {
		clearAfter = a.cfg.DefaultClearAfter
	}

	if clearQueue {
		a.discardPendingLocked()
	}

	id := opts.ID
	if id == "" {
		id = newAnnouncementID()
	} else if prior, ok := a.byID[id]; ok {
		// Coalesce: replace the in-flight entry instead of stacking.
		a.discardTaskLocked(prior)
	}

	t := &task{
		ann: Announcement{
			ID:         id,
			Message:    message,
			Priority:   priority,
			Timestamp:  time.Now(),
			Delay:      delay,
			ClearQueue: clearQueue,
			Persist:    opts.Persist,
			ClearAfter: clearAfter,
		},
		done: make(chan struct{}),
	}

	a.pending = append(a.pending, t)
	a.byID[id] = t
	a.inFlight++

	if a.paused {
		t.remaining = delay
	} else {
		a.armLocked(t, delay)
	}

	return &Handle{t: t}, nil
}

// --- Convenience wrappers ---

// AnnouncePolite queues a polite announcement.
func (a *Announcer) AnnouncePolite(message string) (*Handle, error) {
	return a.Announce(message, Options{Priority: Polite})
}

// AnnounceAssertive queues an assertive announcement. Assertive entries are
// interruptions, so the queue is cleared by default.
func (a *Announcer) AnnounceAssertive(message string) (*Handle, error) {
	return a.Announce(message, Options{Priority: Assertive})
}

// AnnounceStatus queues a polite, non-persistent status update.
func (a *Announcer) AnnounceStatus(message string) (*Handle, error) {
	return a.Announce(message, Options{Priority: Polite, Persist: false})
}

// AnnounceError queues an assertive, persistent error announcement. The
// entry stays readable in the live region after delivery.
func (a *Announcer) AnnounceError(message string) (*Handle, error) {
	clear := true
	return a.Announce(message, Options{Priority: Assertive, ClearQueue: &clear, Persist: true})
}

// --- Delivery ---

func (a *Announcer) armLocked(t *task, d time.Duration) {
	t.fireAt = time.Now().Add(d)
	t.timer = time.AfterFunc(d, func() { a.deliver(t) })
}

func (a *Announcer) deliver(t *task) {
	a.mu.Lock()

	if a.destroyed || a.byID[t.ann.ID] != t {
		a.mu.Unlock()
		return
	}
	if a.paused {
		// Timer fired while pausing; hold for resume.
		t.timer = nil
		t.remaining = 0
		a.mu.Unlock()
		return
	}

	a.removeTaskLocked(t)
	t.delivered = true
	a.inFlight--
	region := a.region
	a.mu.Unlock()

	region.Announce(t.ann)
	close(t.done)

	if t.ann.Persist {
		return
	}

	// Auto-remove from the live region once the entry has been readable
	// long enough.
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return
	}
	id := t.ann.ID
	a.cleanup[id] = time.AfterFunc(t.ann.ClearAfter, func() {
		a.mu.Lock()
		delete(a.cleanup, id)
		destroyed := a.destroyed
		a.mu.Unlock()
		if !destroyed {
			region.Clear(id)
		}
	})
}

// --- Cancellation primitives ---

// Pause halts delivery of queued entries without discarding them.
func (a *Announcer) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.paused || a.destroyed {
		return
	}
	a.paused = true
	for _, t := range a.pending {
		if t.timer != nil && t.timer.Stop() {
			t.remaining = max(time.Until(t.fireAt), 0)
			t.timer = nil
		}
	}
}

// Resume restarts delivery of paused entries with their remaining delays.
func (a *Announcer) Resume() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.paused || a.destroyed {
		return
	}
	a.paused = false
	for _, t := range a.pending {
		if t.timer == nil {
			a.armLocked(t, t.remaining)
		}
	}
}

// Clear discards all queued entries immediately. Announcements already
// delivered to the live region are not retracted.
func (a *Announcer) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.discardPendingLocked()
}

// Destroy tears down timers and detaches the live region. The announcer
// rejects further Announce calls.
func (a *Announcer) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return
	}
	a.discardPendingLocked()
	for id, timer := range a.cleanup {
		timer.Stop()
		delete(a.cleanup, id)
	}
	a.destroyed = true
}

// --- Introspection ---

// Queue returns the queued-but-undelivered announcements in order.
func (a *Announcer) Queue() []Announcement {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Announcement, len(a.pending))
	for i, t := range a.pending {
		out[i] = t.ann
	}
	return out
}

// IsAnnouncing reports whether any announcement is still in flight. Tracked
// by count: it goes false only once every concurrent entry resolves.
func (a *Announcer) IsAnnouncing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inFlight > 0
}

// Paused reports whether delivery is currently halted.
func (a *Announcer) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// --- Internals ---

func (a *Announcer) discardPendingLocked() {
	for _, t := range a.pending {
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
		}
		delete(a.byID, t.ann.ID)
		a.inFlight--
		close(t.done)
	}
	a.pending = nil
}

func (a *Announcer) discardTaskLocked(t *task) {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	a.removeTaskLocked(t)
	a.inFlight--
	close(t.done)
}

func (a *Announcer) removeTaskLocked(t *task) {
	delete(a.byID, t.ann.ID)
	for i, p := range a.pending {
		if p == t {
			a.pending = append(a.pending[:i], a.pending[i+1:]...)
			break
		}
	}
}
