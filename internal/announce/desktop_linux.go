//go:build linux

package announce

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// desktopRegion mirrors announcements to freedesktop notifications, useful
// when the terminal is not the user's assistive surface. Assertive entries
// map to critical urgency; repeated ids replace the prior notification.
type desktopRegion struct {
	obj dbus.BusObject

	mu  sync.Mutex
	ids map[string]uint32 // announcement id -> notification id
}

// NewDesktopRegion creates a region delivering via D-Bus desktop
// notifications. Returns a no-op region when D-Bus is unavailable.
func NewDesktopRegion() Region {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noopRegion{}
	}
	return &desktopRegion{
		obj: conn.Object(dbusNotifyDest, dbusNotifyPath),
		ids: make(map[string]uint32),
	}
}

func (r *desktopRegion) Announce(a Announcement) {
	urgency := byte(1)
	if a.Priority == Assertive {
		urgency = 2
	}
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(urgency),
		"desktop-entry": dbus.MakeVariant("chime"),
	}

	r.mu.Lock()
	replaces := r.ids[a.ID]
	r.mu.Unlock()

	timeout := int32(-1)
	if a.Persist {
		timeout = 0 // never expire
	}

	call := r.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		"Chime",
		replaces,
		"",
		a.Message,
		"",
		[]string{},
		hints,
		timeout,
	)
	if call.Err != nil {
		return
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return
	}
	r.mu.Lock()
	r.ids[a.ID] = id
	r.mu.Unlock()
}

func (r *desktopRegion) Clear(id string) {
	r.mu.Lock()
	notifID, ok := r.ids[id]
	delete(r.ids, id)
	r.mu.Unlock()
	if !ok {
		return
	}
	r.obj.Call(dbusNotifyInterface+".CloseNotification", 0, notifID)
}

// noopRegion is used when D-Bus is unavailable.
type noopRegion struct{}

func (noopRegion) Announce(Announcement) {}

func (noopRegion) Clear(string) {}
