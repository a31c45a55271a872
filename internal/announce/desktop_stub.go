//go:build !linux

package announce

// NewDesktopRegion returns a no-op region on platforms without freedesktop
// notifications.
func NewDesktopRegion() Region {
	return stubRegion{}
}

type stubRegion struct{}

func (stubRegion) Announce(Announcement) {}

func (stubRegion) Clear(string) {}
