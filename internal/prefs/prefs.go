// Package prefs reads user accessibility preferences. Host components use
// these to parameterize the announcer and validator before calling into the
// engines; the runtime itself never writes preferences.
package prefs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lmeyrat/chime/internal/announce"
	"github.com/lmeyrat/chime/internal/contrast"
	"github.com/lmeyrat/chime/internal/key"
)

type Prefs struct {
	// ReducedMotion asks hosts to skip non-essential animation.
	ReducedMotion bool `koanf:"reduced_motion"`

	Announce AnnouncePrefs `koanf:"announce"`
	Keyboard KeyboardPrefs `koanf:"keyboard"`
	Contrast ContrastPrefs `koanf:"contrast"`
}

// AnnouncePrefs tunes the announcement queue.
type AnnouncePrefs struct {
	DelayMs      int   `koanf:"delay_ms"`       // pre-delivery settle time (default: 100)
	ClearAfterMs int   `koanf:"clear_after_ms"` // live-region retention (default: 1000)
	Verbose      *bool `koanf:"verbose"`        // verbose announcements (default: true)
	Desktop      bool  `koanf:"desktop"`        // mirror to desktop notifications
}

// KeyboardPrefs tunes shortcut handling.
type KeyboardPrefs struct {
	Platform string `koanf:"platform"` // GOOS-style override, empty = detect
}

// ContrastPrefs sets the conformance target for theme auditing.
type ContrastPrefs struct {
	Level string `koanf:"level"` // "AA" or "AAA" (default: "AA")
	Size  string `koanf:"size"`  // "normal" or "large" (default: "normal")
}

// Load reads preference files in order of priority (last wins):
// ~/.config/chime/config.toml, then ./config.toml.
func Load() (*Prefs, error) {
	return load(configPaths())
}

// LoadFile reads preferences from an explicit path, for tooling flags.
func LoadFile(path string) (*Prefs, error) {
	return load([]string{path})
}

func load(paths []string) (*Prefs, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	p := &Prefs{}
	if err := k.Unmarshal("", p); err != nil {
		return nil, err
	}
	return p, nil
}

func configPaths() []string {
	paths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "chime", "config.toml"))
	}
	paths = append(paths, "config.toml")
	return paths
}

// AnnounceConfig returns announcer defaults with fallbacks applied.
func (p *Prefs) AnnounceConfig() announce.Config {
	cfg := announce.Config{
		DefaultDelay:      time.Duration(p.Announce.DelayMs) * time.Millisecond,
		DefaultClearAfter: time.Duration(p.Announce.ClearAfterMs) * time.Millisecond,
	}
	if p.Announce.DelayMs <= 0 {
		cfg.DefaultDelay = 100 * time.Millisecond
	}
	if p.Announce.ClearAfterMs <= 0 {
		cfg.DefaultClearAfter = time.Second
	}
	return cfg
}

// VerboseAnnouncements reports whether hosts should narrate secondary detail.
func (p *Prefs) VerboseAnnouncements() bool {
	if p.Announce.Verbose == nil {
		return true
	}
	return *p.Announce.Verbose
}

// Platform returns the keyboard platform, honoring the override.
func (p *Prefs) Platform() key.Platform {
	if p.Keyboard.Platform != "" {
		return key.PlatformFor(p.Keyboard.Platform)
	}
	return key.DetectPlatform()
}

// ContrastTarget returns the conformance level and size with defaults.
func (p *Prefs) ContrastTarget() (contrast.Level, contrast.Size) {
	level := contrast.Level(p.Contrast.Level)
	if level != contrast.LevelAA && level != contrast.LevelAAA {
		level = contrast.LevelAA
	}
	size := contrast.Size(p.Contrast.Size)
	if size != contrast.SizeNormal && size != contrast.SizeLarge {
		size = contrast.SizeNormal
	}
	return level, size
}
