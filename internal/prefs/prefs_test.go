package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lmeyrat/chime/internal/contrast"
)

func TestDefaultsApplied(t *testing.T) {
	p := &Prefs{}

	cfg := p.AnnounceConfig()
	if cfg.DefaultDelay != 100*time.Millisecond {
		t.Errorf("default delay = %v, want 100ms", cfg.DefaultDelay)
	}
	if cfg.DefaultClearAfter != time.Second {
		t.Errorf("default clear-after = %v, want 1s", cfg.DefaultClearAfter)
	}
	if !p.VerboseAnnouncements() {
		t.Error("verbose announcements should default to true")
	}

	level, size := p.ContrastTarget()
	if level != contrast.LevelAA || size != contrast.SizeNormal {
		t.Errorf("contrast target = %s/%s, want AA/normal", level, size)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
reduced_motion = true

[announce]
delay_ms = 150
verbose = false

[keyboard]
platform = "darwin"

[contrast]
level = "AAA"
size = "large"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	if !p.ReducedMotion {
		t.Error("reduced_motion should be true")
	}
	if got := p.AnnounceConfig().DefaultDelay; got != 150*time.Millisecond {
		t.Errorf("delay = %v, want 150ms", got)
	}
	if p.VerboseAnnouncements() {
		t.Error("verbose should be false")
	}
	if !p.Platform().IsMac() {
		t.Error("platform override should be darwin")
	}
	level, size := p.ContrastTarget()
	if level != contrast.LevelAAA || size != contrast.SizeLarge {
		t.Errorf("contrast target = %s/%s, want AAA/large", level, size)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	p, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if p.ReducedMotion {
		t.Error("missing file should yield zero-value prefs")
	}
}

func TestInvalidContrastValuesFallBack(t *testing.T) {
	p := &Prefs{Contrast: ContrastPrefs{Level: "AAAA", Size: "huge"}}
	level, size := p.ContrastTarget()
	if level != contrast.LevelAA || size != contrast.SizeNormal {
		t.Errorf("contrast target = %s/%s, want AA/normal", level, size)
	}
}
