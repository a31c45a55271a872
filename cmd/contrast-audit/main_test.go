package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lmeyrat/chime/internal/contrast"
)

func TestFormatResultShowsHexPair(t *testing.T) {
	r, err := contrast.Validate("#000000", "#FFFFFF", contrast.SizeNormal, contrast.LevelAA)
	if err != nil {
		t.Fatal(err)
	}

	out := formatResult("base text", r)
	for _, want := range []string{"#000000", "#FFFFFF", "21.00:1", "base text"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestFormatResultIncludesSuggestions(t *testing.T) {
	r, err := contrast.Validate("#777777", "#808080", contrast.SizeNormal, contrast.LevelAA)
	if err != nil {
		t.Fatal(err)
	}
	if r.Passes {
		t.Fatal("pair should fail AA")
	}

	out := formatResult("low contrast", r)
	if r.SuggestedForeground != "" && !strings.Contains(out, r.SuggestedForeground) {
		t.Errorf("output %q missing suggested foreground %s", out, r.SuggestedForeground)
	}
	if r.SuggestedBackground != "" && !strings.Contains(out, r.SuggestedBackground) {
		t.Errorf("output %q missing suggested background %s", out, r.SuggestedBackground)
	}
}

func TestTargetFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[contrast]\nlevel = \"AA\"\nsize = \"normal\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	level, size, err := target(path, "AAA", "large")
	if err != nil {
		t.Fatal(err)
	}
	if level != contrast.LevelAAA || size != contrast.SizeLarge {
		t.Errorf("got %s/%s, want AAA/large", level, size)
	}

	if _, _, err := target(path, "AAAA", ""); err == nil {
		t.Error("unknown level should be rejected")
	}
}
