package contrast

import (
	"math"
	"testing"

	"github.com/lmeyrat/chime/internal/errcode"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{"named black", "black", RGB{0, 0, 0}, false},
		{"named white uppercase", "WHITE", RGB{255, 255, 255}, false},
		{"named with spaces", "  teal ", RGB{0, 128, 128}, false},
		{"six digit hex", "#1a2b3c", RGB{26, 43, 60}, false},
		{"six digit hex uppercase", "#FFFFFF", RGB{255, 255, 255}, false},
		{"three digit hex", "#abc", RGB{170, 187, 204}, false},
		{"rgb functional", "rgb(10, 20, 30)", RGB{10, 20, 30}, false},
		{"rgba functional", "rgba(255, 0, 0, 0.5)", RGB{255, 0, 0}, false},
		{"rgb no spaces", "rgb(1,2,3)", RGB{1, 2, 3}, false},
		{"empty", "", RGB{}, true},
		{"unknown name", "mauve-ish", RGB{}, true},
		{"bad hex length", "#abcd", RGB{}, true},
		{"bad hex chars", "#gggggg", RGB{}, true},
		{"channel above range", "rgb(256, 0, 0)", RGB{}, true},
		{"negative channel", "rgb(-1, 0, 0)", RGB{}, true},
		{"missing paren", "rgb(1, 2, 3", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) succeeded, want error", tt.input)
				}
				if !errcode.Is(err, errcode.InvalidColor) {
					t.Errorf("ParseColor(%q) error code = %q, want INVALID_COLOR", tt.input, errcode.CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLuminanceExtremes(t *testing.T) {
	ClearCache()

	if l := Luminance(RGB{0, 0, 0}); l != 0 {
		t.Errorf("black luminance = %v, want 0", l)
	}
	if l := Luminance(RGB{255, 255, 255}); math.Abs(l-1.0) > 1e-9 {
		t.Errorf("white luminance = %v, want 1", l)
	}
}

func TestRatioMaxAndSymmetry(t *testing.T) {
	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}

	if r := Ratio(black, white); math.Abs(r-21.0) > 1e-9 {
		t.Errorf("black/white ratio = %v, want 21", r)
	}

	a := RGB{120, 30, 200}
	b := RGB{240, 240, 10}
	if Ratio(a, b) != Ratio(b, a) {
		t.Errorf("ratio is not symmetric: %v vs %v", Ratio(a, b), Ratio(b, a))
	}
}

func TestLuminanceCache(t *testing.T) {
	ClearCache()

	c := RGB{12, 34, 56}
	Luminance(c)
	Luminance(c)

	stats := Stats()
	if stats.Size != 1 {
		t.Errorf("cache size = %d, want 1", stats.Size)
	}
	if stats.Misses != 1 || stats.Hits != 1 {
		t.Errorf("cache hits/misses = %d/%d, want 1/1", stats.Hits, stats.Misses)
	}

	ClearCache()
	if s := Stats(); s.Size != 0 || s.Hits != 0 || s.Misses != 0 {
		t.Errorf("cache not reset: %+v", s)
	}
}

func TestRequiredRatioTable(t *testing.T) {
	tests := []struct {
		level Level
		size  Size
		want  float64
	}{
		{LevelAA, SizeNormal, 4.5},
		{LevelAA, SizeLarge, 3.0},
		{LevelAAA, SizeNormal, 7.0},
		{LevelAAA, SizeLarge, 4.5},
	}

	for _, tt := range tests {
		got, err := RequiredRatio(tt.level, tt.size)
		if err != nil {
			t.Fatalf("RequiredRatio(%s, %s) error: %v", tt.level, tt.size, err)
		}
		if got != tt.want {
			t.Errorf("RequiredRatio(%s, %s) = %v, want %v", tt.level, tt.size, got, tt.want)
		}
	}

	if _, err := RequiredRatio("AAAA", SizeNormal); !errcode.Is(err, errcode.ValidationError) {
		t.Errorf("unknown level error code = %q, want VALIDATION_ERROR", errcode.CodeOf(err))
	}
}

func TestValidatePassing(t *testing.T) {
	result, err := Validate("#000000", "#FFFFFF", SizeNormal, LevelAAA)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Passes {
		t.Error("black on white should pass AAA")
	}
	if result.Message != "" || result.SuggestedForeground != "" {
		t.Error("passing result should carry no failure details")
	}
}

func TestValidateFailingWithSuggestions(t *testing.T) {
	result, err := Validate("#777777", "#808080", SizeNormal, LevelAA)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	if result.Passes {
		t.Fatal("near-identical grays should fail AA normal")
	}
	if result.RequiredRatio != 4.5 {
		t.Errorf("required ratio = %v, want 4.5", result.RequiredRatio)
	}
	if result.Message == "" {
		t.Error("failing result must carry a message")
	}
	if result.SuggestedForeground == "" && result.SuggestedBackground == "" {
		t.Fatal("failing result must carry at least one suggested color")
	}

	// Suggested colors must actually comply against the fixed partner.
	if result.SuggestedForeground != "" {
		fg, err := ParseColor(result.SuggestedForeground)
		if err != nil {
			t.Fatalf("suggested foreground unparseable: %v", err)
		}
		if r := Ratio(fg, result.Background); r < 4.5 {
			t.Errorf("suggested foreground ratio = %v, want >= 4.5", r)
		}
	}
	if result.SuggestedBackground != "" {
		bg, err := ParseColor(result.SuggestedBackground)
		if err != nil {
			t.Fatalf("suggested background unparseable: %v", err)
		}
		if r := Ratio(result.Foreground, bg); r < 4.5 {
			t.Errorf("suggested background ratio = %v, want >= 4.5", r)
		}
	}
}

func TestValidateDefaults(t *testing.T) {
	result, err := Validate("black", "white", "", "")
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Level != LevelAA || result.Size != SizeNormal {
		t.Errorf("defaults = %s/%s, want AA/normal", result.Level, result.Size)
	}
}

func TestValidateInvalidColor(t *testing.T) {
	if _, err := Validate("nope", "white", SizeNormal, LevelAA); !errcode.Is(err, errcode.InvalidColor) {
		t.Errorf("error code = %q, want INVALID_COLOR", errcode.CodeOf(err))
	}
}

func TestToHexRoundTrip(t *testing.T) {
	c := RGB{26, 43, 60}
	parsed, err := ParseColor(ToHex(c))
	if err != nil {
		t.Fatalf("ParseColor(ToHex) error: %v", err)
	}
	if parsed != c {
		t.Errorf("round trip = %v, want %v", parsed, c)
	}
}

func TestBrightness(t *testing.T) {
	if !IsLight(RGB{255, 255, 255}) {
		t.Error("white should be light")
	}
	if IsLight(RGB{0, 0, 0}) {
		t.Error("black should not be light")
	}
	if b := Brightness(RGB{255, 255, 255}); math.Abs(b-255) > 1e-9 {
		t.Errorf("white brightness = %v, want 255", b)
	}
}
