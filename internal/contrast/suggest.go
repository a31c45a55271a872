package contrast

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// attachSuggestions fills the directional hint and the searched replacement
// colors on a failed result.
//
// The search is a bounded linear walk: step every channel of the adjusted
// color by ±1..255 (clamped) and return the first step whose ratio against
// the fixed partner reaches the requirement. Deterministic and intentionally
// simple rather than perceptually optimal.
func attachSuggestions(r *Result) {
	darkenFirst := Brightness(r.Foreground) <= Brightness(r.Background)
	if darkenFirst {
		r.Suggestion = "darken the foreground or lighten the background"
	} else {
		r.Suggestion = "lighten the foreground or darken the background"
	}

	if fg, ok := searchAdjustment(r.Foreground, r.Background, r.RequiredRatio, darkenFirst); ok {
		r.SuggestedForeground = ToHex(fg)
		r.SuggestionDistance = labDistance(r.Foreground, fg)
	}
	if bg, ok := searchAdjustment(r.Background, r.Foreground, r.RequiredRatio, !darkenFirst); ok {
		r.SuggestedBackground = ToHex(bg)
	}
}

// searchAdjustment walks the target away from its current value, preferred
// direction first, until the ratio against the fixed color reaches required.
// Returns false when no step in either direction complies.
func searchAdjustment(target, fixed RGB, required float64, darkenFirst bool) (RGB, bool) {
	directions := []int{-1, 1}
	if !darkenFirst {
		directions = []int{1, -1}
	}

	for _, dir := range directions {
		for step := 1; step <= 255; step++ {
			candidate := shift(target, dir*step)
			if Ratio(candidate, fixed) >= required {
				return candidate, true
			}
		}
	}
	return RGB{}, false
}

// shift moves every channel by delta, clamped to [0, 255].
func shift(c RGB, delta int) RGB {
	return RGB{
		R: clampChannel(int(c.R) + delta),
		G: clampChannel(int(c.G) + delta),
		B: clampChannel(int(c.B) + delta),
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// labDistance reports how far the suggestion moved in CIE Lab space, for
// tooling output. Not used by the search itself.
func labDistance(a, b RGB) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	d := ca.DistanceLab(cb)
	if math.IsNaN(d) {
		return 0
	}
	return d
}
