package contrast

import (
	"fmt"

	"github.com/lmeyrat/chime/internal/errcode"
)

// Level is a WCAG conformance level.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Size is the text size class a color pair applies to.
type Size string

const (
	SizeNormal Size = "normal"
	SizeLarge  Size = "large"
)

// requiredRatios is the WCAG 1.4.3/1.4.6 minimum contrast table.
var requiredRatios = map[Level]map[Size]float64{
	LevelAA:  {SizeNormal: 4.5, SizeLarge: 3.0},
	LevelAAA: {SizeNormal: 7.0, SizeLarge: 4.5},
}

// Result is an immutable snapshot of one validation.
type Result struct {
	Foreground    RGB
	Background    RGB
	Ratio         float64
	RequiredRatio float64
	Level         Level
	Size          Size
	Passes        bool

	// Set only when the pair fails.
	Message             string
	Suggestion          string
	SuggestedForeground string // hex, "" when no compliant adjustment exists
	SuggestedBackground string // hex, "" when no compliant adjustment exists
	SuggestionDistance  float64
}

// RequiredRatio returns the minimum contrast ratio for a level and size.
func RequiredRatio(level Level, size Size) (float64, error) {
	sizes, ok := requiredRatios[level]
	if !ok {
		return 0, errcode.New(errcode.ValidationError, "unknown conformance level %q", level)
	}
	required, ok := sizes[size]
	if !ok {
		return 0, errcode.New(errcode.ValidationError, "unknown text size %q", size)
	}
	return required, nil
}

// Validate parses both colors, computes their contrast ratio and compares it
// against the required minimum. On failure the result carries a readable
// message, a directional suggestion, and searched replacement colors.
func Validate(fg, bg string, size Size, level Level) (*Result, error) {
	if size == "" {
		size = SizeNormal
	}
	if level == "" {
		level = LevelAA
	}

	fgColor, err := ParseColor(fg)
	if err != nil {
		return nil, err
	}
	bgColor, err := ParseColor(bg)
	if err != nil {
		return nil, err
	}

	required, err := RequiredRatio(level, size)
	if err != nil {
		return nil, err
	}

	ratio := Ratio(fgColor, bgColor)
	result := &Result{
		Foreground:    fgColor,
		Background:    bgColor,
		Ratio:         ratio,
		RequiredRatio: required,
		Level:         level,
		Size:          size,
		Passes:        ratio >= required,
	}

	if !result.Passes {
		result.Message = fmt.Sprintf(
			"contrast ratio %.2f:1 is below the %s requirement of %.1f:1 for %s text",
			ratio, level, required, size,
		)
		attachSuggestions(result)
	}

	return result, nil
}
