// Command contrast-audit checks color pairs against WCAG contrast targets.
//
// With two arguments it validates a single foreground/background pair:
//
//	contrast-audit "#777777" "#808080"
//
// Without arguments it audits every pairing of the built-in theme. The
// conformance target comes from the preferences file or the -level and
// -size flags.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmeyrat/chime/internal/contrast"
	"github.com/lmeyrat/chime/internal/prefs"
	"github.com/lmeyrat/chime/internal/ui/styles"
)

var (
	passMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#42b883")).Render("PASS")
	failMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")).Bold(true).Render("FAIL")
	dim      = lipgloss.NewStyle().Faint(true)
)

func main() {
	configPath := flag.String("config", "", "preferences file (TOML)")
	levelFlag := flag.String("level", "", `conformance level: "AA" or "AAA"`)
	sizeFlag := flag.String("size", "", `text size: "normal" or "large"`)
	flag.Parse()

	level, size, err := target(*configPath, *levelFlag, *sizeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch flag.NArg() {
	case 0:
		if !auditTheme(level) {
			os.Exit(1)
		}
	case 2:
		result, err := contrast.Validate(flag.Arg(0), flag.Arg(1), size, level)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printResult(flag.Arg(0), result)
		if !result.Passes {
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: contrast-audit [flags] [FOREGROUND BACKGROUND]")
		os.Exit(2)
	}
}

// target resolves the conformance target: preferences first, flags win.
func target(configPath, levelFlag, sizeFlag string) (contrast.Level, contrast.Size, error) {
	var p *prefs.Prefs
	var err error
	if configPath != "" {
		p, err = prefs.LoadFile(configPath)
	} else {
		p, err = prefs.Load()
	}
	if err != nil {
		return "", "", fmt.Errorf("loading preferences: %w", err)
	}

	level, size := p.ContrastTarget()
	if levelFlag != "" {
		level = contrast.Level(levelFlag)
		if level != contrast.LevelAA && level != contrast.LevelAAA {
			return "", "", fmt.Errorf("unknown level %q", levelFlag)
		}
	}
	if sizeFlag != "" {
		size = contrast.Size(sizeFlag)
		if size != contrast.SizeNormal && size != contrast.SizeLarge {
			return "", "", fmt.Errorf("unknown size %q", sizeFlag)
		}
	}
	return level, size, nil
}

func auditTheme(level contrast.Level) bool {
	entries := styles.T().Audit(level)

	ok := true
	for _, e := range entries {
		printResult(e.Pair.Name, e.Result)
		if !e.Result.Passes {
			ok = false
		}
	}

	fmt.Println()
	if ok {
		fmt.Printf("%s  all %d pairs meet WCAG %s\n", passMark, len(entries), level)
	} else {
		fmt.Printf("%s  some pairs fall short of WCAG %s\n", failMark, level)
	}
	return ok
}

func printResult(name string, r *contrast.Result) {
	fmt.Print(formatResult(name, r))
}

func formatResult(name string, r *contrast.Result) string {
	mark := passMark
	if !r.Passes {
		mark = failMark
	}

	fg := contrast.ToHex(r.Foreground)
	bg := contrast.ToHex(r.Background)
	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Render(" Aa ")

	out := fmt.Sprintf("%s %s %-16s %s on %s  %.2f:1 (needs %.1f:1, %s %s)\n",
		mark, swatch, name,
		fg, bg,
		r.Ratio, r.RequiredRatio, r.Level, r.Size)

	if r.Passes {
		return out
	}
	if r.SuggestedForeground != "" || r.SuggestedBackground != "" {
		out += fmt.Sprintf("     %s\n", dim.Render(r.Suggestion))
		if r.SuggestedForeground != "" {
			out += fmt.Sprintf("     %s\n", dim.Render("foreground → "+r.SuggestedForeground))
		}
		if r.SuggestedBackground != "" {
			out += fmt.Sprintf("     %s\n", dim.Render("background → "+r.SuggestedBackground))
		}
	} else {
		out += fmt.Sprintf("     %s\n", dim.Render("no single-channel adjustment reaches the target"))
	}
	return out
}
