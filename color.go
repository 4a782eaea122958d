package lantern

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// DefaultColorName is used whenever a level has no color entry or the
// configured name is not recognized. Unknown names never fail setup.
const DefaultColorName = "white"

var colorAttrs = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,

	"bright_black":   color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
}

// colorAttr resolves a symbolic color name, falling back to white.
func colorAttr(name string) color.Attribute {
	if attr, ok := colorAttrs[strings.ToLower(name)]; ok {
		return attr
	}
	return colorAttrs[DefaultColorName]
}

// ColorSetting is one resolved (level, color name) pair as handed to Setup.
type ColorSetting struct {
	Level Level
	Color string
}

// levelColors is the per-sink renderer for level labels. Each sink gets its
// own instance so color can be forced on for terminals and off for files
// regardless of the process-global color detection.
type levelColors struct {
	byLevel [levelMaxForChecksOnly]*color.Color
}

// resolveColors builds a renderer from (level, name) pairs. Later pairs for
// the same level win. Levels without a pair render with the default color.
func resolveColors(settings []ColorSetting, colored bool) *levelColors {
	lc := &levelColors{}
	for i := range lc.byLevel {
		lc.byLevel[i] = newColor(DefaultColorName, colored)
	}
	for _, s := range settings {
		lc.byLevel[normLevel(s.Level)] = newColor(s.Color, colored)
	}
	return lc
}

func newColor(name string, colored bool) *color.Color {
	c := color.New(colorAttr(name))
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// render returns the level label left-aligned to width 5, colorized when
// the sink supports it. Padding is applied before colorizing so the escape
// sequences do not disturb the column layout.
func (lc *levelColors) render(l Level) string {
	l = normLevel(l)
	return lc.byLevel[l].Sprint(fmt.Sprintf("%-5s", l.String()))
}
