package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	Wild Color = iota
	Green
	Yellow
	Red
	Blue
)

// Standard lists the colors a player may name for a wild card.
var Standard = []Color{Green, Yellow, Red, Blue}

type painter struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var painters = map[Color]painter{
	Wild:   {name: "WILD", colorFunction: color.New(color.FgHiWhite).SprintfFunc()},
	Green:  {name: "GREEN", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Yellow: {name: "YELLOW", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Red:    {name: "RED", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Blue:   {name: "BLUE", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
}

var Stdout io.Writer = color.Output

// SetEnabled switches terminal escape codes on or off for every painter.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

func Enabled() bool {
	return !color.NoColor
}

func (c Color) Name() string {
	p, ok := painters[c]
	if !ok {
		return fmt.Sprintf("COLOR(%d)", int(c))
	}
	return p.name
}

func (c Color) Standard() bool {
	return c >= Green && c <= Blue
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	p, ok := painters[c]
	if !ok || c == Wild {
		return fmt.Sprintf(format, args...)
	}
	return p.colorFunction(format, args...) + fmt.Sprintf("(%s)", p.name)
}

func (c Color) String() string {
	p, ok := painters[c]
	if !ok {
		return c.Name()
	}
	return p.colorFunction(p.name)
}

// ByName accepts a standard color name or its first letter, in any case.
func ByName(name string) (Color, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name != "" {
		for _, c := range Standard {
			full := c.Name()
			if name == full || name == full[:1] {
				return c, nil
			}
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
