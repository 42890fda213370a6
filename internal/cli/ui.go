package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/blockrender/pkg/pipeline"
)

var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorCmd    = lipgloss.Color("75")
	colorText   = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

// Styles shared by the listing and inspect views.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorFaint)
	StyleValue     = lipgloss.NewStyle().Foreground(colorText)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorAccent)
)

var (
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand = lipgloss.NewStyle().Foreground(colorCmd)
	styleLabel   = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

// mark prefixes a console line.
type mark struct {
	glyph string
	style lipgloss.Style
}

var (
	markOK   = mark{"✓", lipgloss.NewStyle().Foreground(colorOK)}
	markWarn = mark{"!", lipgloss.NewStyle().Foreground(colorWarn)}
	markNote = mark{"›", lipgloss.NewStyle().Foreground(colorMuted)}
)

// console writes command results for people. Diagnostics belong on the
// logger.
type console struct {
	w io.Writer
}

func newConsole(w io.Writer) *console { return &console{w: w} }

func (c *console) line(m mark, format string, args ...any) {
	fmt.Fprintln(c.w, m.style.Render(m.glyph)+" "+fmt.Sprintf(format, args...))
}

func (c *console) ok(format string, args ...any)   { c.line(markOK, format, args...) }
func (c *console) note(format string, args ...any) { c.line(markNote, format, args...) }

func (c *console) warn(format string, args ...any) {
	fmt.Fprintln(c.w, markWarn.style.Render(markWarn.glyph)+" "+
		lipgloss.NewStyle().Foreground(colorWarn).Render(fmt.Sprintf(format, args...)))
}

func (c *console) detail(format string, args ...any) {
	fmt.Fprintln(c.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// artifact lists one written file and its size.
func (c *console) artifact(path string, size int) {
	fmt.Fprintln(c.w, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path)+" "+StyleDim.Render(humanBytes(size)))
}

func (c *console) field(key, value string) {
	fmt.Fprintln(c.w, styleLabel.Render(key)+" "+StyleValue.Render(value))
}

func (c *console) hint(desc, cmd string) {
	fmt.Fprintln(c.w, StyleDim.Render(desc+":")+" "+styleCommand.Render(cmd))
}

// summary prints the shape of a fresh render and its stage timings. A
// cache hit skips parse and layout, so there is nothing to report but the
// hit itself.
func (c *console) summary(res *pipeline.Result) {
	if res.CacheInfo.RenderHit {
		fmt.Fprintln(c.w, "  "+lipgloss.NewStyle().Foreground(colorOK).Render("cached"))
		return
	}
	parts := []string{
		plural(res.Stats.BlockCount, "block"),
		plural(res.Stats.StackCount, "stack"),
	}
	if res.Scene != nil {
		parts = append(parts, fmt.Sprintf("%.0f×%.0f px", res.Scene.Width, res.Scene.Height))
	}
	parts = append(parts, "fresh")
	fmt.Fprintln(c.w, "  "+joinDim(parts))
	fmt.Fprintln(c.w, "  "+joinDim([]string{
		"parse " + roundMillis(res.Stats.ParseTime),
		"layout " + roundMillis(res.Stats.LayoutTime),
		"render " + roundMillis(res.Stats.RenderTime),
	}))
}

func joinDim(parts []string) string {
	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func humanBytes(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KiB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1024*1024))
	}
}

func roundMillis(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
