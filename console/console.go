package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/treeharness/compare"
	"github.com/npillmayer/treeharness/render"
	"golang.org/x/term"
)

// ConfigFromTerminal is a simple helper for creating a render configuration.
// It checks whether stdin is a terminal, and if so it reads the terminal's
// size and sets the grid dimensions accordingly.
func ConfigFromTerminal() render.Config {
	config := render.DefaultConfig()
	if term.IsTerminal(0) {
		w, h, err := term.GetSize(0)
		if err == nil {
			if w > 20 {
				config.Columns = w
			}
			if h > 2*render.DefaultRows {
				config.Rows = h / 2
			}
		}
	}
	tracer().P("render", "console").Infof("setting grid to %d×%d", config.Rows, config.Columns)
	return config
}

// ColorEnabled reports whether stdout is a terminal accepting colours.
func ColorEnabled() bool {
	return !color.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
}

// Palette holds the colours used for console output.
type Palette struct {
	Good    *color.Color // identical verdicts, success markers
	Bad     *color.Color // different verdicts, error markers
	Warn    *color.Color // inconclusive verdicts, off-balance glyphs
	Heading *color.Color
}

// NewPalette creates the default palette. If enabled is false, the palette
// prints plain text.
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		Good:    color.New(color.FgGreen),
		Bad:     color.New(color.FgRed, color.Bold),
		Warn:    color.New(color.FgYellow),
		Heading: color.New(color.FgBlue, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.Good, p.Bad, p.Warn, p.Heading} {
			c.DisableColor()
		}
	}
	return p
}

// Title writes a heading line.
func (p *Palette) Title(w io.Writer, format string, args ...interface{}) {
	p.Heading.Fprintf(w, format, args...)
	io.WriteString(w, "\n")
}

// Verdict writes the outcome of a comparison, followed by the mismatch
// found, if any.
func (p *Palette) Verdict(w io.Writer, report compare.Report) {
	switch report.Verdict {
	case compare.Identical:
		p.Good.Fprintln(w, report.Verdict)
	case compare.Different:
		p.Bad.Fprintln(w, report.Verdict)
		if report.Mismatch != nil {
			fmt.Fprintln(w, report.Mismatch)
		}
	default:
		p.Warn.Fprintln(w, "error. Probably going to stack overflow")
	}
}

// Marker writes "success" or "error".
func (p *Palette) Marker(w io.Writer, ok bool) {
	if ok {
		p.Good.Fprintln(w, "success")
	} else {
		p.Bad.Fprintln(w, "error")
	}
}

// Grid writes a rendered tree, highlighting glyphs of nodes which are off
// balance.
func (p *Palette) Grid(w io.Writer, grid string) {
	r := strings.NewReplacer(
		"++", p.Warn.Sprint("++"),
		"--", p.Warn.Sprint("--"),
		"..", p.Bad.Sprint(".."),
	)
	r.WriteString(w, grid)
}
