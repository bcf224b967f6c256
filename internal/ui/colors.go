package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/tubestuff/internal/resolver"
)

// Default is the palette for interactive terminals.
var Default = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// Plain renders every style as unstyled text.
var Plain = &Palette{plain: true}

// Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
	plain bool
}

// NewPalette builds a palette from title, success, error, warning and help colors.
func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).
			Border(lipgloss.DoubleBorder(), true, false).
			BorderForeground(lipgloss.Color(t)),
		ok:   NewBold(s),
		err:  NewBold(e),
		warn: NewStyle(w),
		help: NewEm(h),
	}
}

func (p *Palette) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

// Header renders a section title framed by horizontal rules.
func (p *Palette) Header(title string) string {
	if p.plain {
		rule := strings.Repeat("=", max(len(title), 8))
		return rule + "\n" + title + "\n" + rule
	}
	return p.title.Render(title)
}

func (p *Palette) OK(text string) string   { return p.render(p.ok, text) }
func (p *Palette) Err(text string) string  { return p.render(p.err, text) }
func (p *Palette) Warn(text string) string { return p.render(p.warn, text) }
func (p *Palette) Help(text string) string { return p.render(p.help, text) }

// Kind colors a reference kind: channels and videos as success, unknown as a warning.
func (p *Palette) Kind(k resolver.Kind) string {
	if k == resolver.Unknown {
		return p.Warn(k.String())
	}
	return p.OK(k.String())
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
