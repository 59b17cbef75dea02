// Package terminal implements a one way Transformer that renders the intermediate format as ANSI styled text,
// using lipgloss. What is actually emitted depends on the colour profile of the lipgloss renderer in use
package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tokeniser"
)

// Transformer renders intermediate formatted text for a terminal
type Transformer struct {
	renderer *lipgloss.Renderer
}

// New creates a Transformer that renders with the given lipgloss renderer. If renderer is nil, lipgloss's default
// renderer is used
func New(renderer *lipgloss.Renderer) *Transformer {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	return &Transformer{renderer: renderer}
}

// Transform implements the Transformer interface
func (t *Transformer) Transform(in string) string {
	var (
		out   strings.Builder
		style tokeniser.Style
	)

	for _, tok := range tokeniser.Tokenise(in) {
		if style.Apply(tok) {
			continue
		}

		if style.IsZero() {
			out.WriteString(tok.Text)
			continue
		}

		out.WriteString(t.style(style).Render(tok.Text))
	}

	return out.String()
}

func (t *Transformer) style(s tokeniser.Style) lipgloss.Style {
	out := t.renderer.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		Strikethrough(s.Strikethrough)

	if s.Colour != nil {
		out = out.Foreground(lipgloss.Color("#" + tokeniser.Hex(s.Colour)))
	}

	return out
}

// MakeIntermediate implements the Transformer interface. ANSI styling is not converted back, it is simply removed
func (t *Transformer) MakeIntermediate(in string) string {
	return tokeniser.Escape(ansi.Strip(in))
}
