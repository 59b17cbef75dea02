// Package tmp implements a Transformer for TextMeshPro style rich text, the format produced by the richtext package.
//
// Only the tags that have an equivalent in the intermediate format are understood, those being <b>, <i>, <u>, <s>
// and <color=...>, along with their closing tags. Every other tag is left as is.
package tmp

import (
	"strings"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/intermediate"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tokeniser"
)

const (
	tagOpen     = '<'
	tagClose    = '>'
	tagEnd      = "/"
	colourTag   = "color"
	colourAttr  = colourTag + "="
	closeColour = "</" + colourTag + ">"
)

// Transformer converts between rich text and the intermediate format
type Transformer struct{}

// Transform implements the Transformer interface. Every tag that is opened is closed again by the end of the string
func (Transformer) Transform(in string) string {
	var (
		out   strings.Builder
		style tokeniser.Style
	)

	for _, tok := range tokeniser.Tokenise(in) {
		switch tok.Type {
		case tokeniser.StringToken:
			out.WriteString(tok.Text)
		case intermediate.Colour:
			if style.Colour != nil {
				out.WriteString(closeColour)
			}

			style.Apply(tok)
			out.WriteString("<" + colourAttr + "#" + tokeniser.Hex(tok.Colour) + ">")
		case intermediate.Reset:
			closeAll(&out, style)
			style.Apply(tok)
		default:
			style.Apply(tok)
			out.WriteString(toggleTag(tok.Type, style))
		}
	}

	closeAll(&out, style)

	return out.String()
}

var toggleNames = map[rune]string{
	intermediate.Bold:          "b",
	intermediate.Italic:        "i",
	intermediate.Underline:     "u",
	intermediate.Strikethrough: "s",
}

func isOn(r rune, s tokeniser.Style) bool {
	switch r {
	case intermediate.Bold:
		return s.Bold
	case intermediate.Italic:
		return s.Italic
	case intermediate.Underline:
		return s.Underline
	case intermediate.Strikethrough:
		return s.Strikethrough
	}

	return false
}

func toggleTag(r rune, s tokeniser.Style) string {
	if isOn(r, s) {
		return "<" + toggleNames[r] + ">"
	}

	return "</" + toggleNames[r] + ">"
}

// closeAll closes everything open in s, innermost first
func closeAll(out *strings.Builder, s tokeniser.Style) {
	if s.Colour != nil {
		out.WriteString(closeColour)
	}

	for i := len(toggleOrder) - 1; i >= 0; i-- {
		if isOn(toggleOrder[i], s) {
			out.WriteString("</" + toggleNames[toggleOrder[i]] + ">")
		}
	}
}

// MakeIntermediate implements the Transformer interface. Unknown tags, colour tags with a colour that cannot be
// parsed, and any '<' that does not start a tag are kept as text. Closing tags with no matching open tag are dropped
func (Transformer) MakeIntermediate(in string) string {
	p := &parser{}

	for len(in) > 0 {
		start := strings.IndexByte(in, tagOpen)
		if start == -1 {
			p.text(in)
			break
		}

		p.text(in[:start])
		in = in[start:]

		end := strings.IndexByte(in, tagClose)
		if end == -1 {
			p.text(in)
			break
		}

		if !p.tag(in[1:end]) {
			// There may be a real tag starting after this one
			p.text(in[:1])
			in = in[1:]

			continue
		}

		in = in[end+1:]
	}

	return p.out.String()
}

var toggleOrder = [...]rune{intermediate.Bold, intermediate.Italic, intermediate.Underline, intermediate.Strikethrough}

type parser struct {
	out     strings.Builder
	depth   map[rune]int
	colours []string // intermediate colour codes, innermost last
}

func (p *parser) text(s string) {
	p.out.WriteString(tokeniser.Escape(s))
}

func (p *parser) emit(r rune) {
	p.out.WriteRune(intermediate.Sentinel)
	p.out.WriteRune(r)
}

// tag handles the body of a single tag, and returns whether or not it was understood
func (p *parser) tag(body string) bool {
	lower := strings.ToLower(body)
	closing := strings.HasPrefix(lower, tagEnd)
	name := strings.TrimPrefix(lower, tagEnd)

	for _, r := range toggleOrder {
		if name == toggleNames[r] {
			p.toggle(r, closing)
			return true
		}
	}

	switch {
	case closing && name == colourTag:
		p.popColour()
		return true

	case !closing && strings.HasPrefix(name, colourAttr):
		c, ok := ParseColour(body[strings.IndexByte(body, '=')+1:])
		if !ok {
			return false
		}

		code := tokeniser.EmitColour(c)
		p.colours = append(p.colours, code)
		p.out.WriteString(code)

		return true
	}

	return false
}

// toggle tracks how deeply a toggle is nested, the intermediate format only needs to see the outermost pair
func (p *parser) toggle(r rune, closing bool) {
	if p.depth == nil {
		p.depth = make(map[rune]int)
	}

	switch {
	case closing && p.depth[r] == 0:
		return
	case closing:
		p.depth[r]--
		if p.depth[r] == 0 {
			p.emit(r)
		}
	default:
		p.depth[r]++
		if p.depth[r] == 1 {
			p.emit(r)
		}
	}
}

func (p *parser) popColour() {
	if len(p.colours) == 0 {
		return
	}

	p.colours = p.colours[:len(p.colours)-1]
	if len(p.colours) > 0 {
		p.out.WriteString(p.colours[len(p.colours)-1])
		return
	}

	// The intermediate format has no way to end just a colour, reset everything and start the toggles again
	p.emit(intermediate.Reset)

	for _, r := range toggleOrder {
		if p.depth[r] > 0 {
			p.emit(r)
		}
	}
}
