// Package irc implements a Transformer for mIRC style formatting codes
package irc

import (
	"fmt"
	"image/color" //nolint:misspell // no choice
	"strconv"
	"strings"

	"github.com/goshuirc/irc-go/ircfmt"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/intermediate"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tokeniser"
)

const (
	bold          = '\x02'
	colour        = '\x03'
	italic        = '\x1d'
	strikethrough = '\x1e'
	underline     = '\x1f'
	reset         = '\x0f'
)

var (
	white      = color.RGBA{A: 255, R: 255, G: 255, B: 255}
	black      = color.RGBA{A: 255, R: 0, G: 0, B: 0}
	blue       = color.RGBA{A: 255, R: 0, G: 0, B: 127}
	green      = color.RGBA{A: 255, R: 0, G: 147, B: 0}
	lightRed   = color.RGBA{A: 255, R: 255, G: 0, B: 0}
	brown      = color.RGBA{A: 255, R: 127, G: 0, B: 0}
	purple     = color.RGBA{A: 255, R: 156, G: 0, B: 156}
	orange     = color.RGBA{A: 255, R: 252, G: 127, B: 0}
	yellow     = color.RGBA{A: 255, R: 255, G: 255, B: 0}
	lightGreen = color.RGBA{A: 255, R: 0, G: 252, B: 0}
	cyan       = color.RGBA{A: 255, R: 0, G: 147, B: 147}
	lightCyan  = color.RGBA{A: 255, R: 0, G: 255, B: 255}
	lightBlue  = color.RGBA{A: 255, R: 0, G: 0, B: 252}
	pink       = color.RGBA{A: 255, R: 255, G: 0, B: 255}
	grey       = color.RGBA{A: 255, R: 127, G: 127, B: 127}
	lightGrey  = color.RGBA{A: 255, R: 210, G: 210, B: 210}
)

// palette is in mIRC colour code order
var palette = color.Palette{
	white, black, blue, green, lightRed, brown, purple, orange, yellow,
	lightGreen, cyan, lightCyan, lightBlue, pink, grey, lightGrey,
}

// colourNames maps the names ircfmt uses in its escapes, plus some common spellings, to the palette
var colourNames = map[string]color.Color{
	"white": white, "black": black, "blue": blue, "navy": blue, "green": green, "red": lightRed,
	"light red": lightRed, "brown": brown, "maroon": brown, "magenta": purple, "purple": purple,
	"orange": orange, "yellow": yellow, "light green": lightGreen, "lime": lightGreen, "cyan": cyan,
	"teal": cyan, "light cyan": lightCyan, "aqua": lightCyan, "light blue": lightBlue, "royal": lightBlue,
	"pink": pink, "light purple": pink, "fuchsia": pink, "grey": grey, "gray": grey,
	"light grey": lightGrey, "light gray": lightGrey, "silver": lightGrey,
}

var fmtMapping = map[rune]string{
	intermediate.Bold:          string(bold),
	intermediate.Italic:        string(italic),
	intermediate.Underline:     string(underline),
	intermediate.Strikethrough: string(strikethrough),
	intermediate.Reset:         string(reset),
}

// Transformer converts between IRC formatting codes and the intermediate format. Colours are coerced into the
// 16 colour mIRC palette
type Transformer struct{}

// Transform implements the Transformer interface. Colour codes are always two digits, so that text starting with a
// digit is not eaten
func (Transformer) Transform(in string) string {
	return tokeniser.Map(in, fmtMapping, func(c color.Color) string {
		return fmt.Sprintf("%c%02d", colour, palette.Index(c))
	})
}

// MakeIntermediate implements the Transformer interface. Background colours, monospace and reverse are dropped, as
// the intermediate format has no way to represent them
func (Transformer) MakeIntermediate(in string) string {
	// ircfmt escapes use the same sentinel and letters as the intermediate format, with sentinels already doubled
	escaped := ircfmt.Escape(in)
	out := strings.Builder{}

	for i := 0; i < len(escaped); i++ {
		switch c := escaped[i]; {
		case c == strikethrough:
			out.WriteString(intermediate.SentinelString + string(intermediate.Strikethrough))
		case c < ' ' && c != '\t' && c != '\n' && c != '\r':
			// anything ircfmt did not know about
		case c != intermediate.Sentinel || i+1 == len(escaped):
			out.WriteByte(c)
		default:
			i++
			i += writeEscape(&out, escaped[i:])
		}
	}

	return out.String()
}

// writeEscape converts a single ircfmt escape, minus its sentinel, and returns the number of extra bytes consumed
func writeEscape(out *strings.Builder, esc string) int {
	switch esc[0] {
	case intermediate.Sentinel, intermediate.Bold, intermediate.Italic, intermediate.Underline,
		intermediate.Strikethrough, intermediate.Reset:
		out.WriteByte(intermediate.Sentinel)
		out.WriteByte(esc[0])

		return 0

	case intermediate.Colour:
		if len(esc) < 2 || esc[1] != '[' {
			return 0
		}

		end := strings.IndexByte(esc, ']')
		if end == -1 {
			return 0
		}

		if c := lookupColour(esc[2:end]); c != nil {
			out.WriteString(tokeniser.EmitColour(c))
		}

		return end
	}

	// monospace, reverse, and anything newer than us
	return 0
}

// lookupColour finds the foreground colour in an ircfmt colour spec, which is either a name or a number
func lookupColour(spec string) color.Color {
	fg := strings.TrimSpace(strings.SplitN(spec, ",", 2)[0])
	if c, ok := colourNames[strings.ToLower(fg)]; ok {
		return c
	}

	if n, err := strconv.Atoi(fg); err == nil && n >= 0 && n < len(palette) {
		return palette[n]
	}

	return nil
}
