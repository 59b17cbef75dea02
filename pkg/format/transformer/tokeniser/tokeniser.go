package tokeniser

import (
	"image/color" //nolint:misspell // go devs cant spell colour
	"strings"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/intermediate"
)

// StringToken is the Type given to Token instances holding raw text
const StringToken = -1

// Token represents a single chunk of intermediate format information
type Token struct {
	Type   rune        // StringToken, or one of the format runes in the intermediate package
	Colour color.Color // Set only for intermediate.Colour tokens
	Text   string      // Set only for StringToken tokens, with any escaped sentinels unescaped
}

// Tokenise turns an input string containing intermediate format codes and returns a slice of Tokens representing
// the data given. Sentinels that do not start a valid code are kept as text, as are colour codes with a bad colour.
// Runs of text are always merged into a single token
func Tokenise(in string) []Token {
	var (
		out []Token
		buf strings.Builder
	)

	flush := func() {
		if buf.Len() > 0 {
			out = append(out, Token{Type: StringToken, Text: buf.String()})
			buf.Reset()
		}
	}

	for i := 0; i < len(in); i++ {
		if in[i] != intermediate.Sentinel || i+1 == len(in) {
			buf.WriteByte(in[i])
			continue
		}

		switch next := in[i+1]; next {
		case intermediate.Sentinel:
			buf.WriteByte(intermediate.Sentinel)
			i++

		case intermediate.Bold, intermediate.Italic, intermediate.Underline, intermediate.Strikethrough,
			intermediate.Reset:
			flush()
			out = append(out, Token{Type: rune(next)})
			i++

		case intermediate.Colour:
			col, err := ParseColour(in[i+2:])
			if err != nil {
				buf.WriteString(intermediate.SColourString)
				i++

				continue
			}

			flush()
			out = append(out, Token{Type: intermediate.Colour, Colour: col})
			i += 1 + intermediate.ColourLen

		default:
			// Not a code, the following byte is handled on the next iteration
			buf.WriteByte(in[i])
		}
	}

	flush()

	return out
}

// Style tracks the formatting in effect at a given point in an intermediate string
type Style struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Colour        color.Color
}

// Apply updates the Style to reflect the given Token, and returns whether or not the Token was a formatting Token
func (s *Style) Apply(tok Token) bool {
	switch tok.Type {
	case intermediate.Bold:
		s.Bold = !s.Bold
	case intermediate.Italic:
		s.Italic = !s.Italic
	case intermediate.Underline:
		s.Underline = !s.Underline
	case intermediate.Strikethrough:
		s.Strikethrough = !s.Strikethrough
	case intermediate.Colour:
		s.Colour = tok.Colour
	case intermediate.Reset:
		*s = Style{}
	default:
		return false
	}

	return true
}

// IsZero returns whether or not the Style has no formatting at all
func (s Style) IsZero() bool {
	return s == Style{}
}
