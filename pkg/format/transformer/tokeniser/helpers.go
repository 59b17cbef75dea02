package tokeniser

import (
	"errors"
	"fmt"
	"image/color" //nolint:misspell // go devs cant spell colour
	"strconv"
	"strings"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/intermediate"
)

// Strip strips away all intermediate formatting
func Strip(in string) string {
	return Map(in, nil, nil)
}

// Escape escapes all sentinels in the passed string, making it safe to use as intermediate format text
func Escape(in string) string {
	return strings.ReplaceAll(in, intermediate.SentinelString, intermediate.SSentinelString)
}

const alpha = 0xFF

// ErrShortColour is returned by ParseColour when there are not enough characters to make up a colour
var ErrShortColour = errors.New("tokeniser: colour too short")

// ParseColour Converts the first six characters of a string from hex to a color.RGBA colour. Anything after the
// first six characters is ignored
func ParseColour(in string) (color.RGBA, error) {
	if len(in) < intermediate.ColourLen {
		return color.RGBA{}, ErrShortColour
	}

	var parts [3]uint8

	for i := range parts {
		res, err := strconv.ParseUint(in[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("tokeniser: bad colour %q: %w", in[:intermediate.ColourLen], err)
		}

		parts[i] = uint8(res)
	}

	return color.RGBA{R: parts[0], G: parts[1], B: parts[2], A: alpha}, nil
}

// EmitColour is the companion to ParseColour, it converts a color.Color to the intermediate representation for
// use in larger tooling
func EmitColour(in color.Color) string {
	return intermediate.SColourString + Hex(in)
}

// Hex returns the six character upper case hex form of the given colour, with any alpha ignored
func Hex(in color.Color) string {
	r, g, b, _ := in.RGBA()
	return fmt.Sprintf("%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func entryOrEmpty(r rune, mapping map[rune]string) string {
	if res, ok := mapping[r]; ok {
		return res
	}

	return ""
}

// Map maps a string containing intermediate formatting to the strings specified by the mapping arg. Its a helper method
// to easily implement simple swapping for a Transformer implementation. Colours are eaten if fn is nil
func Map(in string, mapping map[rune]string, fn func(color.Color) string) string {
	out := strings.Builder{}

	for _, tok := range Tokenise(in) {
		switch tok.Type {
		case StringToken:
			out.WriteString(tok.Text)
		case intermediate.Bold, intermediate.Italic, intermediate.Underline, intermediate.Strikethrough,
			intermediate.Reset:
			out.WriteString(entryOrEmpty(tok.Type, mapping))
		case intermediate.Colour:
			if fn == nil {
				continue
			}

			out.WriteString(fn(tok.Colour))
		}
	}

	return out.String()
}
