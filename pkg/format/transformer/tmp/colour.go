package tmp

import (
	"image/color" //nolint:misspell // no choice
	"strings"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tokeniser"
)

// The named colours understood by rich text surfaces
var namedColours = map[string]color.RGBA{
	"black":  {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	"blue":   {R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
	"green":  {R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
	"orange": {R: 0xFF, G: 0x80, B: 0x00, A: 0xFF},
	"purple": {R: 0xA0, G: 0x20, B: 0xF0, A: 0xFF},
	"red":    {R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	"white":  {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	"yellow": {R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
}

// ParseColour parses a colour tag value. Values may be quoted, and are either one of the named colours or a hex
// colour in the form #RGB, #RGBA, #RRGGBB or #RRGGBBAA. Alpha is accepted but discarded
func ParseColour(in string) (color.RGBA, bool) {
	in = strings.Trim(strings.TrimSpace(in), `"'`)

	if !strings.HasPrefix(in, "#") {
		c, ok := namedColours[strings.ToLower(in)]
		return c, ok
	}

	hex := in[1:]

	switch len(hex) {
	case 3, 4:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
		hex = hex[:6]
	default:
		return color.RGBA{}, false
	}

	c, err := tokeniser.ParseColour(hex)
	if err != nil {
		return color.RGBA{}, false
	}

	return c, true
}
