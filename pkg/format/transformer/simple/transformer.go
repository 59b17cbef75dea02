// Package simple implements a Transformer that does plain string replacement, configured from TOML
package simple

import (
	"fmt"
	"image/color" //nolint:misspell // I dont control others' package names
	"sort"
	"strings"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/intermediate"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tokeniser"
)

// Conf holds the replacements for each formatting code. Colours maps a hex colour, with or without a leading #, to
// its replacement
type Conf struct {
	Bold          string            `toml:"bold"`
	Italic        string            `toml:"italic"`
	Underline     string            `toml:"underline"`
	Strikethrough string            `toml:"strikethrough"`
	Reset         string            `toml:"reset"`
	Colours       map[string]string `toml:"colours"`
}

// MakeMaps creates a replace and colour map based on the given config
func (c *Conf) MakeMaps() (replaceMap map[rune]string, colourMap map[color.Color]string, err error) {
	replaceMap = map[rune]string{
		intermediate.Bold:          c.Bold,
		intermediate.Italic:        c.Italic,
		intermediate.Underline:     c.Underline,
		intermediate.Strikethrough: c.Strikethrough,
		intermediate.Reset:         c.Reset,
	}

	colourMap = make(map[color.Color]string, len(c.Colours))

	for hex, mapped := range c.Colours {
		col, err := tokeniser.ParseColour(strings.TrimPrefix(hex, "#"))
		if err != nil {
			return nil, nil, fmt.Errorf("simple: colour %q: %w", hex, err)
		}

		colourMap[col] = mapped
	}

	return replaceMap, colourMap, nil
}

// FromConf creates a Transformer from c
func FromConf(c *Conf) (*Transformer, error) {
	replaceMap, colourMap, err := c.MakeMaps()
	if err != nil {
		return nil, err
	}

	return New(replaceMap, colourMap), nil
}

// Markdown returns a Transformer using the markdown style emphasis understood by most chat platforms. Colours are
// dropped
func Markdown() *Transformer {
	return New(map[rune]string{
		intermediate.Bold:          "**",
		intermediate.Italic:        "*",
		intermediate.Underline:     "__",
		intermediate.Strikethrough: "~~",
	}, nil)
}

// Transformer is a Transformer implementation that does basic replacement based transformation.
// Colours are handled by way of a palette and a map to transform colours in that palette to the transformer specific
// format
type Transformer struct {
	rplMap   map[rune]string
	palette  color.Palette
	colMap   map[color.Color]string
	replacer *strings.Replacer
}

// New constructs a Transformer from the given args. A colour palette will be automatically
// created from the colour map passed.
func New(replaceMap map[rune]string, colourMap map[color.Color]string) *Transformer {
	var (
		palette color.Palette
		repl    []string
	)

	for col, v := range colourMap {
		palette = append(palette, col)

		if v != "" {
			repl = append(repl, v, tokeniser.EmitColour(col))
		}
	}

	for k, v := range replaceMap {
		if v != "" {
			repl = append(repl, v, intermediate.SentinelString+string(k))
		}
	}

	// strings.Replacer prefers earlier pairs when two match at the same place. Longer replacements go first so that
	// "**" is never read as two "*"
	pairs := make([][2]string, 0, len(repl)/2)
	for i := 0; i < len(repl); i += 2 {
		pairs = append(pairs, [2]string{repl[i], repl[i+1]})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if len(pairs[i][0]) != len(pairs[j][0]) {
			return len(pairs[i][0]) > len(pairs[j][0])
		}

		return pairs[i][0] < pairs[j][0]
	})

	repl = repl[:0]
	for _, p := range pairs {
		repl = append(repl, p[0], p[1])
	}

	repl = append(repl, intermediate.SentinelString, intermediate.SSentinelString)

	return &Transformer{
		rplMap:   replaceMap,
		palette:  palette,
		colMap:   colourMap,
		replacer: strings.NewReplacer(repl...), // the repl slice is reversed from the maps, this way it does an inverse
	}
}

// Transform implements the Transformer interface. Applies the simple conversions setup in the constructor
func (s *Transformer) Transform(in string) string {
	return tokeniser.Map(in, s.rplMap, s.colourFn)
}

func (s *Transformer) colourFn(in color.Color) string {
	if len(s.palette) == 0 {
		return ""
	}

	return s.colMap[s.palette.Convert(in)]
}

// MakeIntermediate uses a simple replace operation to convert from a transformer specific implementation to the
// intermediate format
func (s *Transformer) MakeIntermediate(in string) string {
	return s.replacer.Replace(in)
}
