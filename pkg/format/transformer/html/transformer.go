// Package html implements a Transformer that renders the intermediate format as a HTML fragment. All output is run
// through a bluemonday policy that only permits the elements this package emits
package html

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tokeniser"
)

var (
	hexColourRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

	// outputPolicy permits exactly what Transform can produce
	outputPolicy = func() *bluemonday.Policy {
		p := bluemonday.NewPolicy()
		p.AllowElements("b", "i", "u", "s", "span")
		p.AllowStyles("color").Matching(hexColourRe).OnElements("span")

		return p
	}()

	stripPolicy = bluemonday.StrictPolicy()
)

// Transformer converts between HTML and the intermediate format
type Transformer struct{}

// Transform implements the Transformer interface. Each run of text is wrapped in its own set of elements, so the
// output is always balanced
func (Transformer) Transform(in string) string {
	var (
		out   strings.Builder
		style tokeniser.Style
	)

	for _, tok := range tokeniser.Tokenise(in) {
		if style.Apply(tok) {
			continue
		}

		open, closing := elements(style)
		out.WriteString(open)
		out.WriteString(html.EscapeString(tok.Text))
		out.WriteString(closing)
	}

	return outputPolicy.Sanitize(out.String())
}

func elements(s tokeniser.Style) (open, closing string) {
	var o, c []string

	add := func(on bool, openTag, closeTag string) {
		if on {
			o = append(o, openTag)
			c = append([]string{closeTag}, c...)
		}
	}

	add(s.Bold, "<b>", "</b>")
	add(s.Italic, "<i>", "</i>")
	add(s.Underline, "<u>", "</u>")
	add(s.Strikethrough, "<s>", "</s>")

	if s.Colour != nil {
		add(true, `<span style="color: #`+tokeniser.Hex(s.Colour)+`">`, "</span>")
	}

	return strings.Join(o, ""), strings.Join(c, "")
}

// MakeIntermediate implements the Transformer interface. All markup is removed, leaving only the text
func (Transformer) MakeIntermediate(in string) string {
	return tokeniser.Escape(html.UnescapeString(stripPolicy.Sanitize(in)))
}
