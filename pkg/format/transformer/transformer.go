package transformer

import (
	"errors"
	"fmt"
	"sort"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/html"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/irc"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/simple"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/strip"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/terminal"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tmp"
)

// Transformer refers to a string transformer. String Transformers convert messages from an intermediate format
// to a protocol specific format
type Transformer interface {
	// Transform takes a string in the intermediate format and converts it to its specific format.
	// When the implementation of Transformer does not support a given format type, it can either eat it entirely, or
	// use a pure ascii notation to indicate that it was there. For example: strike though could be replaced with ~~
	Transform(in string) string
	// MakeIntermediate takes a string in a Transformer specific format and converts it to the Intermediate format.
	// Any existing sentinels in the string SHOULD be escaped
	MakeIntermediate(in string) string
}

// ErrUnknownTransformer is returned by Get when asked for a name it does not know
var ErrUnknownTransformer = errors.New("transformer: unknown transformer")

var transformers = map[string]func() Transformer{
	"tmp":      func() Transformer { return tmp.Transformer{} },
	"irc":      func() Transformer { return irc.Transformer{} },
	"markdown": func() Transformer { return simple.Markdown() },
	"terminal": func() Transformer { return terminal.New(nil) },
	"html":     func() Transformer { return html.Transformer{} },
	"strip":    func() Transformer { return strip.Transformer{} },
}

// Get returns a new instance of the Transformer registered under the given name
func Get(name string) (Transformer, error) {
	f, ok := transformers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTransformer, name)
	}

	return f(), nil
}

// Names returns the names of all available Transformers, sorted
func Names() []string {
	out := make([]string, 0, len(transformers))
	for name := range transformers {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
