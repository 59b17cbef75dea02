// Package strip implements a Transformer that removes all formatting
package strip

import (
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tokeniser"
	"awesome-dragon.science/go/colourEnabler/pkg/util"
)

// Transformer is a simple transformer that simply removes all formatting it sees
type Transformer struct{}

// Transform strips all intermediate formatting codes from the passed string
func (Transformer) Transform(in string) string { return tokeniser.Strip(in) }

// MakeIntermediate strips IRC formatting and other control codes from the passed string, and escapes any sentinels
func (Transformer) MakeIntermediate(in string) string { return tokeniser.Escape(util.StripAll(in)) }
