package util

import (
	"strings"

	"github.com/goshuirc/irc-go/ircfmt"
)

// CleanSplitOnSpace splits the given string on space specifically without adding empty strings to the resulting array for
// repeated spaces
func CleanSplitOnSpace(s string) []string {
	split := strings.Split(s, " ")

	var out []string

	for _, v := range split {
		if len(v) == 0 {
			continue
		}

		out = append(out, v)
	}

	return out
}

const zwsp = '\u200b'

// StripAll strips both IRC control codes and any extra weird ascii control codes
func StripAll(s string) string {
	s = ircfmt.Strip(s)

	return strings.Map(func(r rune) rune {
		if r < ' ' || r == zwsp {
			return -1
		}

		return r
	}, s)
}
