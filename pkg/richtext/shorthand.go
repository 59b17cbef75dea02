package richtext

import (
	"regexp"
	"strings"
)

// Shorthand markers. Both are followed directly by the word they apply to
const (
	ColourMarker = ">color="
	BoldMarker   = ">b>"
)

// word is a run of anything but whitespace. \S alone only excludes ASCII spaces, so vertical tab, NEL and the
// Unicode space separators are listed too
const word = `([^\s\v\x{85}\p{Z}]+)`

var (
	// [^>]+ stops at the first >, so the colour spec is always the shortest possible one
	colourRe = regexp.MustCompile(`>color=([^>]+)>` + word)
	boldRe   = regexp.MustCompile(`>b>` + word)
)

const (
	colourReplacement = "<color=${1}>${2}</color>"
	boldReplacement   = "<b>${1}</b>"
)

// ExpandColour rewrites every >color=SPEC>word in the passed string to <color=SPEC>word</color>. word is everything up
// to the next whitespace of any kind, including any punctuation
func ExpandColour(in string) string {
	if !strings.Contains(in, ColourMarker) {
		return in
	}

	return colourRe.ReplaceAllString(in, colourReplacement)
}

// ExpandBold rewrites every >b>word in the passed string to <b>word</b>
func ExpandBold(in string) string {
	if !strings.Contains(in, BoldMarker) {
		return in
	}

	return boldRe.ReplaceAllString(in, boldReplacement)
}
