package richtext

import (
	"regexp"
)

// size matches the directive name in any ASCII case. (?i) would also fold U+017F to s, which no renderer reads
// as part of a size tag
const size = `[sS][iI][zZ][eE]`

var (
	sizeTokenRe = regexp.MustCompile(size)
	sizeOpenRe  = regexp.MustCompile(`<` + size + `=[^>]*>`)
	sizeCloseRe = regexp.MustCompile(`</` + size + `>`)
)

// StripSize removes all size directives from the given string. Opening directives are matched in any ASCII case
// along with whatever attribute value they carry, closing directives are matched in any ASCII case. Nothing else
// in the string is touched.
//
// Removing a directive can join the text around it into a new one (<si<size=1>ze=9>), so removal is repeated until
// the string stops changing.
func StripSize(in string) string {
	for sizeTokenRe.MatchString(in) {
		out := sizeCloseRe.ReplaceAllLiteralString(sizeOpenRe.ReplaceAllLiteralString(in, ""), "")
		if len(out) == len(in) {
			break
		}

		in = out
	}

	return in
}
