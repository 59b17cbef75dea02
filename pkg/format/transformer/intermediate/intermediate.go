// Package intermediate holds the constants that make up the intermediate format. See the transformer package for
// a description of the format itself
package intermediate

// All of the formats specified in the transformer package are available here. It is expected that implementations
// use this wherever possible to allow for changes
const (
	Sentinel      = '$'
	Bold          = 'b'
	Italic        = 'i'
	Underline     = 'u'
	Strikethrough = 's'
	Reset         = 'r'
	Colour        = 'c'
)

// String versions of the above, for use with the strings package
const (
	SentinelString  = string(Sentinel)
	SSentinelString = SentinelString + SentinelString
	SColourString   = SentinelString + string(Colour)
)

// ColourLen is the number of hex characters that follow SColourString
const ColourLen = 6
