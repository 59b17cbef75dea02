package richtext

// Transform runs the passed string through all of the passes in this package, in order. Size directives are always
// stripped before any shorthand is expanded
func Transform(in string) string {
	if in == "" {
		return in
	}

	return ExpandBold(ExpandColour(StripSize(in)))
}

// ReplaceTags is Transform in a form suitable for use as a hook on text assignment. A nil pointer or an empty string
// are left alone
func ReplaceTags(value *string) {
	if value == nil || *value == "" {
		return
	}

	*value = Transform(*value)
}

// Transformer wraps Transform for use where a value with a Transform method is expected
type Transformer struct{}

// Transform implements the same operation as the package level Transform
func (Transformer) Transform(in string) string { return Transform(in) }
