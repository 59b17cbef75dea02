// Package richtext sanitises and expands user supplied rich text before it reaches a rich text surface.
//
// Three passes are applied, always in this order:
//  1. size directives (<size=...> and </size>, in any ASCII case) are removed entirely
//  2. >color=X>word becomes <color=X>word</color>
//  3. >b>word becomes <b>word</b>
//
// Shorthand tags only ever cover a single word, that is, one run of non whitespace characters. Anything longer
// should use the standard syntax, for example <color=red>Full Sentence</color>, which is passed through untouched.
//
// Nothing here holds state, all functions are safe for concurrent use.
package richtext
