package richtext

import (
	"strings"
	"sync"
	"testing"
)

var stripTests = []struct {
	name string
	in   string
	want string
}{
	{name: "no size", in: "just some text", want: "just some text"},
	{name: "open and close", in: "<size=999>BIG</size> text", want: "BIG text"},
	{name: "mixed case", in: "<SiZe=999>BIG</SIZE>", want: "BIG"},
	{name: "empty attribute", in: "<size=>x", want: "x"},
	{name: "percent attribute", in: "<size=500%>x</size>", want: "x"},
	{name: "unrelated word", in: "sizeable cat", want: "sizeable cat"},
	{name: "bare size tag is not a directive", in: "<size>x", want: "<size>x"},
	{name: "other directives kept", in: "<b><size=10><i>x</i></size></b>", want: "<b><i>x</i></b>"},
	{name: "directive in attribute debris", in: "<size=>color=red>>", want: "color=red>>"},
	{name: "attribute swallows tag start", in: "<size=<b>x", want: "x"},
	{name: "unterminated open", in: "<size=10 forever", want: "<size=10 forever"},
	{name: "spliced open", in: "<si<size=1>ze=9>x", want: "x"},
	{name: "spliced close", in: "</si</size>ze>x", want: "x"},
	{name: "close splices open", in: "<si</size>ze=9>x", want: "x"},
	{name: "long s is not s", in: "<\u017fize=9>x</\u017fize>", want: "<\u017fize=9>x</\u017fize>"},
	{name: "dotless i is not i", in: "<s\u0131ze=9>x", want: "<s\u0131ze=9>x"},
	{name: "long s next to real directive", in: "<\u017fize=1><SIZE=2>x", want: "<\u017fize=1>x"},
	{name: "empty", in: "", want: ""},
}

func TestStripSize(t *testing.T) {
	for _, tt := range stripTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := StripSize(tt.in); got != tt.want {
				t.Errorf("StripSize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandColour(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: ">color=red>Hello world", want: "<color=red>Hello</color> world"},
		{name: "hex with punctuation", in: ">color=#FF0000>Go!", want: "<color=#FF0000>Go!</color>"},
		{name: "global", in: ">color=red>a >color=blue>b", want: "<color=red>a</color> <color=blue>b</color>"},
		{name: "mid sentence", in: "this is >color=green>green, ok", want: "this is <color=green>green,</color> ok"},
		{name: "standard syntax untouched", in: "<color=red>Full Sentence</color>", want: "<color=red>Full Sentence</color>"},
		{name: "dangling marker", in: ">color=", want: ">color="},
		{name: "no word", in: ">color=red> word", want: ">color=red> word"},
		{name: "no word at end", in: "hi >color=red>", want: "hi >color=red>"},
		{name: "empty colour", in: ">color=>word", want: ">color=>word"},
		{name: "colour with spaces", in: ">color=light blue>sky", want: "<color=light blue>sky</color>"},
		{
			name: "adjacent tags take the leftmost match",
			in:   ">color=red>>color=blue>x",
			want: "<color=red>>color=blue>x</color>",
		},
		{name: "double separator", in: ">color=red>>x", want: "<color=red>>x</color>"},
		{name: "newline ends the word", in: ">color=red>a\nb", want: "<color=red>a</color>\nb"},
		{name: "dollar in word is literal", in: ">color=red>$1", want: "<color=red>$1</color>"},
		{name: "vertical tab ends the word", in: ">color=red>a\vb", want: "<color=red>a</color>\vb"},
		{name: "nbsp ends the word", in: ">color=red>Hello\u00a0world", want: "<color=red>Hello</color>\u00a0world"},
		{name: "em space ends the word", in: ">color=red>Hello\u2003world", want: "<color=red>Hello</color>\u2003world"},
		{name: "ideographic space ends the word", in: ">color=red>赤\u3000色", want: "<color=red>赤</color>\u3000色"},
		{name: "next line ends the word", in: ">color=red>a\u0085b", want: "<color=red>a</color>\u0085b"},
		{name: "line separator ends the word", in: ">color=red>a\u2028b", want: "<color=red>a</color>\u2028b"},
		{name: "unicode space before word", in: ">color=red>\u00a0word", want: ">color=red>\u00a0word"},
		{name: "zero width space is not whitespace", in: ">color=red>a\u200bb c", want: "<color=red>a\u200bb</color> c"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandColour(tt.in); got != tt.want {
				t.Errorf("ExpandColour() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandBold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: ">b>Loud message here", want: "<b>Loud</b> message here"},
		{name: "global", in: ">b>one and >b>two", want: "<b>one</b> and <b>two</b>"},
		{name: "standard syntax untouched", in: "<b>Loud message</b>", want: "<b>Loud message</b>"},
		{name: "dangling marker", in: "oops >b>", want: "oops >b>"},
		{name: "no word", in: ">b> word", want: ">b> word"},
		{name: "punctuation", in: ">b>WOW!!", want: "<b>WOW!!</b>"},
		{name: "vertical tab ends the word", in: ">b>a\vb c", want: "<b>a</b>\vb c"},
		{name: "nbsp ends the word", in: ">b>Loud\u00a0message", want: "<b>Loud</b>\u00a0message"},
		{name: "em space ends the word", in: ">b>Loud\u2003message", want: "<b>Loud</b>\u2003message"},
		{name: "ideographic space ends the word", in: ">b>Loud\u3000message", want: "<b>Loud</b>\u3000message"},
		{name: "unicode space before word", in: ">b>\u3000word", want: ">b>\u3000word"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandBold(tt.in); got != tt.want {
				t.Errorf("ExpandBold() = %q, want %q", got, tt.want)
			}
		})
	}
}

var transformTests = []struct {
	name string
	in   string
	want string
}{
	{name: "empty", in: "", want: ""},
	{name: "plain", in: "hello there", want: "hello there"},
	{name: "colour", in: ">color=red>Hello world", want: "<color=red>Hello</color> world"},
	{name: "bold", in: ">b>Loud message here", want: "<b>Loud</b> message here"},
	{name: "combined", in: ">color=red>RED >b>BOLD text", want: "<color=red>RED</color> <b>BOLD</b> text"},
	{name: "sizeable", in: "sizeable cat", want: "sizeable cat"},
	{name: "size stripped first", in: "<size=>color=red>>", want: "color=red>>"},
	{name: "size around shorthand", in: "<size=300>>color=red>big</size>", want: "<color=red>big</color>"},
	{
		name: "size inside word",
		in:   ">color=red>a<size=99>b >b>c</SIZE>d",
		want: "<color=red>ab</color> <b>cd</b>",
	},
	{name: "bold wraps colour", in: ">b>>color=red>x", want: "<b><color=red>x</color></b>"},
	{name: "colour word holding bold", in: ">color=red>a>b>c", want: "<color=red>a<b>c</color></b>"},
	{name: "standard passes", in: "<color=red>Full Sentence</color>", want: "<color=red>Full Sentence</color>"},
	{name: "nbsp phrase", in: ">color=red>Hello\u00a0world", want: "<color=red>Hello</color>\u00a0world"},
	{name: "ideographic space phrase", in: ">b>Loud\u3000message", want: "<b>Loud</b>\u3000message"},
}

func TestTransform(t *testing.T) {
	for _, tt := range transformTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Transform(tt.in); got != tt.want {
				t.Errorf("Transform() = %q, want %q", got, tt.want)
			}

			if got := (Transformer{}).Transform(tt.in); got != tt.want {
				t.Errorf("Transformer.Transform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformTwice(t *testing.T) {
	for _, tt := range transformTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			once := Transform(tt.in)
			if twice := Transform(once); twice != once {
				t.Errorf("Transform(Transform()) = %q, want %q", twice, once)
			}
		})
	}
}

func TestReplaceTags(t *testing.T) {
	ReplaceTags(nil) // must not panic

	empty := ""
	ReplaceTags(&empty)

	if empty != "" {
		t.Errorf("ReplaceTags(\"\") = %q, want \"\"", empty)
	}

	value := ">b>hi <size=9>there</size>"
	ReplaceTags(&value)

	if want := "<b>hi</b> there"; value != want {
		t.Errorf("ReplaceTags() = %q, want %q", value, want)
	}
}

func TestTransformConcurrent(t *testing.T) {
	wg := sync.WaitGroup{}

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for _, tt := range transformTests {
				if got := Transform(tt.in); got != tt.want {
					t.Errorf("Transform(%q) = %q, want %q", tt.in, got, tt.want)
				}
			}
		}()
	}

	wg.Wait()
}

func BenchmarkTransform(b *testing.B) {
	inputs := map[string]string{
		"plain":     "a perfectly normal chat message with nothing in it",
		"shorthand": ">color=red>RED >b>BOLD and >color=#00FF00>green! text",
		"size":      strings.Repeat("<size=9999>spam</size> ", 10),
	}

	for name, in := range inputs {
		in := in
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Transform(in)
			}
		})
	}
}
