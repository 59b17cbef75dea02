package irc

import (
	"testing"
)

var intermedTests = []struct {
	name string
	in   string
	want string
}{
	{
		name: "bolded chars",
		in:   "this\x02 is a test with bolds\x02",
		want: "this$b is a test with bolds$b",
	},
	{
		name: "other toggles",
		in:   "\x1ditalic\x1d \x1funder\x1f\x0f",
		want: "$iitalic$i $uunder$u$r",
	},
	{
		name: "colour",
		in:   "\x0304red\x0f text",
		want: "$cFF0000red$r text",
	},
	{
		name: "fg and bg",
		in:   "this \x0301,00 is \x0302,01 a test",
		want: "this $c000000 is $c00007F a test",
	},
	{
		name: "bare colour code dropped",
		in:   "this\x03 is",
		want: "this is",
	},
	{
		name: "sentinels escaped",
		in:   "it costs $5",
		want: "it costs $$5",
	},
	{
		name: "unknown control codes dropped",
		in:   "a\x11b\x16c",
		want: "abc",
	},
}

func TestTransformer_MakeIntermediate(t *testing.T) {
	for _, tt := range intermedTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := (Transformer{}).MakeIntermediate(tt.in); got != tt.want {
				t.Errorf("MakeIntermediate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformer_Transform(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "nothing special", want: "nothing special"},
		{name: "bold", in: "this $bis$b bold", want: "this \x02is\x02 bold"},
		{name: "toggles", in: "$s$u$i$r", want: "\x1e\x1f\x1d\x0f"},
		{name: "exact colour", in: "$cFF0000red", want: "\x0304red"},
		{name: "digit after colour", in: "$c00FC001st", want: "\x03091st"},
		{name: "coerced colour", in: "$cFE0101near red", want: "\x0304near red"},
		{name: "escaped sentinel", in: "$$5", want: "$5"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := (Transformer{}).Transform(tt.in); got != tt.want {
				t.Errorf("Transform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChainTransformer(t *testing.T) {
	for _, tt := range intermedTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			chained := tt.in
			ir := Transformer{}

			for i := 0; i < 20; i++ {
				chained = ir.MakeIntermediate(ir.Transform(ir.MakeIntermediate(chained)))
				chained = ir.Transform(chained)
			}

			if got := ir.MakeIntermediate(chained); got != tt.want {
				t.Errorf("Chained transformer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformer_MakeIntermediateWhitespace(t *testing.T) {
	if got, want := (Transformer{}).MakeIntermediate("a\tb\r\nc"), "a\tb\r\nc"; got != want {
		t.Errorf("MakeIntermediate() = %q, want %q", got, want)
	}
}
