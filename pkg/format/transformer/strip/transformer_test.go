package strip

import "testing"

func TestTransformer(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		transform    string
		intermediate string
	}{
		{
			name:         "plain",
			in:           "plain text",
			transform:    "plain text",
			intermediate: "plain text",
		},
		{
			name:         "formatting",
			in:           "$bbold$b $cFF0000red$r",
			transform:    "bold red",
			intermediate: "$$bbold$$b $$cFF0000red$$r",
		},
		{
			name:         "irc codes",
			in:           "\x02bold\x02 \x0304red\x0f\x01",
			transform:    "\x02bold\x02 \x0304red\x0f\x01",
			intermediate: "bold red",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := (Transformer{}).Transform(tt.in); got != tt.transform {
				t.Errorf("Transform() = %q, want %q", got, tt.transform)
			}

			if got := (Transformer{}).MakeIntermediate(tt.in); got != tt.intermediate {
				t.Errorf("MakeIntermediate() = %q, want %q", got, tt.intermediate)
			}
		})
	}
}
