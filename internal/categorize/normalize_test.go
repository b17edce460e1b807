package categorize

import "testing"

func TestNormalize(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "amazon order suffix", in: "AMAZON.COM*RT4K29XYZ", want: "Amazon"},
		{name: "amazon marketplace", in: "AMZN MKTP US", want: "Amazon US"},
		{name: "walmart hyphenated", in: "WAL-MART SUPER CENTER", want: "Walmart"},
		{name: "toast prefix stripped", in: "TST* JOES DINER", want: "JOES DINER"},
		{name: "square prefix stripped", in: "SQ* CORNER BAKERY", want: "CORNER BAKERY"},
		{name: "card network affixes stripped", in: "DEBIT CARD GROCERY MART PURCHASE", want: "GROCERY MART"},
		{name: "store number stripped", in: "TARGET #1234", want: "TARGET"},
		{name: "trailing digits stripped", in: "SHELL OIL 5742", want: "SHELL OIL"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
