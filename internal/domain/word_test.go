package domain

import "testing"

func TestWordKey_NormalizesWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "lowercase passthrough", word: "gelato", want: "gelato|it|en"},
		{name: "casing folded", word: "Gelato", want: "gelato|it|en"},
		{name: "whitespace trimmed", word: "  gelato ", want: "gelato|it|en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WordKey(tt.word, "it", "en"); got != tt.want {
				t.Errorf("WordKey(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestWordKey_LanguagePairSeparatesEntries(t *testing.T) {
	t.Parallel()

	if WordKey("gelato", "it", "en") == WordKey("gelato", "it", "es") {
		t.Error("different target languages must produce different keys")
	}
}
