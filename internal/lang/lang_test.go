package lang

import "testing"

func TestRules_KnownLanguages(t *testing.T) {
	t.Parallel()

	if got := Rules("it"); got.Name != "Italian" {
		t.Errorf("Rules(it).Name = %q, want Italian", got.Name)
	}
	if got := Rules("es"); got.Name != "Spanish" {
		t.Errorf("Rules(es).Name = %q, want Spanish", got.Name)
	}
}

func TestRules_UnknownLanguageFallsBack(t *testing.T) {
	t.Parallel()

	got := Rules("fi")
	if got.Code != "fi" {
		t.Errorf("Rules(fi).Code = %q, want fi", got.Code)
	}
	if len(got.FunctionWords) != 0 {
		t.Errorf("generic rule set should carry no function words, got %d", len(got.FunctionWords))
	}
	if got.HasContentSuffix("anything") {
		t.Error("generic rule set should match no content suffixes")
	}
}

func TestRuleset_IsFunctionWord(t *testing.T) {
	t.Parallel()

	tr, ok := Italian.IsFunctionWord("il")
	if !ok || tr != "the" {
		t.Errorf("IsFunctionWord(il) = %q, %v; want the, true", tr, ok)
	}
	if _, ok := Italian.IsFunctionWord("gelato"); ok {
		t.Error("gelato must not be a function word")
	}
}

func TestRuleset_HasContentSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want bool
	}{
		{"mangiare", true},   // verb -are
		{"tradizione", true}, // noun -zione
		{"famoso", true},     // adjective -oso
		{"sole", false},
		{"are", false}, // suffix must not swallow the whole word
	}
	for _, tt := range tests {
		if got := Italian.HasContentSuffix(tt.word); got != tt.want {
			t.Errorf("HasContentSuffix(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestRuleset_Pluralize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word    string
		want    string
		matched bool
	}{
		{"gelato", "gelati", true},
		{"casa", "case", true},
		{"stagione", "stagioni", true},
		{"bar", "bar", false},
	}
	for _, tt := range tests {
		got, ok := Italian.Pluralize(tt.word)
		if got != tt.want || ok != tt.matched {
			t.Errorf("Pluralize(%q) = %q, %v; want %q, %v", tt.word, got, ok, tt.want, tt.matched)
		}
	}
}
