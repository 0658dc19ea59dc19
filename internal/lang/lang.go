// Package lang holds per-language lexical rule sets used by the priority
// filter and the heuristic enrichment engine. Rule sets are data, not code:
// adding a language means adding a table, not a new engine.
package lang

import "github.com/capisco/capisco-backend/internal/domain"

// SuffixNote pairs a derivational suffix with its etymology note.
type SuffixNote struct {
	Suffix string
	Note   string
}

// PluralRule rewrites a singular ending into its plural form.
// Rules are tried in order; the first matching suffix wins.
type PluralRule struct {
	SingularSuffix string
	PluralSuffix   string
}

// Ruleset describes the lexical knowledge for one source language.
type Ruleset struct {
	Code string
	Name string

	// FunctionWords maps closed-class words to fixed translations.
	// Words in this set never consume an external enrichment call.
	FunctionWords map[string]string

	VerbSuffixes      []string
	NounSuffixes      []SuffixNote
	AdjectiveSuffixes []string

	// Gendered reports whether the language assigns grammatical gender
	// by word shape (-o masculine, -a feminine).
	Gendered bool
	// MasculineAExceptions lists -a words that are nonetheless masculine.
	MasculineAExceptions map[string]bool

	PluralRules []PluralRule

	// FallbackExpressions is used when external expression extraction fails.
	FallbackExpressions []domain.Expression
}

// IsFunctionWord reports whether the word belongs to the closed
// function-word set, and returns its fixed translation.
func (r Ruleset) IsFunctionWord(word string) (string, bool) {
	tr, ok := r.FunctionWords[word]
	return tr, ok
}

// HasContentSuffix reports whether the word ends in any derivational
// suffix (verb, noun, or adjective) tracked for this language.
func (r Ruleset) HasContentSuffix(word string) bool {
	for _, s := range r.VerbSuffixes {
		if hasSuffix(word, s) {
			return true
		}
	}
	for _, s := range r.NounSuffixes {
		if hasSuffix(word, s.Suffix) {
			return true
		}
	}
	for _, s := range r.AdjectiveSuffixes {
		if hasSuffix(word, s) {
			return true
		}
	}
	return false
}

// Pluralize applies the first matching plural rule. The second return
// value is false when no rule matches (invariable word).
func (r Ruleset) Pluralize(word string) (string, bool) {
	for _, rule := range r.PluralRules {
		if hasSuffix(word, rule.SingularSuffix) {
			return word[:len(word)-len(rule.SingularSuffix)] + rule.PluralSuffix, true
		}
	}
	return word, false
}

// hasSuffix is strings.HasSuffix with a guard against the suffix
// swallowing the entire word.
func hasSuffix(word, suffix string) bool {
	return len(word) > len(suffix) && word[len(word)-len(suffix):] == suffix
}

var registry = map[string]Ruleset{
	"it": Italian,
	"es": Spanish,
}

// Rules returns the rule set for a language code, falling back to a
// generic rule set for unsupported languages. It never fails.
func Rules(code string) Ruleset {
	if r, ok := registry[code]; ok {
		return r
	}
	g := Generic
	if code != "" {
		g.Code = code
		g.Name = code
	}
	return g
}

// Generic is the rule set applied when no language-specific table exists.
// It carries no lexical knowledge, so every generator in the heuristic
// engine takes its default branch.
var Generic = Ruleset{
	Code:          "und",
	Name:          "the source language",
	FunctionWords: map[string]string{},
}
