// Package heuristic generates enrichment fields from word shape alone.
// It is the universal fallback when external enrichment fails or returns
// partial data, and the short-circuit for grammatical function words.
// Every generator is total and deterministic given (word, source language).
package heuristic

import (
	"strings"

	"github.com/capisco/capisco-backend/internal/domain"
	"github.com/capisco/capisco-backend/internal/lang"
)

// Engine produces rule-based enrichment for one source language.
type Engine struct {
	rules lang.Ruleset
}

// NewEngine creates an Engine bound to a language rule set.
func NewEngine(rules lang.Ruleset) *Engine {
	return &Engine{rules: rules}
}

// IsFunctionWord reports whether the word should skip external
// enrichment entirely.
func (e *Engine) IsFunctionWord(word string) bool {
	_, ok := e.rules.IsFunctionWord(strings.ToLower(word))
	return ok
}

// Translation guesses a translation. Function words use the fixed table;
// verbs get a "to <stem>" hint; everything else is labeled with its
// source language.
func (e *Engine) Translation(word string) string {
	word = strings.ToLower(word)
	if tr, ok := e.rules.IsFunctionWord(word); ok {
		return tr
	}
	for _, s := range e.rules.VerbSuffixes {
		if matchSuffix(word, s) {
			return "to " + word[:len(word)-len(s)]
		}
	}
	return word + " (" + e.rules.Name + " word)"
}

// PartOfSpeech classifies the word by suffix, defaulting to noun.
func (e *Engine) PartOfSpeech(word string) domain.PartOfSpeech {
	word = strings.ToLower(word)
	if _, ok := e.rules.IsFunctionWord(word); ok {
		return domain.PartOfSpeechFunctionWord
	}
	for _, s := range e.rules.VerbSuffixes {
		if matchSuffix(word, s) {
			return domain.PartOfSpeechVerb
		}
	}
	for _, s := range e.rules.NounSuffixes {
		if matchSuffix(word, s.Suffix) {
			return domain.PartOfSpeechNoun
		}
	}
	for _, s := range e.rules.AdjectiveSuffixes {
		if matchSuffix(word, s) {
			return domain.PartOfSpeechAdjective
		}
	}
	return domain.PartOfSpeechNoun
}

// Gender derives grammatical gender from the final vowel in gendered
// languages, honoring the masculine -a exception list.
func (e *Engine) Gender(word string) domain.Gender {
	word = strings.ToLower(word)
	if !e.rules.Gendered {
		return domain.GenderNone
	}
	if e.rules.MasculineAExceptions[word] {
		return domain.GenderMasculine
	}
	switch {
	case strings.HasSuffix(word, "o"):
		return domain.GenderMasculine
	case strings.HasSuffix(word, "a"):
		return domain.GenderFeminine
	}
	return domain.GenderNone
}

// Plural applies the language's suffix-substitution rules; words with no
// matching rule are treated as invariable.
func (e *Engine) Plural(word string) string {
	plural, _ := e.rules.Pluralize(strings.ToLower(word))
	return plural
}

// Pronunciation builds a stress-marked syllable breakdown, e.g.
// "gelato" -> "ge-LA-to". The penultimate syllable carries the stress.
func (e *Engine) Pronunciation(word string) string {
	word = strings.ToLower(word)
	syllables := syllabify(word)
	if len(syllables) == 0 {
		return word
	}
	if len(syllables) == 1 {
		return strings.ToUpper(syllables[0])
	}
	stressed := len(syllables) - 2
	parts := make([]string, len(syllables))
	for i, s := range syllables {
		if i == stressed {
			parts[i] = strings.ToUpper(s)
		} else {
			parts[i] = s
		}
	}
	return strings.Join(parts, "-")
}

// Etymology returns a suffix-specific note when the word carries a known
// derivational suffix, otherwise a generic origin line.
func (e *Engine) Etymology(word string) string {
	word = strings.ToLower(word)
	for _, s := range e.rules.NounSuffixes {
		if matchSuffix(word, s.Suffix) {
			return s.Note
		}
	}
	for _, s := range e.rules.VerbSuffixes {
		if matchSuffix(word, s) {
			return "regular -" + s + " verb of " + e.rules.Name + " origin"
		}
	}
	return e.rules.Name + " origin"
}

// Usage returns a one-line usage note.
func (e *Engine) Usage(word string) string {
	pos := e.PartOfSpeech(word)
	if pos == domain.PartOfSpeechFunctionWord {
		return "grammatical function word in " + e.rules.Name
	}
	return pos.String() + " in " + e.rules.Name
}

// CulturalNote returns a one-line cultural context note.
func (e *Engine) CulturalNote(word string) string {
	return "Common " + e.PartOfSpeech(word).String() + " in the " + e.rules.Name + " language"
}

// Enrich produces a fully populated EnrichedWord from a candidate using
// heuristics only.
func (e *Engine) Enrich(c domain.CandidateWord) domain.EnrichedWord {
	return domain.EnrichedWord{
		Word:          c.Word,
		Frequency:     c.Frequency,
		Priority:      c.Priority,
		Examples:      c.Examples,
		Translation:   e.Translation(c.Word),
		PartOfSpeech:  e.PartOfSpeech(c.Word),
		Gender:        e.Gender(c.Word),
		Singular:      strings.ToLower(c.Word),
		Plural:        e.Plural(c.Word),
		Pronunciation: e.Pronunciation(c.Word),
		Etymology:     e.Etymology(c.Word),
		Usage:         e.Usage(c.Word),
		CulturalNotes: e.CulturalNote(c.Word),
	}
}

// FillMissing patches every empty or invalid field of an externally
// produced record so the populated-fields invariant always holds.
func (e *Engine) FillMissing(c domain.CandidateWord, w *domain.EnrichedWord) {
	w.Word = c.Word
	w.Frequency = c.Frequency
	w.Priority = c.Priority
	if len(w.Examples) == 0 {
		w.Examples = c.Examples
	}
	if w.Translation == "" {
		w.Translation = e.Translation(c.Word)
	}
	if !w.PartOfSpeech.IsValid() || w.PartOfSpeech == "" {
		w.PartOfSpeech = e.PartOfSpeech(c.Word)
	}
	if !w.Gender.IsValid() || w.Gender == domain.GenderNone {
		w.Gender = e.Gender(c.Word)
	}
	if w.Singular == "" {
		w.Singular = strings.ToLower(c.Word)
	}
	if w.Plural == "" {
		w.Plural = e.Plural(c.Word)
	}
	if w.Pronunciation == "" {
		w.Pronunciation = e.Pronunciation(c.Word)
	}
	if w.Etymology == "" {
		w.Etymology = e.Etymology(c.Word)
	}
	if w.Usage == "" {
		w.Usage = e.Usage(c.Word)
	}
	if w.CulturalNotes == "" {
		w.CulturalNotes = e.CulturalNote(c.Word)
	}
}

// matchSuffix is a byte-wise suffix match that refuses to swallow the
// whole word.
func matchSuffix(word, suffix string) bool {
	return len(word) > len(suffix) && strings.HasSuffix(word, suffix)
}
