// Package extract turns raw transcript text into a ranked list of
// candidate words for enrichment.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/capisco/capisco-backend/internal/domain"
)

// DefaultTokenBudget caps how many tokens are read from the head of the
// transcript. Later tokens are dropped, not sampled.
const DefaultTokenBudget = 1000

const maxExamplesPerWord = 2

var (
	wordPattern   = regexp.MustCompile(`\p{L}+`)
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
)

// Candidates extracts deduplicated candidate words from raw text with
// frequency counts and example sentences. Pure function of its input.
// maxTokens <= 0 applies DefaultTokenBudget.
func Candidates(text string, maxTokens int) []domain.CandidateWord {
	if maxTokens <= 0 {
		maxTokens = DefaultTokenBudget
	}

	lower := strings.ToLower(text)
	tokens := wordPattern.FindAllString(lower, maxTokens)

	// Exact histogram, preserving first-seen order for determinism.
	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < 2 || !isAlphabetic(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sentences := splitSentences(text)

	candidates := make([]domain.CandidateWord, 0, len(order))
	for _, word := range order {
		candidates = append(candidates, domain.CandidateWord{
			Word:      word,
			Frequency: counts[word],
			Examples:  findExamples(word, sentences),
		})
	}
	return candidates
}

// splitSentences breaks text on sentence-ending punctuation and trims
// whitespace, dropping empty fragments.
func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Join(strings.Fields(p), " ")
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// findExamples returns up to two sentences containing the word
// case-insensitively. A placeholder is synthesized when none match, so
// the examples list is never empty.
func findExamples(word string, sentences []string) []string {
	var examples []string
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s), word) {
			examples = append(examples, s)
			if len(examples) == maxExamplesPerWord {
				break
			}
		}
	}
	if len(examples) == 0 {
		examples = []string{"Example with " + word}
	}
	return examples
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
