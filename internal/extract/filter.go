package extract

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/capisco/capisco-backend/internal/domain"
	"github.com/capisco/capisco-backend/internal/lang"
)

// Candidate caps for the two operating modes.
const (
	DefaultFastCap     = 50
	DefaultThoroughCap = 150
)

// Word length window for enrichment candidates.
const (
	minWordLength = 3
	maxWordLength = 15
)

// Priority scoring weights. Tuned by inspection, not derived; treat as
// reasonable defaults rather than load-bearing constants.
const (
	frequencyWeight    = 10
	suffixBonus        = 20
	longWordBonus      = 10
	longWordThreshold  = 6
	exampleWeight      = 5
	maxScoredExamples  = 3
	placeholderExample = "Example with "
)

// Filter scores candidates and keeps the top limit entries.
// Function words and words outside the length window are excluded.
// The sort is stable: ties keep original extraction order so results
// are deterministic. An empty result is valid and flows downstream.
func Filter(candidates []domain.CandidateWord, rules lang.Ruleset, limit int) []domain.CandidateWord {
	if limit <= 0 {
		limit = DefaultFastCap
	}

	kept := make([]domain.CandidateWord, 0, len(candidates))
	for _, c := range candidates {
		if _, fn := rules.IsFunctionWord(c.Word); fn {
			continue
		}
		n := utf8.RuneCountInString(c.Word)
		if n < minWordLength || n > maxWordLength {
			continue
		}
		c.Priority = score(c, rules)
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Priority > kept[j].Priority
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

func score(c domain.CandidateWord, rules lang.Ruleset) int {
	s := frequencyWeight * c.Frequency
	if rules.HasContentSuffix(c.Word) {
		s += suffixBonus
	}
	if utf8.RuneCountInString(c.Word) >= longWordThreshold {
		s += longWordBonus
	}
	s += exampleWeight * realExampleCount(c.Examples)
	return s
}

// realExampleCount counts distinct transcript contexts, ignoring the
// synthesized placeholder, capped at maxScoredExamples.
func realExampleCount(examples []string) int {
	n := 0
	for _, e := range examples {
		if strings.HasPrefix(e, placeholderExample) {
			continue
		}
		n++
		if n == maxScoredExamples {
			break
		}
	}
	return n
}
