// Package cards builds flash-card JSON documents from enriched
// vocabulary and expressions, and reviews existing card files for
// common content errors.
package cards

import (
	"fmt"

	"github.com/capisco/capisco-backend/internal/domain"
)

// Headword identifies the card's word pair.
type Headword struct {
	Source       string              `json:"source"`
	Target       string              `json:"target"`
	PartOfSpeech domain.PartOfSpeech `json:"partOfSpeech,omitempty"`
	Gender       domain.Gender       `json:"gender,omitempty"`
	Register     string              `json:"register,omitempty"`
}

// Forms lists the word forms a learner should recognize.
type Forms struct {
	Canonical string   `json:"canonical"`
	Singular  string   `json:"singular,omitempty"`
	Plural    string   `json:"plural,omitempty"`
	Variants  []string `json:"variants"`
}

// Pronunciation holds the readable stress-marked breakdown.
type Pronunciation struct {
	Readable string `json:"readable"`
}

// Meaning carries the primary gloss and usage guidance.
type Meaning struct {
	Primary    string   `json:"primary"`
	Extended   []string `json:"extended"`
	UsageNotes string   `json:"usageNotes,omitempty"`
}

// Example is one usage sample, attributed to its origin.
type Example struct {
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
	Origin string `json:"origin"`
}

// Etymology holds origin notes for the word.
type Etymology struct {
	Origin   string `json:"origin"`
	Mnemonic string `json:"mnemonic,omitempty"`
}

// QuizSeeds configures which quiz modes a card supports and the wrong
// answers shown alongside the right one.
type QuizSeeds struct {
	Recognition bool     `json:"recognition"`
	Recall      bool     `json:"recall"`
	Production  bool     `json:"production"`
	Distractors []string `json:"distractors"`
}

// Metadata carries difficulty and grouping tags.
type Metadata struct {
	Difficulty domain.Difficulty `json:"difficulty"`
	Tags       []string          `json:"tags"`
}

// VocabCard is a single-word flash card.
type VocabCard struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Language      string        `json:"language"`
	Headword      Headword      `json:"headword"`
	Forms         Forms         `json:"forms"`
	Pronunciation Pronunciation `json:"pronunciation"`
	Meaning       Meaning       `json:"meaning"`
	Examples      []Example     `json:"examples"`
	Etymology     Etymology     `json:"etymology"`
	QuizSeeds     QuizSeeds     `json:"quizSeeds"`
	Metadata      Metadata      `json:"metadata"`
}

// ExpressionCard is a multi-word phrase card.
type ExpressionCard struct {
	ID            string        `json:"id"`
	Kind          string        `json:"kind"`
	Language      string        `json:"language"`
	Headword      Headword      `json:"headword"`
	Forms         Forms         `json:"forms"`
	Pronunciation Pronunciation `json:"pronunciation"`
	Meaning       Meaning       `json:"meaning"`
	Examples      []Example     `json:"examples"`
	Metadata      Metadata      `json:"metadata"`
}

// BuildVocabCard assembles a card from an enriched word. Distractors are
// supplied by the caller, typically translations of other words from the
// same run.
func BuildVocabCard(w domain.EnrichedWord, sourceLang, topic string, distractors []string) VocabCard {
	if distractors == nil {
		distractors = []string{}
	}

	example := "Example with " + w.Word
	if len(w.Examples) > 0 {
		example = w.Examples[0]
	}

	return VocabCard{
		ID:       domain.Slugify(w.Word),
		Type:     "vocab",
		Language: sourceLang,
		Headword: Headword{
			Source:       w.Word,
			Target:       w.Translation,
			PartOfSpeech: w.PartOfSpeech,
			Gender:       w.Gender,
			Register:     "neutral",
		},
		Forms: Forms{
			Canonical: w.Word,
			Singular:  w.Singular,
			Plural:    w.Plural,
			Variants:  []string{},
		},
		Pronunciation: Pronunciation{Readable: w.Pronunciation},
		Meaning: Meaning{
			Primary:    w.Translation,
			Extended:   []string{fmt.Sprintf("S1: %s", w.Translation)},
			UsageNotes: w.Usage,
		},
		Examples: []Example{{Source: example, Origin: "transcript"}},
		Etymology: Etymology{
			Origin: w.Etymology,
		},
		QuizSeeds: QuizSeeds{
			Recognition: true,
			Recall:      true,
			Production:  true,
			Distractors: distractors,
		},
		Metadata: Metadata{
			Difficulty: domain.DifficultyBeginner,
			Tags:       tags(topic),
		},
	}
}

// BuildExpressionCard assembles a card from an extracted expression.
func BuildExpressionCard(e domain.Expression, sourceLang, topic string) ExpressionCard {
	return ExpressionCard{
		ID:       domain.Slugify(e.Phrase),
		Kind:     "expression",
		Language: sourceLang,
		Headword: Headword{
			Source: e.Phrase,
			Target: e.Translation,
		},
		Forms: Forms{
			Canonical: e.Phrase,
			Variants:  []string{},
		},
		Pronunciation: Pronunciation{Readable: e.Phrase},
		Meaning: Meaning{
			Primary:    e.Translation,
			Extended:   []string{fmt.Sprintf("S1: %s", e.Translation)},
			UsageNotes: e.Usage,
		},
		Examples: []Example{{Source: e.Phrase, Origin: "transcript"}},
		Metadata: Metadata{
			Difficulty: domain.DifficultyIntermediate,
			Tags:       append(tags(topic), "expressions"),
		},
	}
}

// Distractors picks up to n wrong answers for the word at index self,
// drawn from the translations of the other words in the run. Duplicates
// of the right answer are skipped.
func Distractors(words []domain.EnrichedWord, self, n int) []string {
	out := make([]string, 0, n)
	for i, w := range words {
		if i == self || w.Translation == "" || w.Translation == words[self].Translation {
			continue
		}
		out = append(out, w.Translation)
		if len(out) == n {
			break
		}
	}
	return out
}

func tags(topic string) []string {
	if topic == "" {
		return []string{}
	}
	return []string{topic}
}
