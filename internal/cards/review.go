package cards

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/capisco/capisco-backend/internal/domain"
	"github.com/capisco/capisco-backend/internal/lang"
)

// Issue is one problem found in one card file.
type Issue struct {
	File    string
	Message string
}

func (i Issue) String() string {
	return i.File + ": " + i.Message
}

// ReviewVocabCard checks a vocab card for missing or suspect content.
// Gender shape checks apply only to gendered languages; words ending in
// -a flagged masculine must appear in the exception list.
func ReviewVocabCard(c VocabCard, rules lang.Ruleset) []string {
	var issues []string

	if c.Headword.Source == "" {
		issues = append(issues, "missing headword.source")
	}
	if c.Headword.Target == "" {
		issues = append(issues, "missing headword.target")
	}
	if c.Meaning.Primary == "" {
		issues = append(issues, "missing meaning.primary")
	}
	if c.Pronunciation.Readable == "" {
		issues = append(issues, "missing pronunciation.readable")
	}
	if len(c.Examples) == 0 {
		issues = append(issues, "no examples")
	}
	if len(c.QuizSeeds.Distractors) < 2 {
		issues = append(issues, fmt.Sprintf("only %d distractors, need at least 2", len(c.QuizSeeds.Distractors)))
	}

	if rules.Gendered && c.Headword.PartOfSpeech == domain.PartOfSpeechNoun {
		word := strings.ToLower(c.Headword.Source)
		switch {
		case c.Headword.Gender == domain.GenderNone:
			issues = append(issues, "noun missing gender")
		case c.Headword.Gender == domain.GenderFeminine && strings.HasSuffix(word, "o"):
			issues = append(issues, "SUSPECT: feminine noun ending in -o")
		case c.Headword.Gender == domain.GenderMasculine && strings.HasSuffix(word, "a") &&
			!rules.MasculineAExceptions[word]:
			issues = append(issues, "SUSPECT: masculine noun ending in -a")
		}
	}

	return issues
}

// ReviewExpressionCard checks an expression card for missing content.
func ReviewExpressionCard(c ExpressionCard) []string {
	var issues []string

	if c.Headword.Source == "" {
		issues = append(issues, "missing headword.source")
	}
	if c.Headword.Target == "" {
		issues = append(issues, "missing headword.target")
	}
	if c.Meaning.Primary == "" {
		issues = append(issues, "missing meaning.primary")
	}
	if len(c.Examples) == 0 {
		issues = append(issues, "no examples")
	}

	return issues
}

// ReviewDir validates every .json card file in dir and returns the
// issues found, sorted by file name. A missing or unreadable file is an
// issue, not an error; the error return covers only the dir listing.
func ReviewDir(dir string, rules lang.Ruleset) ([]Issue, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read card dir: %w", err)
	}

	var issues []Issue
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		for _, msg := range reviewFile(filepath.Join(dir, entry.Name()), rules) {
			issues = append(issues, Issue{File: entry.Name(), Message: msg})
		}
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].File != issues[j].File {
			return issues[i].File < issues[j].File
		}
		return issues[i].Message < issues[j].Message
	})
	return issues, nil
}

func reviewFile(path string, rules lang.Ruleset) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("unreadable: %v", err)}
	}

	var probe struct {
		Type string `json:"type"`
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return []string{fmt.Sprintf("invalid JSON: %v", err)}
	}

	switch {
	case probe.Type == "vocab":
		var c VocabCard
		if err := json.Unmarshal(data, &c); err != nil {
			return []string{fmt.Sprintf("invalid vocab card: %v", err)}
		}
		return ReviewVocabCard(c, rules)
	case probe.Kind == "expression":
		var c ExpressionCard
		if err := json.Unmarshal(data, &c); err != nil {
			return []string{fmt.Sprintf("invalid expression card: %v", err)}
		}
		return ReviewExpressionCard(c)
	default:
		return []string{fmt.Sprintf("unknown card type %q", probe.Type + probe.Kind)}
	}
}
