package lesson

import (
	"fmt"
	"strings"

	"github.com/capisco/capisco-backend/internal/domain"
	"github.com/capisco/capisco-backend/internal/lang"
)

const maxEtymologyNotes = 5

// theme is a fixed presentation template for one thematic section.
type theme struct {
	key            string
	title          string
	description    string
	icon           string
	culturalNote   string
	practicePrompt string
}

var posThemes = []struct {
	pos domain.PartOfSpeech
	theme
}{
	{domain.PartOfSpeechNoun, theme{
		key:            "nouns",
		title:          "People, Places & Things",
		description:    "Nouns that name what the video talks about",
		icon:           "fa-book",
		culturalNote:   "Nouns carry grammatical gender in many languages; the article changes with them.",
		practicePrompt: "Use three of these nouns to describe a scene from the video.",
	}},
	{domain.PartOfSpeechVerb, theme{
		key:            "verbs",
		title:          "Actions & Processes",
		description:    "Verbs the speakers use to say what happens",
		icon:           "fa-bolt",
		culturalNote:   "Verb endings encode who acts and when; the infinitive is the dictionary form.",
		practicePrompt: "Write one sentence with each of two verbs from this group.",
	}},
	{domain.PartOfSpeechAdjective, theme{
		key:            "adjectives",
		title:          "Descriptions & Qualities",
		description:    "Adjectives that color and qualify",
		icon:           "fa-palette",
		culturalNote:   "Adjectives usually agree with the noun in gender and number.",
		practicePrompt: "Pick two adjectives and describe something you can see right now.",
	}},
}

var expressionsTheme = theme{
	key:            "expressions",
	title:          "Everyday Expressions",
	description:    "Multi-word phrases worth learning as a unit",
	icon:           "fa-comments",
	culturalNote:   "Fixed expressions rarely translate word by word; learn them whole.",
	practicePrompt: "Work one of these expressions into your next conversation.",
}

var essentialTheme = theme{
	key:            "essential",
	title:          "Essential Vocabulary",
	description:    "Key words from this video",
	icon:           "fa-star",
	culturalNote:   "Frequent words repay early study; they return in every conversation.",
	practicePrompt: "Review each word aloud, then recall its translation from memory.",
}

// sectionTitles localizes theme titles for supported source languages.
var sectionTitles = map[string]map[string]string{
	"it": {
		"nouns":       "Nomi",
		"verbs":       "Verbi",
		"adjectives":  "Aggettivi",
		"expressions": "Espressioni",
		"essential":   "Vocabolario essenziale",
	},
	"es": {
		"nouns":       "Sustantivos",
		"verbs":       "Verbos",
		"adjectives":  "Adjetivos",
		"expressions": "Expresiones",
		"essential":   "Vocabulario esencial",
	},
}

// BuildSections groups enriched vocabulary into thematic sections by
// part of speech, appends an expressions section, and collects whatever
// remains into the essential-vocabulary catch-all. It never fails: any
// internal panic degrades to the single catch-all section.
func BuildSections(vocabulary []domain.EnrichedWord, expressions []domain.Expression, rules lang.Ruleset) (sections []domain.ThematicSection) {
	defer func() {
		if r := recover(); r != nil {
			sections = []domain.ThematicSection{buildSection(essentialTheme, vocabulary, rules)}
		}
	}()

	themed := make(map[domain.PartOfSpeech]bool, len(posThemes))
	for _, pt := range posThemes {
		themed[pt.pos] = true
		var words []domain.EnrichedWord
		for _, w := range vocabulary {
			if w.PartOfSpeech == pt.pos {
				words = append(words, w)
			}
		}
		if len(words) > 0 {
			sections = append(sections, buildSection(pt.theme, words, rules))
		}
	}

	var leftover []domain.EnrichedWord
	for _, w := range vocabulary {
		if !themed[w.PartOfSpeech] {
			leftover = append(leftover, w)
		}
	}

	if len(expressions) > 0 {
		sections = append(sections, buildSection(expressionsTheme, expressionWords(expressions, rules), rules))
	}

	if len(leftover) > 0 || len(sections) == 0 {
		sections = append(sections, buildSection(essentialTheme, leftover, rules))
	}
	return sections
}

func buildSection(t theme, words []domain.EnrichedWord, rules lang.Ruleset) domain.ThematicSection {
	return domain.ThematicSection{
		Title:            t.title,
		TitleTranslation: localizedTitle(t, rules),
		Description:      t.description,
		Icon:             t.icon,
		Vocabulary:       words,
		EducationalContent: domain.EducationalContent{
			CulturalNote:   t.culturalNote,
			EtymologyNotes: etymologyNotes(words),
			PracticePrompt: t.practicePrompt,
		},
	}
}

func localizedTitle(t theme, rules lang.Ruleset) string {
	if titles, ok := sectionTitles[rules.Code]; ok {
		if title, ok := titles[t.key]; ok {
			return title
		}
	}
	return t.title
}

// etymologyNotes cross-references the origins of the first few words.
func etymologyNotes(words []domain.EnrichedWord) []string {
	n := len(words)
	if n > maxEtymologyNotes {
		n = maxEtymologyNotes
	}
	notes := make([]string, 0, n)
	for _, w := range words[:n] {
		if w.Etymology == "" {
			continue
		}
		notes = append(notes, fmt.Sprintf("%s: %s", w.Word, w.Etymology))
	}
	return notes
}

// expressionWords adapts expressions into vocabulary records so the
// expressions section shares the section schema. Every field stays
// populated per the enriched-word invariant.
func expressionWords(expressions []domain.Expression, rules lang.Ruleset) []domain.EnrichedWord {
	words := make([]domain.EnrichedWord, len(expressions))
	for i, e := range expressions {
		phrase := strings.TrimSpace(e.Phrase)
		usage := e.Usage
		if usage == "" {
			usage = "expression in " + rules.Name
		}
		words[i] = domain.EnrichedWord{
			Word:          phrase,
			Frequency:     1,
			Examples:      []string{phrase},
			Translation:   e.Translation,
			PartOfSpeech:  domain.PartOfSpeechExpression,
			Gender:        domain.GenderNone,
			Singular:      strings.ToLower(phrase),
			Plural:        strings.ToLower(phrase),
			Pronunciation: strings.ToLower(phrase),
			Etymology:     rules.Name + " expression",
			Usage:         usage,
			CulturalNotes: "Common expression in the " + rules.Name + " language",
		}
	}
	return words
}
