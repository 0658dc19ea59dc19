package domain

// PartOfSpeech represents the grammatical category of a word.
// Values are lowercase because they appear verbatim in lesson JSON.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechFunctionWord PartOfSpeech = "function word"
	PartOfSpeechExpression   PartOfSpeech = "expression"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective,
		PartOfSpeechAdverb, PartOfSpeechFunctionWord, PartOfSpeechExpression:
		return true
	}
	return false
}

// Gender represents grammatical gender in gendered languages.
// Empty means the language or word has no grammatical gender.
type Gender string

const (
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
	GenderNone      Gender = ""
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNone:
		return true
	}
	return false
}

// Difficulty is the estimated difficulty level of a lesson.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
