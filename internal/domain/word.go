package domain

// CandidateWord is a unique normalized token extracted from transcript text,
// with its frequency and up to two example sentences. Immutable after creation.
type CandidateWord struct {
	Word      string   `json:"word"`
	Frequency int      `json:"frequency"`
	Priority  int      `json:"priority"`
	Examples  []string `json:"examples"`
}

// EnrichedWord is a CandidateWord augmented with translation, grammar,
// pronunciation and cultural metadata. Every field is always populated:
// enrichment failures fall back to heuristic generation, never to empty
// fields. Records are written once and never mutated; re-enrichment
// produces a new record that overwrites the cache entry.
type EnrichedWord struct {
	Word          string       `json:"word"`
	Frequency     int          `json:"frequency"`
	Priority      int          `json:"priority"`
	Examples      []string     `json:"examples"`
	Translation   string       `json:"translation"`
	PartOfSpeech  PartOfSpeech `json:"partOfSpeech"`
	Gender        Gender       `json:"gender"`
	Singular      string       `json:"singular"`
	Plural        string       `json:"plural"`
	Pronunciation string       `json:"pronunciation"`
	Etymology     string       `json:"etymology"`
	Usage         string       `json:"usage"`
	CulturalNotes string       `json:"culturalNotes"`
}

// WordKey builds the composite cache key for a (word, language pair) triple.
// The word is normalized so casing and stray whitespace never split cache
// entries; language codes are used verbatim.
func WordKey(word, sourceLang, targetLang string) string {
	return NormalizeText(word) + "|" + sourceLang + "|" + targetLang
}
