package domain

import "github.com/google/uuid"

// Expression is a multi-word phrase or idiom extracted from the transcript.
type Expression struct {
	Phrase      string `json:"phrase"`
	Translation string `json:"translation"`
	Usage       string `json:"usage"`
}

// TranscriptAnalysis is the lesson-level metadata produced by analyzing a
// transcript: a title, topic and difficulty estimate plus notable
// multi-word expressions.
type TranscriptAnalysis struct {
	Title       string       `json:"title"`
	Topic       string       `json:"topic"`
	Difficulty  Difficulty   `json:"difficulty"`
	Expressions []Expression `json:"expressions"`
}

// EducationalContent carries the teaching material attached to a thematic section.
type EducationalContent struct {
	CulturalNote   string   `json:"culturalNote"`
	EtymologyNotes []string `json:"etymologyNotes"`
	PracticePrompt string   `json:"practicePrompt"`
}

// ThematicSection groups enriched words by part-of-speech or semantic role
// for presentation. It is a derived, non-owning view recomputed per lesson.
type ThematicSection struct {
	Title              string             `json:"title"`
	TitleTranslation   string             `json:"titleTranslation"`
	Description        string             `json:"description"`
	Icon               string             `json:"icon"`
	Vocabulary         []EnrichedWord     `json:"vocabulary"`
	EducationalContent EducationalContent `json:"educationalContent"`
}

// LessonDocument is the final lesson returned to the caller.
// Immutable once assembled.
type LessonDocument struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	Topic        string            `json:"topic"`
	Difficulty   Difficulty        `json:"difficulty"`
	VideoID      string            `json:"videoId"`
	VideoURL     string            `json:"videoUrl"`
	SourceLang   string            `json:"sourceLang"`
	TargetLang   string            `json:"targetLang"`
	DetectedLang string            `json:"detectedLang"`
	Confidence   float64           `json:"confidence"`
	Transcript   string            `json:"transcript"`
	Vocabulary   []EnrichedWord    `json:"vocabulary"`
	Expressions  []Expression      `json:"expressions"`
	Sections     []ThematicSection `json:"sections"`
}
