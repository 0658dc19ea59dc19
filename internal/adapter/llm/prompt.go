package llm

import (
	"fmt"
	"strings"

	"github.com/capisco/capisco-backend/internal/domain"
)

// buildWordBatchPrompt creates the enrichment prompt for one batch of words.
func buildWordBatchPrompt(words []domain.CandidateWord, sourceLang, targetLang string) string {
	var list strings.Builder
	for i, w := range words {
		fmt.Fprintf(&list, "%d. %s", i+1, w.Word)
		if len(w.Examples) > 0 {
			fmt.Fprintf(&list, " (as in: %s)", w.Examples[0])
		}
		list.WriteString("\n")
	}

	return fmt.Sprintf(`You are a language teacher preparing vocabulary material for learners.

Source language: %s
Target language: %s

Words (keep this exact order in your output):
%s
Output ONLY a valid JSON object matching this exact schema:
{
  "words": [
    {
      "word": "<the word>",
      "translation": "<translation into the target language>",
      "partOfSpeech": "<noun|verb|adjective|adverb|function word|expression>",
      "gender": "<m|f or empty for ungendered words>",
      "singular": "<singular form>",
      "plural": "<plural form>",
      "pronunciation": "<syllable breakdown with the stressed syllable in caps, e.g. ge-LA-to>",
      "etymology": "<one sentence on the word's origin>",
      "usage": "<one sentence on how the word is used>",
      "culturalNotes": "<one sentence of cultural context>",
      "examples": ["<short example sentence in the source language>"]
    }
  ]
}

Rules:
- Produce exactly one entry per listed word, in the listed order
- Use lowercase part-of-speech values from the schema
- Keep every field short and learner-friendly
- Output ONLY the JSON, no markdown, no explanations`, sourceLang, targetLang, list.String())
}

// buildDetectLanguagePrompt asks for the dominant language of a text sample.
func buildDetectLanguagePrompt(sample string) string {
	return fmt.Sprintf(`Identify the dominant language of the following text.

Text:
%s

Output ONLY a valid JSON object matching this exact schema:
{"language": "<ISO 639-1 code, e.g. it>", "confidence": <number between 0 and 1>}

Output ONLY the JSON, no markdown, no explanations.`, sample)
}

// buildAnalysisPrompt asks for lesson metadata and notable expressions.
func buildAnalysisPrompt(transcript, sourceLang, targetLang string) string {
	return fmt.Sprintf(`You are a language teacher turning a video transcript into a lesson.

Source language: %s
Target language: %s

Transcript:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "title": "<short lesson title in the target language>",
  "topic": "<one or two words naming the topic>",
  "difficulty": "<beginner|intermediate|advanced>",
  "expressions": [
    {
      "phrase": "<multi-word expression from the transcript>",
      "translation": "<translation into the target language>",
      "usage": "<one sentence on when to use it>"
    }
  ]
}

Rules:
- Pick 3 to 6 expressions a learner would actually reuse
- Only include expressions that appear in the transcript
- Judge difficulty from vocabulary and sentence complexity
- Output ONLY the JSON, no markdown, no explanations`, sourceLang, targetLang, transcript)
}
