package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capisco/capisco-backend/internal/domain"
)

// newTestClient points the SDK at a stub Messages endpoint that always
// answers with the given text block.
func newTestClient(t *testing.T, responseText string) *Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"model":       "test-model",
			"stop_reason": "end_turn",
			"content":     []map[string]any{{"type": "text", "text": responseText}},
			"usage":       map[string]int{"input_tokens": 1, "output_tokens": 1},
		})
	}))
	t.Cleanup(srv.Close)

	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, slog.Default())
}

func TestClient_GenerateWordBatchReturnsRawText(t *testing.T) {
	raw := `{"words":[{"word":"gelato","translation":"ice cream"}`
	c := newTestClient(t, raw)

	got, err := c.GenerateWordBatch(context.Background(),
		[]domain.CandidateWord{{Word: "gelato"}}, "it", "en")
	require.NoError(t, err)
	// Truncated output is passed through untouched for the caller to repair.
	assert.Equal(t, raw, got)
}

func TestClient_DetectLanguage(t *testing.T) {
	c := newTestClient(t, "The language is:\n{\"language\": \"IT\", \"confidence\": 0.93}\nDone.")

	code, conf, err := c.DetectLanguage(context.Background(), "Il gelato è buono")
	require.NoError(t, err)
	assert.Equal(t, "it", code)
	assert.InDelta(t, 0.93, conf, 1e-9)
}

func TestClient_DetectLanguageRejectsEmptyCode(t *testing.T) {
	c := newTestClient(t, `{"language": "", "confidence": 0.5}`)

	_, _, err := c.DetectLanguage(context.Background(), "testo")
	require.Error(t, err)
}

func TestClient_AnalyzeTranscript(t *testing.T) {
	c := newTestClient(t, `{
		"title": "Un'estate italiana",
		"topic": "summer",
		"difficulty": "EASY",
		"expressions": [{"phrase": "che bello", "translation": "how nice", "usage": "exclamation of delight"}]
	}`)

	got, err := c.AnalyzeTranscript(context.Background(), "transcript", "it", "en")
	require.NoError(t, err)
	assert.Equal(t, "Un'estate italiana", got.Title)
	// Unknown difficulty values degrade to intermediate.
	assert.Equal(t, domain.DifficultyIntermediate, got.Difficulty)
	require.Len(t, got.Expressions, 1)
	assert.Equal(t, "che bello", got.Expressions[0].Phrase)
}

func TestBuildWordBatchPrompt(t *testing.T) {
	t.Parallel()

	words := []domain.CandidateWord{
		{Word: "gelato", Examples: []string{"Il gelato è buono"}},
		{Word: "inverno"},
	}
	prompt := buildWordBatchPrompt(words, "it", "en")

	assert.Contains(t, prompt, "1. gelato (as in: Il gelato è buono)")
	assert.Contains(t, prompt, "2. inverno")
	assert.Contains(t, prompt, `"partOfSpeech"`)
	assert.Less(t, strings.Index(prompt, "1. gelato"), strings.Index(prompt, "2. inverno"))
}
