// Package llm adapts the Anthropic Messages API to the enrichment and
// analysis ports. Responses are returned as raw text where the caller
// owns repair-parsing, and as strictly validated JSON where the schema
// is small enough to demand it.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/capisco/capisco-backend/internal/domain"
)

const (
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 4096

	// Input caps keep prompts inside the model context window.
	detectSnippetRunes   = 500
	analysisSnippetRunes = 3000
)

// Config holds the adapter settings.
type Config struct {
	APIKey    string `yaml:"api_key" env:"LLM_API_KEY"`
	Model     string `yaml:"model" env:"LLM_MODEL" env-default:"claude-sonnet-4-5"`
	BaseURL   string `yaml:"base_url" env:"LLM_BASE_URL"`
	MaxTokens int64  `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"4096"`
}

// Client talks to the Anthropic API.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
	log       *slog.Logger
}

// NewClient creates a Client from config. An empty model or token limit
// takes the package default.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Client{
		api:       anthropic.NewClient(opts...),
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
		log:       logger.With("adapter", "llm"),
	}
}

// GenerateWordBatch requests enrichment for a batch of words and returns
// the raw response text. The caller repair-parses it: truncated output is
// expected, not an error.
func (c *Client) GenerateWordBatch(ctx context.Context, words []domain.CandidateWord, sourceLang, targetLang string) (string, error) {
	text, err := c.complete(ctx, buildWordBatchPrompt(words, sourceLang, targetLang))
	if err != nil {
		return "", fmt.Errorf("generate word batch: %w", err)
	}
	c.log.DebugContext(ctx, "word batch response",
		slog.Int("words", len(words)), slog.Int("response_bytes", len(text)))
	return text, nil
}

// DetectLanguage identifies the dominant language of a text sample and
// returns an ISO 639-1 code with a confidence in [0, 1].
func (c *Client) DetectLanguage(ctx context.Context, text string) (string, float64, error) {
	raw, err := c.complete(ctx, buildDetectLanguagePrompt(snippet(text, detectSnippetRunes)))
	if err != nil {
		return "", 0, fmt.Errorf("detect language: %w", err)
	}

	jsonStr, err := extractJSON(raw)
	if err != nil {
		return "", 0, fmt.Errorf("detect language: %w", err)
	}
	var out struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		return "", 0, fmt.Errorf("detect language: parse response: %w", err)
	}
	out.Language = strings.ToLower(strings.TrimSpace(out.Language))
	if out.Language == "" {
		return "", 0, fmt.Errorf("detect language: empty language code in response")
	}
	if out.Confidence < 0 {
		out.Confidence = 0
	}
	if out.Confidence > 1 {
		out.Confidence = 1
	}
	return out.Language, out.Confidence, nil
}

// AnalyzeTranscript produces lesson-level metadata: title, topic,
// difficulty and notable multi-word expressions.
func (c *Client) AnalyzeTranscript(ctx context.Context, transcript, sourceLang, targetLang string) (domain.TranscriptAnalysis, error) {
	raw, err := c.complete(ctx, buildAnalysisPrompt(snippet(transcript, analysisSnippetRunes), sourceLang, targetLang))
	if err != nil {
		return domain.TranscriptAnalysis{}, fmt.Errorf("analyze transcript: %w", err)
	}

	jsonStr, err := extractJSON(raw)
	if err != nil {
		return domain.TranscriptAnalysis{}, fmt.Errorf("analyze transcript: %w", err)
	}
	var out struct {
		Title       string              `json:"title"`
		Topic       string              `json:"topic"`
		Difficulty  string              `json:"difficulty"`
		Expressions []domain.Expression `json:"expressions"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		return domain.TranscriptAnalysis{}, fmt.Errorf("analyze transcript: parse response: %w", err)
	}

	difficulty := domain.Difficulty(strings.ToLower(strings.TrimSpace(out.Difficulty)))
	if !difficulty.IsValid() {
		difficulty = domain.DifficultyIntermediate
	}
	return domain.TranscriptAnalysis{
		Title:       strings.TrimSpace(out.Title),
		Topic:       strings.TrimSpace(out.Topic),
		Difficulty:  difficulty,
		Expressions: out.Expressions,
	}, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("messages api: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return msg.Content[0].Text, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// snippet truncates text to at most n runes.
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
