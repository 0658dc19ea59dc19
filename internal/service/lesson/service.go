// Package lesson turns a video reference into a structured language
// lesson: transcript, ranked vocabulary, expressions and thematic
// sections. Only invalid requests and unresolvable transcripts surface
// as errors; every enrichment failure degrades quality instead.
package lesson

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/capisco/capisco-backend/internal/config"
	"github.com/capisco/capisco-backend/internal/domain"
	"github.com/capisco/capisco-backend/internal/extract"
	"github.com/capisco/capisco-backend/internal/lang"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type transcriptSource interface {
	ExtractVideoID(rawURL string) (string, error)
	Fetch(ctx context.Context, videoID, sourceLang string) (text, trackLang string, err error)
}

type enricher interface {
	EnrichAll(ctx context.Context, candidates []domain.CandidateWord, sourceLang, targetLang string) []domain.EnrichedWord
}

type analyzer interface {
	DetectLanguage(ctx context.Context, text string) (string, float64, error)
	AnalyzeTranscript(ctx context.Context, transcript, sourceLang, targetLang string) (domain.TranscriptAnalysis, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const transcriptExcerptRunes = 500

// Service implements the lesson generation flow.
type Service struct {
	log         *slog.Logger
	transcripts transcriptSource
	enricher    enricher
	analyzer    analyzer
	cfg         config.LessonConfig
}

// NewService creates a new lesson Service. The analyzer is optional:
// without one, titles, difficulty and expressions come from fixed
// per-language fallbacks.
func NewService(
	logger *slog.Logger,
	transcripts transcriptSource,
	enr enricher,
	cfg config.LessonConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "lesson"),
		transcripts: transcripts,
		enricher:    enr,
		cfg:         cfg,
	}
}

// SetAnalyzer injects the optional transcript analyzer.
func (s *Service) SetAnalyzer(a analyzer) {
	s.analyzer = a
}

// GenerateLesson builds a complete LessonDocument for one video.
func (s *Service) GenerateLesson(ctx context.Context, req LessonRequest) (*domain.LessonDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	videoID, err := s.transcripts.ExtractVideoID(req.VideoURL)
	if err != nil {
		return nil, err
	}

	text, trackLang, err := s.transcripts.Fetch(ctx, videoID, req.SourceLang)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}

	detectedLang, confidence := s.detectLanguage(ctx, text, req.SourceLang)

	rules := lang.Rules(req.SourceLang)
	candidates := extract.Candidates(text, s.cfg.TokenBudget)
	ranked := extract.Filter(candidates, rules, s.cfg.VocabCap())
	vocabulary := s.enricher.EnrichAll(ctx, ranked, req.SourceLang, req.TargetLang)

	analysis := s.analyze(ctx, text, rules, req)
	sections := BuildSections(vocabulary, analysis.Expressions, rules)

	doc := &domain.LessonDocument{
		ID:           uuid.New(),
		Title:        analysis.Title,
		Topic:        analysis.Topic,
		Difficulty:   analysis.Difficulty,
		VideoID:      videoID,
		VideoURL:     req.VideoURL,
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		DetectedLang: detectedLang,
		Confidence:   confidence,
		Transcript:   excerpt(text, transcriptExcerptRunes),
		Vocabulary:   vocabulary,
		Expressions:  analysis.Expressions,
		Sections:     sections,
	}

	s.log.InfoContext(ctx, "lesson generated",
		slog.String("lesson_id", doc.ID.String()),
		slog.String("video_id", videoID),
		slog.String("track_lang", trackLang),
		slog.Int("vocabulary", len(vocabulary)),
		slog.Int("expressions", len(doc.Expressions)),
		slog.Int("sections", len(sections)))

	return doc, nil
}

// detectLanguage asks the analyzer for the transcript language. Failures
// fall back to the requested source language with zero confidence; the
// detected code is metadata only and never redirects the pipeline.
func (s *Service) detectLanguage(ctx context.Context, text, sourceLang string) (string, float64) {
	if !s.cfg.DetectLanguage || s.analyzer == nil || text == "" {
		return sourceLang, 0
	}
	code, confidence, err := s.analyzer.DetectLanguage(ctx, text)
	if err != nil {
		s.log.WarnContext(ctx, "language detection failed",
			slog.String("error", err.Error()))
		return sourceLang, 0
	}
	return code, confidence
}

// analyze obtains lesson metadata and expressions, degrading to fixed
// per-language fallbacks on any failure.
func (s *Service) analyze(ctx context.Context, text string, rules lang.Ruleset, req LessonRequest) domain.TranscriptAnalysis {
	fallback := domain.TranscriptAnalysis{
		Title:       "Vocabulary from this video",
		Topic:       "general",
		Difficulty:  domain.DifficultyIntermediate,
		Expressions: rules.FallbackExpressions,
	}

	if text == "" {
		// Nothing to extract expressions from.
		fallback.Expressions = nil
		return fallback
	}
	if s.analyzer == nil {
		return fallback
	}

	analysis, err := s.analyzer.AnalyzeTranscript(ctx, text, req.SourceLang, req.TargetLang)
	if err != nil {
		s.log.WarnContext(ctx, "transcript analysis failed, using fallbacks",
			slog.String("error", err.Error()))
		return fallback
	}

	if analysis.Title == "" {
		analysis.Title = fallback.Title
	}
	if analysis.Topic == "" {
		analysis.Topic = fallback.Topic
	}
	if !analysis.Difficulty.IsValid() {
		analysis.Difficulty = fallback.Difficulty
	}
	if len(analysis.Expressions) == 0 {
		analysis.Expressions = rules.FallbackExpressions
	}
	return analysis
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
