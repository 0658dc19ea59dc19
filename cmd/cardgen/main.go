// Command cardgen turns a transcript file into per-word flash-card JSON
// files. It runs the same extraction and enrichment core as the lesson
// service, then writes one card per vocabulary item and expression into
// the output directory and reviews the result.
//
// Modes:
//
//	default  — generate cards from --transcript into --output-dir
//	--review — validate existing card files in --output-dir only
//
// Without LLM_API_KEY enrichment is fully heuristic, which keeps the
// tool usable offline. Exit codes: 0 = success, 1 = error, 2 = review
// found issues.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/capisco/capisco-backend/internal/adapter/llm"
	"github.com/capisco/capisco-backend/internal/cache"
	"github.com/capisco/capisco-backend/internal/cards"
	"github.com/capisco/capisco-backend/internal/enrich"
	"github.com/capisco/capisco-backend/internal/extract"
	"github.com/capisco/capisco-backend/internal/lang"
)

const (
	tokenBudget    = 1000
	vocabCap       = 150
	maxDistractors = 3
)

func main() {
	transcriptPath := flag.String("transcript", "", "path to transcript text file")
	outputDir := flag.String("output-dir", "cards-output", "directory for card JSON files")
	cacheDir := flag.String("cache-dir", "cache", "directory for the word cache file")
	sourceLang := flag.String("source-lang", "it", "transcript language code")
	targetLang := flag.String("target-lang", "en", "translation language code")
	reviewOnly := flag.Bool("review", false, "review existing card files instead of generating")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *reviewOnly {
		os.Exit(runReview(*outputDir, *sourceLang, logger))
	}

	if *transcriptPath == "" {
		logger.Error("missing required flag --transcript")
		os.Exit(1)
	}
	if err := run(*transcriptPath, *outputDir, *cacheDir, *sourceLang, *targetLang, logger); err != nil {
		logger.Error("card generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	os.Exit(runReview(*outputDir, *sourceLang, logger))
}

func run(transcriptPath, outputDir, cacheDir, sourceLang, targetLang string, logger *slog.Logger) error {
	text, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	ctx := context.Background()
	rules := lang.Rules(sourceLang)

	candidates := extract.Candidates(string(text), tokenBudget)
	ranked := extract.Filter(candidates, rules, vocabCap)
	logger.Info("transcript processed",
		slog.Int("candidates", len(candidates)),
		slog.Int("ranked", len(ranked)))

	var enrichCfg enrich.Config
	if err := cleanenv.ReadEnv(&enrichCfg); err != nil {
		return fmt.Errorf("read enrich config: %w", err)
	}

	orch := enrich.New(generator(logger), cache.New(cacheDir, logger), enrichCfg, logger)
	vocabulary := orch.EnrichAll(ctx, ranked, sourceLang, targetLang)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	written := 0
	for i, w := range vocabulary {
		card := cards.BuildVocabCard(w, sourceLang, "", cards.Distractors(vocabulary, i, maxDistractors))
		if err := writeCard(outputDir, card.ID, card); err != nil {
			return err
		}
		written++
	}
	for _, e := range rules.FallbackExpressions {
		card := cards.BuildExpressionCard(e, sourceLang, "")
		if err := writeCard(outputDir, card.ID, card); err != nil {
			return err
		}
		written++
	}

	logger.Info("cards written",
		slog.Int("count", written),
		slog.String("dir", outputDir))
	return nil
}

// generator builds the LLM client when an API key is configured. Without
// one, enrichment degrades to the heuristic engine.
func generator(logger *slog.Logger) enrich.Generator {
	var cfg llm.Config
	if err := cleanenv.ReadEnv(&cfg); err != nil || cfg.APIKey == "" {
		logger.Info("no LLM API key, using heuristic enrichment only")
		return nil
	}
	return llm.NewClient(cfg, logger)
}

func writeCard(dir, id string, card any) error {
	data, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal card %s: %w", id, err)
	}
	path := filepath.Join(dir, id+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write card %s: %w", id, err)
	}
	return nil
}

func runReview(dir, sourceLang string, logger *slog.Logger) int {
	issues, err := cards.ReviewDir(dir, lang.Rules(sourceLang))
	if err != nil {
		logger.Error("review failed", slog.String("error", err.Error()))
		return 1
	}
	if len(issues) == 0 {
		logger.Info("review clean", slog.String("dir", dir))
		return 0
	}
	for _, issue := range issues {
		logger.Warn("card issue",
			slog.String("file", issue.File),
			slog.String("issue", issue.Message))
	}
	logger.Warn("review found issues", slog.Int("count", len(issues)))
	return 2
}
