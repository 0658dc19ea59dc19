// Package enrich coordinates word enrichment: cache and function-word
// short-circuits, batched calls to the external content generator with
// bounded parallelism, timeout bisection, response repair, and heuristic
// backfill. Every candidate that goes in comes out enriched.
package enrich

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/capisco/capisco-backend/internal/cache"
	"github.com/capisco/capisco-backend/internal/domain"
	"github.com/capisco/capisco-backend/internal/heuristic"
	"github.com/capisco/capisco-backend/internal/lang"
)

// Generator is the outbound port to the external enrichment service.
// It returns the raw response body; the orchestrator owns parsing.
type Generator interface {
	GenerateWordBatch(ctx context.Context, words []domain.CandidateWord, sourceLang, targetLang string) (string, error)
}

// Config tunes batching and parallelism. Zero values take defaults.
type Config struct {
	BatchSize     int           `yaml:"batch_size" env:"ENRICH_BATCH_SIZE" env-default:"12"`
	Parallelism   int           `yaml:"parallelism" env:"ENRICH_PARALLELISM" env-default:"4"`
	CallTimeout   time.Duration `yaml:"call_timeout" env:"ENRICH_CALL_TIMEOUT" env-default:"20s"`
	SplitMinWords int           `yaml:"split_min_words" env:"ENRICH_SPLIT_MIN_WORDS" env-default:"5"`
	MaxSplitDepth int           `yaml:"max_split_depth" env:"ENRICH_MAX_SPLIT_DEPTH" env-default:"2"`
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 12
	}
	if c.Parallelism <= 0 {
		c.Parallelism = 4
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = 20 * time.Second
	}
	if c.SplitMinWords <= 0 {
		c.SplitMinWords = 5
	}
	if c.MaxSplitDepth <= 0 {
		c.MaxSplitDepth = 2
	}
	return c
}

// Orchestrator enriches candidate words in batches. Safe for concurrent
// use by multiple requests.
type Orchestrator struct {
	gen   Generator
	cache *cache.WordCache
	cfg   Config
	log   *slog.Logger
}

// New creates an Orchestrator. A nil generator degrades every miss to
// heuristic enrichment, which keeps the pipeline usable offline.
func New(gen Generator, wc *cache.WordCache, cfg Config, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		gen:   gen,
		cache: wc,
		cfg:   cfg.withDefaults(),
		log:   logger.With("component", "enrich"),
	}
}

// EnrichAll returns exactly one enriched record per candidate, in input
// order. Function words are resolved locally, cache hits are reused, and
// the remaining misses are enriched in parallel batches. A batch that
// times out is bisected and retried up to the depth limit; any other
// failure falls back to heuristics for that batch.
func (o *Orchestrator) EnrichAll(ctx context.Context, candidates []domain.CandidateWord, sourceLang, targetLang string) []domain.EnrichedWord {
	heur := heuristic.NewEngine(lang.Rules(sourceLang))
	results := make([]domain.EnrichedWord, len(candidates))

	var misses []int
	for i, c := range candidates {
		if heur.IsFunctionWord(c.Word) {
			results[i] = heur.Enrich(c)
			continue
		}
		if w, ok := o.cache.Lookup(c.Word, sourceLang, targetLang); ok {
			// Frequency and priority are transcript-specific, not part of
			// the cached enrichment.
			w.Frequency = c.Frequency
			w.Priority = c.Priority
			if len(w.Examples) == 0 {
				w.Examples = c.Examples
			}
			results[i] = w
			continue
		}
		misses = append(misses, i)
	}

	o.log.InfoContext(ctx, "enrichment plan",
		slog.Int("candidates", len(candidates)),
		slog.Int("misses", len(misses)),
		slog.String("source_lang", sourceLang),
		slog.String("target_lang", targetLang))

	if len(misses) == 0 {
		return results
	}
	if o.gen == nil {
		for _, idx := range misses {
			results[idx] = heur.Enrich(candidates[idx])
		}
		return results
	}

	run := &enrichRun{
		orch:       o,
		heur:       heur,
		candidates: candidates,
		results:    results,
		sourceLang: sourceLang,
		targetLang: targetLang,
		sem:        semaphore.NewWeighted(int64(o.cfg.Parallelism)),
	}

	var batches [][]int
	for start := 0; start < len(misses); start += o.cfg.BatchSize {
		end := start + o.cfg.BatchSize
		if end > len(misses) {
			end = len(misses)
		}
		batches = append(batches, misses[start:end])
	}

	// Work queue of {batch, depth} items. Splitting a batch enqueues two
	// halves at depth+1, so the total job count is bounded by the depth
	// cap and the buffer can never fill.
	queueCap := len(batches) * ((1 << (o.cfg.MaxSplitDepth + 1)) - 1)
	queue := make(chan batchJob, queueCap)
	run.queue = queue

	run.pending.Add(len(batches))
	for _, b := range batches {
		queue <- batchJob{indices: b}
	}
	go func() {
		run.pending.Wait()
		close(queue)
	}()

	for job := range queue {
		go func(job batchJob) {
			defer run.pending.Done()
			run.process(ctx, job)
		}(job)
	}

	o.cache.Save()
	return results
}

type batchJob struct {
	indices []int
	depth   int
}

// enrichRun is the per-call state shared by batch goroutines. Each index
// belongs to exactly one in-flight batch, so result writes never overlap.
type enrichRun struct {
	orch       *Orchestrator
	heur       *heuristic.Engine
	candidates []domain.CandidateWord
	results    []domain.EnrichedWord
	sourceLang string
	targetLang string
	sem        *semaphore.Weighted
	queue      chan batchJob
	pending    sync.WaitGroup
}

// process enriches one batch. The semaphore bounds in-flight generator
// calls; a timed-out batch is bisected back onto the work queue until
// the depth cap or the minimum batch size is reached.
func (r *enrichRun) process(ctx context.Context, job batchJob) {
	o := r.orch
	if err := r.sem.Acquire(ctx, 1); err != nil {
		r.fallback(job.indices)
		return
	}
	words := make([]domain.CandidateWord, len(job.indices))
	for i, idx := range job.indices {
		words[i] = r.candidates[idx]
	}
	callCtx, cancel := context.WithTimeout(ctx, o.cfg.CallTimeout)
	raw, err := o.gen.GenerateWordBatch(callCtx, words, r.sourceLang, r.targetLang)
	cancel()
	r.sem.Release(1)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil &&
			len(job.indices) > o.cfg.SplitMinWords && job.depth < o.cfg.MaxSplitDepth {
			mid := len(job.indices) / 2
			o.log.WarnContext(ctx, "batch timed out, splitting",
				slog.Int("size", len(job.indices)), slog.Int("depth", job.depth))
			r.pending.Add(2)
			r.queue <- batchJob{indices: job.indices[:mid], depth: job.depth + 1}
			r.queue <- batchJob{indices: job.indices[mid:], depth: job.depth + 1}
			return
		}
		o.log.WarnContext(ctx, "batch failed, using heuristics",
			slog.Int("size", len(job.indices)), slog.Int("depth", job.depth),
			slog.String("error", err.Error()))
		r.fallback(job.indices)
		return
	}

	r.merge(job.indices, ParseWordsResponse(raw))
}

// merge pairs parsed payloads with batch slots positionally. Slots past
// the end of a short response get pure heuristic records; partial
// payloads are backfilled field by field. Every merged record is cached.
func (r *enrichRun) merge(indices []int, payloads []WordPayload) {
	for i, idx := range indices {
		c := r.candidates[idx]
		var w domain.EnrichedWord
		if i < len(payloads) {
			w = payloadToWord(payloads[i])
		}
		r.heur.FillMissing(c, &w)
		r.results[idx] = w
		r.orch.cache.Store(c.Word, r.sourceLang, r.targetLang, w)
	}
}

func (r *enrichRun) fallback(indices []int) {
	for _, idx := range indices {
		r.results[idx] = r.heur.Enrich(r.candidates[idx])
	}
}

func payloadToWord(p WordPayload) domain.EnrichedWord {
	return domain.EnrichedWord{
		Translation:   strings.TrimSpace(p.Translation),
		PartOfSpeech:  domain.PartOfSpeech(strings.ToLower(strings.TrimSpace(p.PartOfSpeech))),
		Gender:        normalizeGender(p.Gender),
		Singular:      strings.ToLower(strings.TrimSpace(p.Singular)),
		Plural:        strings.ToLower(strings.TrimSpace(p.Plural)),
		Pronunciation: strings.TrimSpace(p.Pronunciation),
		Etymology:     strings.TrimSpace(p.Etymology),
		Usage:         strings.TrimSpace(p.Usage),
		CulturalNotes: strings.TrimSpace(p.CulturalNotes),
		Examples:      p.Examples,
	}
}

func normalizeGender(s string) domain.Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "masc", "masculine":
		return domain.GenderMasculine
	case "f", "fem", "feminine":
		return domain.GenderFeminine
	}
	return domain.GenderNone
}
