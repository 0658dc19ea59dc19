// Package cache provides the two-tier word cache: a session map that
// lives for the process lifetime and a persisted map loaded from and
// saved to a single JSON file. The session tier is always a superset of
// the persisted tier as loaded, plus anything stored this run.
package cache

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/capisco/capisco-backend/internal/domain"
)

const cacheFileName = "word_cache.json"

// WordCache maps composite (word, sourceLang, targetLang) keys to
// enriched words. Safe for concurrent use: a single coarse lock
// serializes all access; entries are immutable once stored, so
// last-writer-wins on concurrent stores of the same key is acceptable.
type WordCache struct {
	mu        sync.Mutex
	session   map[string]domain.EnrichedWord
	persisted map[string]domain.EnrichedWord
	dirty     bool

	path string
	log  *slog.Logger
}

// New creates a WordCache persisted under dir and loads the persisted
// tier. A missing or corrupt cache file is treated as empty: startup
// never fails because of cache state.
func New(dir string, logger *slog.Logger) *WordCache {
	c := &WordCache{
		session:   make(map[string]domain.EnrichedWord),
		persisted: make(map[string]domain.EnrichedWord),
		path:      filepath.Join(dir, cacheFileName),
		log:       logger.With("component", "word_cache"),
	}
	c.load()
	return c
}

// Lookup returns the cached record for (word, sourceLang, targetLang).
// Persisted-tier hits are promoted into the session tier.
func (c *WordCache) Lookup(word, sourceLang, targetLang string) (domain.EnrichedWord, bool) {
	key := domain.WordKey(word, sourceLang, targetLang)

	c.mu.Lock()
	defer c.mu.Unlock()

	if w, ok := c.session[key]; ok {
		return w, true
	}
	if w, ok := c.persisted[key]; ok {
		c.session[key] = w
		return w, true
	}
	return domain.EnrichedWord{}, false
}

// Store writes the record into both tiers and marks the cache dirty.
func (c *WordCache) Store(word, sourceLang, targetLang string, w domain.EnrichedWord) {
	key := domain.WordKey(word, sourceLang, targetLang)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.session[key] = w
	c.persisted[key] = w
	c.dirty = true
}

// Len returns the number of session-tier entries.
func (c *WordCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.session)
}

// Dirty reports whether entries were added since the last Save.
func (c *WordCache) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Save serializes the persisted tier to disk when dirty. A write failure
// is logged and swallowed: the run proceeds on the in-memory result.
func (c *WordCache) Save() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty {
		return
	}

	if err := c.write(); err != nil {
		c.log.Warn("cache save failed", slog.String("path", c.path), slog.String("error", err.Error()))
		return
	}
	c.dirty = false
	c.log.Debug("cache saved", slog.String("path", c.path), slog.Int("entries", len(c.persisted)))
}

func (c *WordCache) write() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.Marshal(c.persisted)
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

func (c *WordCache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn("cache file unreadable, starting empty", slog.String("path", c.path), slog.String("error", err.Error()))
		}
		return
	}

	var entries map[string]domain.EnrichedWord
	if err := json.Unmarshal(data, &entries); err != nil {
		c.log.Warn("cache file corrupt, starting empty", slog.String("path", c.path), slog.String("error", err.Error()))
		return
	}

	c.persisted = entries
	// Session starts as a copy of the persisted tier so reads after load
	// are session hits.
	for k, v := range entries {
		c.session[k] = v
	}
	c.log.Info("cache loaded", slog.String("path", c.path), slog.Int("entries", len(entries)))
}
