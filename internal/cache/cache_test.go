package cache

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capisco/capisco-backend/internal/domain"
)

func testWord(word string) domain.EnrichedWord {
	return domain.EnrichedWord{
		Word:          word,
		Translation:   "ice cream",
		PartOfSpeech:  domain.PartOfSpeechNoun,
		Gender:        domain.GenderMasculine,
		Singular:      word,
		Plural:        word + "i",
		Pronunciation: "ge-LA-to",
		Etymology:     "Italian origin",
		Usage:         "noun in Italian",
		CulturalNotes: "Common noun in the Italian language",
		Examples:      []string{"Il gelato è buono"},
	}
}

func TestWordCache_StoreAndLookup(t *testing.T) {
	t.Parallel()

	c := New(t.TempDir(), slog.Default())

	_, ok := c.Lookup("gelato", "it", "en")
	require.False(t, ok)

	c.Store("Gelato", "it", "en", testWord("gelato"))

	// Key is lowercased: lookup with any casing hits.
	got, ok := c.Lookup("GELATO", "it", "en")
	require.True(t, ok)
	assert.Equal(t, "ice cream", got.Translation)

	// Different language pair is a different key.
	_, ok = c.Lookup("gelato", "it", "de")
	assert.False(t, ok)
}

func TestWordCache_SaveAndReload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	c := New(dir, slog.Default())
	c.Store("gelato", "it", "en", testWord("gelato"))
	require.True(t, c.Dirty())
	c.Save()
	assert.False(t, c.Dirty())

	// A fresh cache over the same dir sees the persisted entry.
	c2 := New(dir, slog.Default())
	got, ok := c2.Lookup("gelato", "it", "en")
	require.True(t, ok)
	assert.Equal(t, testWord("gelato"), got)
}

func TestWordCache_CorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cacheFileName), []byte("{not json"), 0644))

	c := New(dir, slog.Default())
	assert.Equal(t, 0, c.Len())

	// The cache keeps working after a corrupt load.
	c.Store("gelato", "it", "en", testWord("gelato"))
	c.Save()

	c2 := New(dir, slog.Default())
	assert.Equal(t, 1, c2.Len())
}

func TestWordCache_SaveSkippedWhenClean(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := New(dir, slog.Default())
	c.Save()

	_, err := os.Stat(filepath.Join(dir, cacheFileName))
	assert.True(t, os.IsNotExist(err), "clean cache must not touch disk")
}

func TestWordCache_ConcurrentStores(t *testing.T) {
	t.Parallel()

	c := New(t.TempDir(), slog.Default())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Store("gelato", "it", "en", testWord("gelato"))
				_, _ = c.Lookup("gelato", "it", "en")
			}
		}()
	}
	wg.Wait()

	got, ok := c.Lookup("gelato", "it", "en")
	require.True(t, ok)
	assert.Equal(t, "gelato", got.Word)
}
