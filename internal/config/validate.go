package config

import (
	"fmt"
	"slices"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
	validModes      = []string{"fast", "thorough"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLogLevels, c.Log.Level)
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validLogFormats, c.Log.Format)
	}

	if !slices.Contains(validModes, c.Lesson.Mode) {
		return fmt.Errorf("lesson.mode must be one of %v (got %q)", validModes, c.Lesson.Mode)
	}
	if c.Lesson.TokenBudget <= 0 {
		return fmt.Errorf("lesson.token_budget must be > 0 (got %d)", c.Lesson.TokenBudget)
	}
	if c.Lesson.FastCap <= 0 || c.Lesson.ThoroughCap <= 0 {
		return fmt.Errorf("lesson caps must be > 0 (got fast %d, thorough %d)",
			c.Lesson.FastCap, c.Lesson.ThoroughCap)
	}

	if c.Enrich.BatchSize < 1 || c.Enrich.BatchSize > 100 {
		return fmt.Errorf("enrich.batch_size must be in 1..100 (got %d)", c.Enrich.BatchSize)
	}
	if c.Enrich.Parallelism < 1 {
		return fmt.Errorf("enrich.parallelism must be >= 1 (got %d)", c.Enrich.Parallelism)
	}
	if c.Enrich.CallTimeout <= 0 {
		return fmt.Errorf("enrich.call_timeout must be > 0 (got %v)", c.Enrich.CallTimeout)
	}
	if c.Enrich.SplitMinWords < 1 {
		return fmt.Errorf("enrich.split_min_words must be >= 1 (got %d)", c.Enrich.SplitMinWords)
	}
	// The orchestrator treats a non-positive depth as "use the default",
	// so zero cannot express "never split"; reject it instead of letting
	// it silently become the default. Raising split_min_words disables
	// subdivision when that is wanted.
	if c.Enrich.MaxSplitDepth < 1 {
		return fmt.Errorf("enrich.max_split_depth must be >= 1 (got %d)", c.Enrich.MaxSplitDepth)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	if c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir must not be empty")
	}

	return nil
}
