package config

import (
	"time"

	"github.com/capisco/capisco-backend/internal/adapter/llm"
	"github.com/capisco/capisco-backend/internal/enrich"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	LLM        llm.Config       `yaml:"llm"`
	Enrich     enrich.Config    `yaml:"enrich"`
	Cache      CacheConfig      `yaml:"cache"`
	Lesson     LessonConfig     `yaml:"lesson"`
	Transcript TranscriptConfig `yaml:"transcript"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// CacheConfig holds word-cache persistence settings.
type CacheConfig struct {
	Dir string `yaml:"dir" env:"CACHE_DIR" env-default:"cache"`
}

// TranscriptConfig holds transcript source settings.
type TranscriptConfig struct {
	// BaseURL overrides the default caption endpoint; empty keeps the default.
	BaseURL string `yaml:"base_url" env:"TRANSCRIPT_BASE_URL"`
}

// LessonConfig holds lesson pipeline settings.
type LessonConfig struct {
	TokenBudget    int    `yaml:"token_budget"    env:"LESSON_TOKEN_BUDGET"    env-default:"1000"`
	Mode           string `yaml:"mode"            env:"LESSON_MODE"            env-default:"fast"`
	FastCap        int    `yaml:"fast_cap"        env:"LESSON_FAST_CAP"        env-default:"50"`
	ThoroughCap    int    `yaml:"thorough_cap"    env:"LESSON_THOROUGH_CAP"    env-default:"150"`
	DetectLanguage bool   `yaml:"detect_language" env:"LESSON_DETECT_LANGUAGE" env-default:"true"`
}

// VocabCap returns the vocabulary cap for the configured mode.
func (c LessonConfig) VocabCap() int {
	if c.Mode == "thorough" {
		return c.ThoroughCap
	}
	return c.FastCap
}
