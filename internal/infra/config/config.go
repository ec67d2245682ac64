package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/chat"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Chat      ChatConfig      `yaml:"chat"`
	Translate TranslateConfig `yaml:"translate"`
	GenAI     GenAIConfig     `yaml:"genai"`
	Speech    SpeechConfig    `yaml:"speech"`
	FAQ       FAQConfig       `yaml:"faq"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// ChatConfig carries the keyword data assets and pipeline knobs. Keyword sets
// default to the curated lists but can be extended via the config file.
type ChatConfig struct {
	MedicalKeywords   []string      `yaml:"medicalKeywords"`
	SeverityPhrases   []string      `yaml:"severityPhrases"`
	GenerateTimeout   time.Duration `yaml:"generateTimeout"`
	LemmatizerEnabled bool          `yaml:"lemmatizerEnabled"`
}

// TranslateConfig points at the translation gateway.
type TranslateConfig struct {
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// GenAIConfig contains the generative answer gateway settings. The API key is
// only ever read from the environment; its absence is a startup warning.
type GenAIConfig struct {
	APIKey  string        `yaml:"-"`
	BaseURL string        `yaml:"baseUrl"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// SpeechConfig controls the text-to-speech gateway.
type SpeechConfig struct {
	Enabled bool          `yaml:"enabled"`
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// FAQConfig controls the knowledge store behavior.
type FAQConfig struct {
	FuzzyThreshold float64        `yaml:"fuzzyThreshold"`
	CacheTTL       time.Duration  `yaml:"cacheTtl"`
	TopTrending    int            `yaml:"topTrending"`
	Valkey         ValkeyConfig   `yaml:"valkey"`
	Postgres       PostgresConfig `yaml:"postgres"`
}

// ValkeyConfig contains connection information for the answer cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("CHAT_GENERATE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Chat.GenerateTimeout = parsed
		}
	}
	if v := os.Getenv("CHAT_LEMMATIZER_ENABLED"); v != "" {
		cfg.Chat.LemmatizerEnabled = parseBool(v)
	}
	if v := os.Getenv("TRANSLATE_BASE_URL"); v != "" {
		cfg.Translate.BaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GenAI.APIKey = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.GenAI.BaseURL = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GenAI.Model = v
	}
	if v := os.Getenv("SPEECH_ENABLED"); v != "" {
		cfg.Speech.Enabled = parseBool(v)
	}
	if v := os.Getenv("SPEECH_BASE_URL"); v != "" {
		cfg.Speech.BaseURL = v
	}
	if v := os.Getenv("FAQ_FUZZY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FAQ.FuzzyThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.FAQ.CacheTTL = parsed
		}
	}
	if v := os.Getenv("FAQ_TRENDING_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.TopTrending = parsed
		}
	}
	if v := os.Getenv("FAQ_VALKEY_ENABLED"); v != "" {
		cfg.FAQ.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("FAQ_VALKEY_ADDR"); v != "" {
		cfg.FAQ.Valkey.Addr = v
	}
	if v := os.Getenv("FAQ_POSTGRES_DSN"); v != "" {
		cfg.FAQ.Postgres.DSN = v
	}
	if v := os.Getenv("FAQ_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Postgres.MinConns = int32(parsed)
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Chat: ChatConfig{
			MedicalKeywords:   chat.DefaultMedicalKeywords(),
			SeverityPhrases:   chat.DefaultSeverityPhrases(),
			GenerateTimeout:   15 * time.Second,
			LemmatizerEnabled: true,
		},
		Translate: TranslateConfig{
			BaseURL: "https://translate.googleapis.com",
			Timeout: 10 * time.Second,
		},
		GenAI: GenAIConfig{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			Model:   "gemini-pro",
			Timeout: 15 * time.Second,
		},
		Speech: SpeechConfig{
			Enabled: true,
			BaseURL: "https://translate.google.com",
			Timeout: 10 * time.Second,
		},
		FAQ: FAQConfig{
			FuzzyThreshold: 0.7,
			CacheTTL:       6 * time.Hour,
			TopTrending:    10,
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if len(c.Chat.MedicalKeywords) == 0 {
		return errors.New("chat.medicalKeywords cannot be empty")
	}
	if len(c.Chat.SeverityPhrases) == 0 {
		return errors.New("chat.severityPhrases cannot be empty")
	}
	if c.Chat.GenerateTimeout <= 0 {
		return errors.New("chat.generateTimeout must be positive")
	}
	if c.Translate.BaseURL == "" {
		return errors.New("translate.baseUrl cannot be empty")
	}
	if c.Translate.Timeout <= 0 {
		return errors.New("translate.timeout must be positive")
	}
	if c.GenAI.Model == "" {
		return errors.New("genai.model cannot be empty")
	}
	if c.GenAI.Timeout <= 0 {
		return errors.New("genai.timeout must be positive")
	}
	if c.Speech.Enabled && c.Speech.BaseURL == "" {
		return errors.New("speech.baseUrl cannot be empty when speech is enabled")
	}
	if c.FAQ.FuzzyThreshold < 0 || c.FAQ.FuzzyThreshold > 1 {
		return errors.New("faq.fuzzyThreshold must be between 0 and 1")
	}
	if c.FAQ.CacheTTL < 0 {
		return errors.New("faq.cacheTtl cannot be negative")
	}
	if c.FAQ.TopTrending < 0 {
		return errors.New("faq.topTrending cannot be negative")
	}
	if c.FAQ.Valkey.Enabled && strings.TrimSpace(c.FAQ.Valkey.Addr) == "" {
		return errors.New("faq.valkey.addr cannot be empty when the valkey cache is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
